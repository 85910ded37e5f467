// Package server exposes the wallpapers backend over HTTP: the health and
// catalog endpoints plus the on-demand watermarking endpoint that drives the
// fetch -> decode -> composite -> encode pipeline.
//
// All input-side failures (bad URL, fetch failure, undecodable bytes) are
// collapsed to 400 responses with short generic detail strings; nothing
// about the upstream URL or error internals leaks back to the caller.
package server
