package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/afthab/wallpapers-api/internal/catalog"
	"github.com/afthab/wallpapers-api/internal/fetch"
	"github.com/afthab/wallpapers-api/internal/imaging"
)

// DefaultWatermarkText is applied when the request supplies no text.
const DefaultWatermarkText = "made by afthab"

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type wallpapersResponse struct {
	Items []catalog.Wallpaper `json:"items"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Message: "Wallpapers backend running",
	})
}

func (s *Server) handleWallpapers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, wallpapersResponse{Items: catalog.Items()})
}

// handleWatermark fetches the source image, stamps the label onto it and
// streams the result back as JPEG.
func (s *Server) handleWatermark(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	rawURL := q.Get("url")
	if rawURL == "" {
		s.clientError(w, "missing url parameter")
		return
	}
	text := q.Get("text")
	if text == "" {
		text = DefaultWatermarkText
	}

	raw, err := s.fetcher.Image(r.Context(), rawURL)
	if err != nil {
		s.log.Debug().Err(err).Msg("source fetch failed")
		if errors.Is(err, fetch.ErrInvalidURL) {
			s.clientError(w, "invalid image URL")
		} else {
			s.clientError(w, "failed to fetch source image")
		}
		return
	}

	// Client gone during the fetch; skip the CPU-bound stages.
	if r.Context().Err() != nil {
		return
	}

	src, format, err := imaging.Decode(raw)
	if err != nil {
		s.log.Debug().Err(err).Msg("source decode failed")
		s.clientError(w, "unable to load image from URL")
		return
	}

	stamped := imaging.Watermark(src, text)

	out, err := imaging.EncodeJPEG(stamped)
	if err != nil {
		s.log.Error().Err(err).Msg("result encode failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "failed to encode image"})
		return
	}

	s.log.Info().
		Str("format", format).
		Int("width", src.Bounds().Dx()).
		Int("height", src.Bounds().Dy()).
		Int("bytes", len(out)).
		Msg("watermark served")

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	_, _ = w.Write(out)
}

func (s *Server) clientError(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
