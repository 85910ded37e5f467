package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(zerolog.Nop())
}

// pngOrigin starts an image origin serving a uniform PNG of the given size.
func pngOrigin(t *testing.T, width, height int, c color.Color) *httptest.Server {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode origin image: %v", err)
	}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(buf.Bytes())
	}))
}

func doRequest(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	return body.Detail
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/", "/health"} {
		rec := doRequest(t, s, path)
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want 200", path, rec.Code)
		}
		var body struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("GET %s body is not JSON: %v", path, err)
		}
		if body.Status != "ok" {
			t.Errorf("GET %s status field = %q, want ok", path, body.Status)
		}
	}
}

func TestWallpapers(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, "/api/wallpapers")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Items []struct {
			ID  string `json:"id"`
			Src string `json:"src"`
		} `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if len(body.Items) != 5 {
		t.Errorf("listing has %d items, want 5", len(body.Items))
	}
	for _, item := range body.Items {
		if item.ID == "" || item.Src == "" {
			t.Errorf("item %+v missing id or src", item)
		}
	}
}

func TestCORSHeaders(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, "/api/wallpapers")
	if origin := rec.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", origin)
	}

	req := httptest.NewRequest(http.MethodOptions, "/api/watermark", nil)
	pre := httptest.NewRecorder()
	s.ServeHTTP(pre, req)
	if pre.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", pre.Code)
	}
}

func TestWatermarkMissingURL(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, "/api/watermark")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if detail := decodeDetail(t, rec); detail != "missing url parameter" {
		t.Errorf("detail = %q", detail)
	}
}

func TestWatermarkInvalidScheme(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, "/api/watermark?url="+url.QueryEscape("ftp://127.0.0.1:1/a.jpg"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if detail := decodeDetail(t, rec); detail != "invalid image URL" {
		t.Errorf("detail = %q", detail)
	}
}

func TestWatermarkFetchFailure(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer origin.Close()

	s := newTestServer(t)
	rec := doRequest(t, s, "/api/watermark?url="+url.QueryEscape(origin.URL))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if detail := decodeDetail(t, rec); detail != "failed to fetch source image" {
		t.Errorf("detail = %q", detail)
	}
}

func TestWatermarkUndecodable(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not an image"))
	}))
	defer origin.Close()

	s := newTestServer(t)
	rec := doRequest(t, s, "/api/watermark?url="+url.QueryEscape(origin.URL))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if detail := decodeDetail(t, rec); detail != "unable to load image from URL" {
		t.Errorf("detail = %q", detail)
	}
}

func TestWatermarkEndToEnd(t *testing.T) {
	const width, height = 640, 480
	gray := color.RGBA{128, 128, 128, 255}
	origin := pngOrigin(t, width, height, gray)
	defer origin.Close()

	s := newTestServer(t)
	rec := doRequest(t, s, "/api/watermark?url="+url.QueryEscape(origin.URL)+"&text=hello")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/jpeg" {
		t.Fatalf("Content-Type = %q, want image/jpeg", ct)
	}

	decoded, format, err := image.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("response did not decode as an image: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("response format = %q, want jpeg", format)
	}
	if decoded.Bounds().Dx() != width || decoded.Bounds().Dy() != height {
		t.Errorf("dimensions %dx%d, want %dx%d",
			decoded.Bounds().Dx(), decoded.Bounds().Dy(), width, height)
	}

	// The label plate darkens the bottom-right corner well beyond JPEG noise.
	maxDiff := 0
	for y := height - 60; y < height; y++ {
		for x := width - 200; x < width; x++ {
			r, g, b, _ := decoded.At(x, y).RGBA()
			diff := absInt(int(r>>8)-128) + absInt(int(g>>8)-128) + absInt(int(b>>8)-128)
			if diff > maxDiff {
				maxDiff = diff
			}
		}
	}
	if maxDiff < 30 {
		t.Errorf("bottom-right region barely changed (max channel diff %d)", maxDiff)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
