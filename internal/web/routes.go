package web

import (
	"net/http"

	"github.com/primemeridian/ogimage/internal/state"
)

// PreviewDeps wires the preview server to the generator.
type PreviewDeps struct {
	Renderer CardRenderer
	Store    *state.Store

	// PublicURL is encoded into /qr.png. When empty the request host is used.
	PublicURL string
}

// RegisterAPIV1 registers the JSON API under /api/v1/.
func RegisterAPIV1(mux *http.ServeMux, deps PreviewDeps) {
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", apiV1Router(deps)))
}

// RegisterImages registers the rendered card and its QR code.
func RegisterImages(mux *http.ServeMux, deps PreviewDeps) {
	mux.HandleFunc("/og.png", func(w http.ResponseWriter, r *http.Request) { handleCard(w, r, deps.Renderer) })
	mux.HandleFunc("/qr.png", func(w http.ResponseWriter, r *http.Request) { handleQRCode(w, r, deps.PublicURL) })
}

// RegisterUI serves either embedded UI assets or a directory.
func RegisterUI(mux *http.ServeMux, staticDir string) {
	mux.Handle("/", StaticUIHandler(staticDir))
}

// NewDefaultMux builds the preview mux:
// - /api/v1/* for the API
// - /og.png and /qr.png for images
// - /health for liveness probes
// - / for the preview page
func NewDefaultMux(staticDir string, deps PreviewDeps) *http.ServeMux {
	mux := http.NewServeMux()
	RegisterAPIV1(mux, deps)
	RegisterImages(mux, deps)
	mux.HandleFunc("/health", handleHealth)
	RegisterUI(mux, staticDir)
	return mux
}

// NewPreviewHandler wraps NewDefaultMux with CORS: permissive in dev mode,
// restricted to cfg.AllowedOrigins otherwise.
func NewPreviewHandler(cfg ServerConfig, staticDir string, deps PreviewDeps) http.Handler {
	mux := NewDefaultMux(staticDir, deps)
	switch {
	case cfg.DevMode:
		return WithCORS(mux, nil)
	case len(cfg.AllowedOrigins) > 0:
		return WithCORS(mux, cfg.AllowedOrigins)
	default:
		return mux
	}
}
