package web

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/primemeridian/ogimage/internal/render"
)

// CardRenderer renders the card as PNG into w.
type CardRenderer interface {
	WritePNG(w io.Writer) (int64, error)
}

const qrSizePx = 256

func handleCard(w http.ResponseWriter, r *http.Request, renderer CardRenderer) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	if renderer == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "renderer not configured")
		return
	}
	// Buffer so a failed render can still return a JSON error.
	var buf bytes.Buffer
	if _, err := renderer.WritePNG(&buf); err != nil {
		writeAPIError(w, http.StatusInternalServerError, "render_failed", err.Error())
		return
	}
	writePNG(w, r, buf.Bytes())
}

func handleQRCode(w http.ResponseWriter, r *http.Request, publicURL string) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	payload := publicURL
	if payload == "" {
		payload = "http://" + r.Host + "/"
	}
	img, err := render.LinkQRCode(payload, qrSizePx)
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "qrcode_failed", err.Error())
		return
	}
	var buf bytes.Buffer
	if _, err := render.EncodePNG(&buf, img, render.DefaultQuality); err != nil {
		writeAPIError(w, http.StatusInternalServerError, "qrcode_failed", err.Error())
		return
	}
	writePNG(w, r, buf.Bytes())
}

func writePNG(w http.ResponseWriter, r *http.Request, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(data)
}
