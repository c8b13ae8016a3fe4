package web

import (
	"encoding/json"
	"net/http"

	"github.com/primemeridian/ogimage/internal/state"
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type statusResponse struct {
	Phase         string `json:"phase"`
	Path          string `json:"path,omitempty"`
	BytesWritten  int64  `json:"bytesWritten"`
	FallbackFonts bool   `json:"fallbackFonts"`
	Renders       int    `json:"renders"`
	Error         string `json:"error,omitempty"`
}

func apiV1Router(deps PreviewDeps) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) { handleStatus(w, r, deps.Store) })
	return mux
}

func handleStatus(w http.ResponseWriter, r *http.Request, store *state.Store) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	if store == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "render state not configured")
		return
	}
	snap := store.Snapshot()
	writeJSON(w, http.StatusOK, statusResponse{
		Phase:         snap.Phase.String(),
		Path:          snap.Render.Path,
		BytesWritten:  snap.Render.BytesWritten,
		FallbackFonts: snap.Render.FallbackFonts,
		Renders:       snap.Render.Renders,
		Error:         snap.Render.Err,
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
