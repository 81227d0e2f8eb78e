package httpapi

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// envelope is the uniform response shape: {"success": bool, "data": ...} on
// success, {"success": false, "error": "..."} on failure.
func writeData(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"data":    data,
	}); err != nil {
		log.Warn().Err(err).Msg("encode response failed")
	}
}

// writeListData is writeData for list endpoints, whose payloads are large
// enough to be worth compressing when the client accepts gzip.
func writeListData(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	out, done := maybeGzip(w, r)
	defer done()
	w.WriteHeader(status)
	if err := json.NewEncoder(out).Encode(map[string]interface{}{
		"success": true,
		"data":    data,
	}); err != nil {
		log.Warn().Err(err).Msg("encode response failed")
	}
}

// writeRawJSON writes a pre-serialized JSON payload, gzip-compressed when the
// client accepts it. Cached listing payloads are stored uncompressed, so the
// encoding decision stays per-response.
func writeRawJSON(w http.ResponseWriter, r *http.Request, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	out, done := maybeGzip(w, r)
	defer done()
	if _, err := out.Write(payload); err != nil {
		log.Warn().Err(err).Msg("write response failed")
	}
}

// maybeGzip wraps w in a gzip writer when the request allows it. The returned
// func must be called to flush; the Content-Encoding header is set here, so
// callers must not have written the header yet.
func maybeGzip(w http.ResponseWriter, r *http.Request) (io.Writer, func()) {
	if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
		return w, func() {}
	}
	w.Header().Set("Content-Encoding", "gzip")
	gw := gzip.NewWriter(w)
	return gw, func() { _ = gw.Close() }
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   msg,
	})
}

// decodeJSON decodes a request body, returning false (response already
// written) on malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
