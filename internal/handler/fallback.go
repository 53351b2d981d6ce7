package handler

import (
	"net/http"
	"path/filepath"
	"strings"
)

// Fallback returns the catch-all handler for unmatched routes. Browsers
// navigating the single-page frontend get the index document; API clients
// get a JSON 404.
func Fallback(staticDir string) http.HandlerFunc {
	index := filepath.Join(staticDir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Accept"), "text/html") {
			http.ServeFile(w, r, index)
			return
		}
		writeJSON(w, http.StatusNotFound, errorResponse("not found"))
	}
}
