package handler

import "net/http"

// Root returns the fixed greeting. The body matches the Flask demo this
// service replaces, trailing newline included.
func Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Hello from Flask!\n"))
}
