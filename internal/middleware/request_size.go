package middleware

import (
	"net/http"
)

// MaxRequestSize is the maximum allowed request body size (1 MB)
const MaxRequestSize = 1 << 20

// RequestSizeLimitMiddleware limits the size of request bodies
func RequestSizeLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > MaxRequestSize {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			w.Write([]byte(`{"error":"request body too large"}`))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, MaxRequestSize)
		next.ServeHTTP(w, r)
	})
}
