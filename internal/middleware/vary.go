package middleware

import "net/http"

// Vary adds Accept to the Vary header on every response. Content
// negotiation picks JSON or CBOR per request, so caches must key on
// Accept. The CORS middleware already contributes Origin.
func Vary() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Accept")
			next.ServeHTTP(w, r)
		})
	}
}
