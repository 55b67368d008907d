package request

import (
	"net/http"
)

// BodyLimit caps request bodies at maxBytes. A declared Content-Length above
// the cap is refused with 413 before the handler runs; bodies without one are
// cut off by http.MaxBytesReader, which the JSON decoder reports as 413 too.
// A non-positive maxBytes disables the limit.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if maxBytes <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				writeJSONError(w, http.StatusRequestEntityTooLarge, "request_too_large", "request body exceeds the size limit")
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
