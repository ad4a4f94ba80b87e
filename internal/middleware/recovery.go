package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	chiMid "github.com/go-chi/chi/v5/middleware"
)

// Recovery turns a panicking handler into a 500 response
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			log.Printf("panic serving %s %s (request_id=%s): %v\n%s",
				r.Method, r.URL.Path, chiMid.GetReqID(r.Context()), rec, debug.Stack())
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}()
		next.ServeHTTP(w, r)
	})
}
