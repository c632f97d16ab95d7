package api

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/Jasch-M/asyncmuseum/internal/utils"
)

// requestLogger writes one LogAPI line per request.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		h.Logger.LogAPI(r.Method, r.URL.Path, status, time.Since(start))
	})
}

// recoverer turns a handler panic into a 500 envelope for that request
// only. Once the handler has sent headers the response is left as is.
func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			h.Logger.Error("PANIC", fmt.Sprintf("%s %s [%s]: %v\n%s",
				r.Method, r.URL.Path, middleware.GetReqID(r.Context()), rec, debug.Stack()))
			if ww.Status() != 0 {
				return
			}
			utils.WriteError(ww, http.StatusInternalServerError, msgInternalError)
		}()
		next.ServeHTTP(ww, r)
	})
}
