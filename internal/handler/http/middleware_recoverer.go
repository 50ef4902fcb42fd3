package http

import (
	"net/http"
	"runtime/debug"

	"github.com/teller-rehab/teller-api/internal/logger"
)

// withRecover turns a handler panic into a logged 500 with a JSON detail.
// [http.ErrAbortHandler] is re-panicked so net/http can abort the response.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rvr).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			if r.Header.Get("Connection") != "Upgrade" {
				writeDetail(w, r, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
