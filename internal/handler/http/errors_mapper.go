package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/teller-rehab/teller-api/internal/logger"
	"github.com/teller-rehab/teller-api/internal/service"
	"github.com/teller-rehab/teller-api/internal/utils"
	"github.com/teller-rehab/teller-api/models"
)

var errorStatusMap = map[error]int{
	ErrBodyIsNotJSONObject:             http.StatusUnprocessableEntity,
	ErrRequestBodyTooLarge:             http.StatusRequestEntityTooLarge,
	service.ErrNoSpeechPayloadProvided: http.StatusUnprocessableEntity,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
	context.Canceled:         http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError responds with the status mapped from err. Client errors carry
// the sentinel's text as detail; server errors only carry the status text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	detail := http.StatusText(status)
	if status < http.StatusInternalServerError {
		detail = rootCauseText(err)
	}

	writeDetail(w, r, detail, status)
}

func writeDetail(w http.ResponseWriter, r *http.Request, detail string, status int) {
	if _, err := utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}

// rootCauseText returns the text of the first sentinel from errorStatusMap
// that err wraps, so decoder internals are not leaked to clients.
func rootCauseText(err error) string {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}
