package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/teller-rehab/teller-api/internal/logger"
	"github.com/teller-rehab/teller-api/internal/utils"
	"github.com/teller-rehab/teller-api/models"
)

// maxSpeechBodyBytes caps the analyze-speech request body.
const maxSpeechBodyBytes = 10 << 20

func (h *Handler) analyzeSpeech(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	payload, err := decodeSpeechPayload(http.MaxBytesReader(w, r.Body, maxSpeechBodyBytes))
	if err != nil {
		log.Err(err).Msg("invalid speech payload was passed")
		writeError(w, r, err)
		return
	}

	analysis, err := h.services.SpeechService.AnalyzeSpeech(ctx, payload)
	if err != nil {
		log.Err(err).Msg("speech analysis failed")
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, analysis, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing speech analysis response")
	}
}

// decodeSpeechPayload reads the whole body and requires it to be exactly one
// JSON object. Empty bodies, null, arrays, scalars, malformed JSON and
// trailing data are all rejected with [ErrBodyIsNotJSONObject]. A body cut
// off by [http.MaxBytesReader] yields [ErrRequestBodyTooLarge].
func decodeSpeechPayload(body io.Reader) (models.SpeechPayload, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errors.Join(ErrRequestBodyTooLarge, err)
		}
		return nil, errors.Join(ErrBodyIsNotJSONObject, err)
	}

	var payload models.SpeechPayload
	if err = json.Unmarshal(raw, &payload); err != nil {
		return nil, errors.Join(ErrBodyIsNotJSONObject, err)
	}

	if payload == nil {
		return nil, ErrBodyIsNotJSONObject
	}

	return payload, nil
}
