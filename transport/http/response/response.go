package response

import (
	"encoding/json"
	"net/http"
	"venuely/shared/constant"
	"venuely/shared/failure"

	"github.com/rs/zerolog/log"
)

const msgInternalError = "internal server error"

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithMessage(w http.ResponseWriter, code int, message string) {
	write(w, code, Message{Message: &message})
}

func WithJSON(w http.ResponseWriter, code int, payload any) {
	write(w, code, Data[any]{Data: &payload})
}

// WithError writes err under its failure code. Internal errors are logged and reported
// without their detail.
func WithError(w http.ResponseWriter, err error) {
	msg := err.Error()

	if failure.IsInternal(err) {
		log.Error().Err(err).Msg("internal error")

		msg = msgInternalError
	}

	write(w, failure.GetCode(err), Error{Error: &msg})
}

func WithRequestLimitExceeded(w http.ResponseWriter) {
	WithMessage(w, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(w http.ResponseWriter) {
	WithMessage(w, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func write(w http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode response")

		code, body = http.StatusInternalServerError, []byte(`{"error":"`+msgInternalError+`"}`)
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	w.WriteHeader(code)

	if _, err = w.Write(body); err != nil {
		log.Warn().Err(err).Msg("failed to write response")
	}
}
