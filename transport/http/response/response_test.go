package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"venuely/shared/failure"
	"venuely/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "caller facing failure",
			err:      fmt.Errorf("send invite: %w", failure.AlreadyInvited),
			wantCode: http.StatusConflict,
			wantBody: `{"error":"send invite: already invited"}`,
		},
		{
			name:     "internal detail is hidden",
			err:      errors.New("pq: relation \"invites\" does not exist"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error"}`,
		},
		{
			name:     "upstream failure is shown",
			err:      failure.BadGateway("recommendation service unavailable"),
			wantCode: http.StatusBadGateway,
			wantBody: `{"error":"recommendation service unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"id": "e-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"e-1"}}`, rec.Body.String())
}

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithMessage(rec, http.StatusOK, "Event deleted successfully")

	assert.JSONEq(t, `{"message":"Event deleted successfully"}`, rec.Body.String())
}
