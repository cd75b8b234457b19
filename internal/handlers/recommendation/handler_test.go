package recommendation_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "venuely/infras/otel/mocks"
	"venuely/infras/recommendation"
	"venuely/infras/recommendation/mocks"
	handler "venuely/internal/handlers/recommendation"
)

func TestHandler_List(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		setupMock func(client *mocks.MockClient)
		wantCode  int
		wantBody  string
	}{
		{
			name:   "forwards the bearer token and passes items through",
			header: "Bearer user-access",
			setupMock: func(client *mocks.MockClient) {
				client.EXPECT().Recommendations(gomock.Any(), "user-access").Return(recommendation.Result{
					Recommendations: []json.RawMessage{json.RawMessage(`{"hotel_id":"h-1","score":0.92}`)},
				}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"data":{"recommendations":[{"hotel_id":"h-1","score":0.92}]}}`,
		},
		{
			name:      "missing token",
			setupMock: func(*mocks.MockClient) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:   "service not configured",
			header: "Bearer user-access",
			setupMock: func(client *mocks.MockClient) {
				client.EXPECT().Recommendations(gomock.Any(), gomock.Any()).Return(recommendation.Result{}, recommendation.ErrNotConfigured)
			},
			wantCode: http.StatusNotImplemented,
		},
		{
			name:   "upstream failure",
			header: "Bearer user-access",
			setupMock: func(client *mocks.MockClient) {
				client.EXPECT().Recommendations(gomock.Any(), gomock.Any()).
					Return(recommendation.Result{}, fmt.Errorf("%w: status 500", recommendation.ErrUpstream))
			},
			wantCode: http.StatusBadGateway,
		},
		{
			name:   "unreachable upstream",
			header: "Bearer user-access",
			setupMock: func(client *mocks.MockClient) {
				client.EXPECT().Recommendations(gomock.Any(), gomock.Any()).Return(recommendation.Result{}, errors.New("dial tcp: refused"))
			},
			wantCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			tt.setupMock(client)

			h := handler.New(client, otelMocks.NewOtel())

			req := httptest.NewRequest(http.MethodGet, "/v1/recommendations", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			h.List(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				require.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
