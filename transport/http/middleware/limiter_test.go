package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"venuely/config"
	otelMocks "venuely/infras/otel/mocks"
	cacheMocks "venuely/shared/cache/mocks"
	"venuely/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		enable        bool
		headers       map[string]string
		setupMock     func(m *cacheMocks.MockRedisCache)
		wantStatus    int
		wantRemaining string
	}{
		{
			name:       "disabled",
			setupMock:  func(*cacheMocks.MockRedisCache) {},
			wantStatus: http.StatusOK,
		},
		{
			name:    "under the limit keyed by forwarded address",
			enable:  true,
			headers: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"},
			setupMock: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Incr(gomock.Any(), "limiter:203.0.113.7", 60).Return(int64(2), nil)
			},
			wantStatus:    http.StatusOK,
			wantRemaining: "1",
		},
		{
			name:    "over the limit",
			enable:  true,
			headers: map[string]string{"X-Real-IP": "198.51.100.4"},
			setupMock: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Incr(gomock.Any(), "limiter:198.51.100.4", 60).Return(int64(4), nil)
			},
			wantStatus:    http.StatusTooManyRequests,
			wantRemaining: "0",
		},
		{
			name:   "counter store down lets the request through",
			enable: true,
			setupMock: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Incr(gomock.Any(), "limiter:192.0.2.1", 60).Return(int64(0), errors.New("connection refused"))
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(cache)

			cfg := &config.Config{}
			cfg.App.RateLimiter.Enable = tt.enable
			cfg.App.RateLimiter.MaxRequests = 3
			cfg.App.RateLimiter.WindowSeconds = 60

			limited := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, cache).RateLimit()(
				http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }),
			)

			req := httptest.NewRequest(http.MethodGet, "/v1/events/open", nil)
			req.RemoteAddr = "192.0.2.1:51234"

			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			limited.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get("X-RateLimit-Remaining"))
		})
	}
}
