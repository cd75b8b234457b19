package recommendation

//go:generate go run go.uber.org/mock/mockgen -source=./recommendation.go -destination=./mocks/recommendation_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"venuely/config"
	"venuely/infras/otel"
	"venuely/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	recommendationsPath = "/api/recommendations"
	maxErrorBodyBytes   = 4 << 10
)

var (
	ErrNotConfigured = errors.New("recommendation service is not configured")
	ErrUpstream      = errors.New("recommendation service returned an error")
)

// Result is the upstream payload. Items are passed through untouched.
type Result struct {
	Recommendations []json.RawMessage `json:"recommendations"`
}

type Client interface {
	Recommendations(ctx context.Context, accessToken string) (Result, error)
}

type clientImpl struct {
	baseURL string
	http    *http.Client
	otel    otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Client {
	timeout := time.Duration(cfg.External.Recommendation.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &clientImpl{
		baseURL: strings.TrimRight(cfg.External.Recommendation.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		otel:    otel,
	}
}

func (c *clientImpl) Recommendations(ctx context.Context, accessToken string) (res Result, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".Recommendations")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if c.baseURL == "" {
		return res, ErrNotConfigured
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+recommendationsPath, nil)
	if err != nil {
		return res, fmt.Errorf("failed to build recommendation request: %w", err)
	}

	request.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+accessToken)
	request.Header.Set("Accept", constant.ContentTypeJSON)

	response, err := c.http.Do(request)
	if err != nil {
		log.Error().Err(err).Msg("failed to call recommendation service")

		return res, fmt.Errorf("failed to call recommendation service: %w", err)
	}
	defer response.Body.Close()

	scope.SetAttribute("http.status_code", response.StatusCode)

	if response.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBodyBytes))
		log.Error().Int("status", response.StatusCode).Str("body", string(body)).Msg("recommendation service error")

		return res, fmt.Errorf("%w: status %d", ErrUpstream, response.StatusCode)
	}

	if err = json.NewDecoder(response.Body).Decode(&res); err != nil {
		return res, fmt.Errorf("failed to decode recommendations: %w", err)
	}

	if res.Recommendations == nil {
		res.Recommendations = []json.RawMessage{}
	}

	return res, nil
}
