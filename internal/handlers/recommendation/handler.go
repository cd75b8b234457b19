package recommendation

import (
	"errors"
	"net/http"
	"venuely/infras/jwt"
	"venuely/infras/otel"
	"venuely/infras/recommendation"
	"venuely/shared/constant"
	"venuely/shared/failure"
	"venuely/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	client recommendation.Client
	otel   otel.Otel
}

func New(client recommendation.Client, otel otel.Otel) Handler {
	return Handler{
		client: client,
		otel:   otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/recommendations", handler.List)
}

// List forwards the caller's token to the recommendation service
// @Summary Venue recommendations
// @Description Items are returned exactly as the recommendation service produced them.
// @Tags Recommendation
// @Produce json
// @Success 200 {object} recommendation.Result
// @Failure 502 {object} response.Error
// @Router /v1/recommendations [get]
// @Security BearerAuth
func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListRecommendations")
	defer scope.End()

	accessToken, err := jwt.ExtractTokenFromHeader(r.Header.Get(constant.RequestHeaderAuthorization))
	if err != nil {
		response.WithError(w, failure.Unauthorized(err.Error()))

		return
	}

	res, err := handler.client.Recommendations(ctx, accessToken)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get recommendations")

		switch {
		case errors.Is(err, recommendation.ErrNotConfigured):
			response.WithError(w, failure.Unimplemented("recommendations are not available"))
		default:
			response.WithError(w, failure.BadGateway("failed to load recommendations"))
		}

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
