package review

import (
	"net/http"
	"venuely/infras/otel"
	"venuely/internal/domains/review/model/dto"
	"venuely/internal/domains/review/service"
	"venuely/shared/constant"
	"venuely/shared/validator"
	"venuely/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/reviews", func(r chi.Router) {
		r.Post("/", handler.Create)
		r.Get("/", handler.ListByHotel)
	})
}

// Create rates a hotel
// @Summary Create review
// @Tags Review
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Create Review Request"
// @Success 201 {object} dto.ReviewResponse
// @Failure 400 {object} response.Error
// @Router /v1/reviews [post]
// @Security BearerAuth
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReview")
	defer scope.End()

	req := dto.CreateReviewRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create review")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// ListByHotel lists a hotel's reviews
// @Summary List reviews
// @Tags Review
// @Produce json
// @Param hotel_id query string true "Hotel ID"
// @Success 200 {object} dto.HotelReviewsResponse
// @Router /v1/reviews [get]
// @Security BearerAuth
func (handler *Handler) ListByHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListReviews")
	defer scope.End()

	hotelID := r.URL.Query().Get(constant.RequestParamHotelID)
	if err := validator.ValidateID(constant.RequestParamHotelID, hotelID); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ListByHotel(ctx, hotelID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list reviews")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
