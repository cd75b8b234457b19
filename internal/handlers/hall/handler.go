package hall

import (
	"net/http"
	"venuely/infras/otel"
	"venuely/internal/domains/hall/model/dto"
	"venuely/internal/domains/hall/service"
	"venuely/shared/constant"
	"venuely/shared/validator"
	"venuely/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hall
	otel    otel.Otel
}

func New(service service.Hall, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/halls", func(r chi.Router) {
		r.Post("/", handler.Create)
		r.Get("/", handler.ListByHotel)
		r.Patch("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
}

// Create adds a hall to one of the caller's hotels
// @Summary Create hall
// @Tags Hall
// @Accept json
// @Produce json
// @Param request body dto.CreateHallRequest true "Create Hall Request"
// @Success 201 {object} dto.HallResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/halls [post]
// @Security BearerAuth
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHall")
	defer scope.End()

	req := dto.CreateHallRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hall")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// ListByHotel lists the halls of a hotel
// @Summary List halls
// @Tags Hall
// @Produce json
// @Param hotel_id query string true "Hotel ID"
// @Success 200 {array} dto.HallResponse
// @Router /v1/halls [get]
// @Security BearerAuth
func (handler *Handler) ListByHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListHalls")
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
		log.Error().Err(err).Msg("failed to list halls")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Update edits a hall
// @Summary Update hall
// @Tags Hall
// @Accept json
// @Produce json
// @Param id path string true "Hall ID"
// @Param request body dto.UpdateHallRequest true "Update Hall Request"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Router /v1/halls/{id} [patch]
// @Security BearerAuth
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHall")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(constant.RequestParamID, id); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.UpdateHallRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hall")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Hall updated successfully")
}

// Delete removes a hall
// @Summary Delete hall
// @Tags Hall
// @Produce json
// @Param id path string true "Hall ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Router /v1/halls/{id} [delete]
// @Security BearerAuth
func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHall")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(constant.RequestParamID, id); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete hall")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Hall deleted successfully")
}
