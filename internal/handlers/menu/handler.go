package menu

import (
	"net/http"
	"venuely/infras/otel"
	"venuely/internal/domains/menu/model/dto"
	"venuely/internal/domains/menu/service"
	"venuely/shared/constant"
	"venuely/shared/validator"
	"venuely/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.MenuBundle
	otel    otel.Otel
}

func New(service service.MenuBundle, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/menu-bundles", func(r chi.Router) {
		r.Post("/", handler.Create)
		r.Get("/", handler.ListByHotel)
		r.Patch("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
}

// Create adds a menu bundle to one of the caller's hotels
// @Summary Create menu bundle
// @Tags MenuBundle
// @Accept json
// @Produce json
// @Param request body dto.CreateMenuBundleRequest true "Create Menu bundle Request"
// @Success 201 {object} dto.MenuBundleResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/menu-bundles [post]
// @Security BearerAuth
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMenuBundle")
	defer scope.End()

	req := dto.CreateMenuBundleRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create menu bundle")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// ListByHotel lists the menu bundles of a hotel
// @Summary List menu bundles
// @Tags MenuBundle
// @Produce json
// @Param hotel_id query string true "Hotel ID"
// @Success 200 {array} dto.MenuBundleResponse
// @Router /v1/menu-bundles [get]
// @Security BearerAuth
func (handler *Handler) ListByHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListMenuBundles")
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
		log.Error().Err(err).Msg("failed to list menu bundles")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Update edits a menu bundle
// @Summary Update menu bundle
// @Tags MenuBundle
// @Accept json
// @Produce json
// @Param id path string true "Menu bundle ID"
// @Param request body dto.UpdateMenuBundleRequest true "Update Menu bundle Request"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Router /v1/menu-bundles/{id} [patch]
// @Security BearerAuth
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMenuBundle")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(constant.RequestParamID, id); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.UpdateMenuBundleRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update menu bundle")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Menu bundle updated successfully")
}

// Delete removes a menu bundle
// @Summary Delete menu bundle
// @Tags MenuBundle
// @Produce json
// @Param id path string true "Menu bundle ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Router /v1/menu-bundles/{id} [delete]
// @Security BearerAuth
func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMenuBundle")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(constant.RequestParamID, id); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete menu bundle")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Menu bundle deleted successfully")
}
