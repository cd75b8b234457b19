package favorite

import (
	"net/http"
	"venuely/infras/otel"
	"venuely/internal/domains/favorite/model/dto"
	"venuely/internal/domains/favorite/service"
	"venuely/shared/constant"
	"venuely/shared/validator"
	"venuely/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Favorite
	otel    otel.Otel
}

func New(service service.Favorite, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/favorites", func(r chi.Router) {
		r.Post("/", handler.Add)
		r.Get("/", handler.List)
		r.Get("/event-ids", handler.ListEventIDs)
		r.Delete("/{event_id}", handler.Remove)
	})
}

// Add bookmarks an event
// @Summary Add favorite
// @Tags Favorite
// @Accept json
// @Produce json
// @Param request body dto.AddFavoriteRequest true "Add Favorite Request"
// @Success 201 {object} dto.FavoriteResponse
// @Failure 409 {object} response.Error
// @Router /v1/favorites [post]
// @Security BearerAuth
func (handler *Handler) Add(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddFavorite")
	defer scope.End()

	req := dto.AddFavoriteRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Add(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add favorite")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// List returns favorited events
// @Summary List favorites
// @Tags Favorite
// @Produce json
// @Success 200 {array} dto.FavoriteEventResponse
// @Router /v1/favorites [get]
// @Security BearerAuth
func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListFavorites")
	defer scope.End()

	res, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list favorites")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ListEventIDs returns the ids of favorited events
// @Summary List favorite event ids
// @Tags Favorite
// @Produce json
// @Success 200 {array} string
// @Router /v1/favorites/event-ids [get]
// @Security BearerAuth
func (handler *Handler) ListEventIDs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListFavoriteEventIDs")
	defer scope.End()

	res, err := handler.service.ListEventIDs(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list favorite event ids")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Remove drops an event from favorites
// @Summary Remove favorite
// @Tags Favorite
// @Produce json
// @Param event_id path string true "Event ID"
// @Success 200 {object} response.Message
// @Router /v1/favorites/{event_id} [delete]
// @Security BearerAuth
func (handler *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveFavorite")
	defer scope.End()

	eventID := chi.URLParam(r, constant.RequestParamEventID)
	if err := validator.ValidateID(constant.RequestParamEventID, eventID); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Remove(ctx, eventID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove favorite")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Removed from favorites")
}
