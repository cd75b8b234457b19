package event

import (
	"net/http"
	"venuely/infras/otel"
	"venuely/internal/domains/event/model/dto"
	"venuely/internal/domains/event/service"
	"venuely/shared/constant"
	gDto "venuely/shared/dto"
	"venuely/shared/validator"
	"venuely/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Event
	otel    otel.Otel
}

func New(service service.Event, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/events", func(r chi.Router) {
		r.Post("/", handler.Create)
		r.Get("/mine", handler.ListMine)
		r.Get("/open", handler.ListOpen)
		r.Get("/{id}", handler.Get)
		r.Patch("/{id}", handler.Update)
		r.Patch("/{id}/status", handler.UpdateStatus)
		r.Delete("/{id}", handler.Delete)
	})
}

// Create posts a new event
// @Summary Create event
// @Description Post an event so organizers can invite the host. Only accounts with the user role may post.
// @Tags Event
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Create Event Request"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/events [post]
// @Security BearerAuth
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEvent")
	defer scope.End()

	req := dto.CreateEventRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create event")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Event created " + res.ID)

	response.WithJSON(w, http.StatusCreated, res)
}

// ListMine lists the caller's events
// @Summary List own events
// @Tags Event
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param sort_by query string false "event_date, guest_count, budget or created_at"
// @Param sort_dir query string false "ASC or DESC"
// @Success 200 {object} dto.GetEventsResponse
// @Router /v1/events/mine [get]
// @Security BearerAuth
func (handler *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListMyEvents")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.service.ListMine(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list events")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ListOpen lists events accepting invites
// @Summary List open events
// @Description Organizers browse events that are still open.
// @Tags Event
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetEventsResponse
// @Router /v1/events/open [get]
// @Security BearerAuth
func (handler *Handler) ListOpen(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListOpenEvents")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.service.ListOpen(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list open events")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Get returns one event
// @Summary Get event
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/events/{id} [get]
// @Security BearerAuth
func (handler *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEvent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(constant.RequestParamID, id); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get event")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Update edits an event
// @Summary Update event
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.UpdateEventRequest true "Update Event Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/events/{id} [patch]
// @Security BearerAuth
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEvent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(constant.RequestParamID, id); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.UpdateEventRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update event")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Event updated successfully")
}

// UpdateStatus moves an event through its lifecycle
// @Summary Update event status
// @Description open to in_progress or cancelled, in_progress to completed or cancelled.
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.UpdateStatusRequest true "Status"
// @Success 200 {object} response.Message
// @Failure 409 {object} response.Error
// @Router /v1/events/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEventStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(constant.RequestParamID, id); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update event status")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Event status updated to "+req.Status)
}

// Delete removes an event
// @Summary Delete event
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Router /v1/events/{id} [delete]
// @Security BearerAuth
func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEvent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(constant.RequestParamID, id); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete event")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Event deleted successfully")
}
