package invite

import (
	"net/http"
	"venuely/infras/otel"
	"venuely/internal/domains/invite/model/dto"
	"venuely/internal/domains/invite/service"
	"venuely/shared/constant"
	"venuely/shared/validator"
	"venuely/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Invite
	otel    otel.Otel
}

func New(service service.Invite, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/invites", func(r chi.Router) {
		r.Post("/", handler.Send)
		r.Get("/received", handler.ListForUser)
		r.Get("/sent", handler.ListForOrganizer)
		r.Get("/sent/event-ids", handler.ListInvitedEventIDs)
		r.Patch("/{id}", handler.Act)
	})
}

// Send invites an event owner to one of the caller's venues
// @Summary Send invite
// @Description Organizers only. Fails with 422 when the caller has no venue and 409 when the event was already invited.
// @Tags Invite
// @Accept json
// @Produce json
// @Param request body dto.SendInviteRequest true "Send Invite Request"
// @Success 201 {object} dto.InviteResponse
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/invites [post]
// @Security BearerAuth
func (handler *Handler) Send(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendInvite")
	defer scope.End()

	req := dto.SendInviteRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Send(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send invite")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invite sent " + res.ID)

	response.WithJSON(w, http.StatusCreated, res)
}

// Act accepts or rejects a pending invite
// @Summary Accept or reject invite
// @Description Only the recipient may act, once. Accepting opens a chat with the organizer.
// @Tags Invite
// @Accept json
// @Produce json
// @Param id path string true "Invite ID"
// @Param request body dto.ActRequest true "Action"
// @Success 200 {object} dto.ActResponse
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/invites/{id} [patch]
// @Security BearerAuth
func (handler *Handler) Act(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ActOnInvite")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(constant.RequestParamID, id); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.ActRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Act(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to act on invite")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invite " + res.InviteID + " " + res.Status)

	response.WithJSON(w, http.StatusOK, res)
}

// ListForUser lists invites addressed to the caller
// @Summary List received invites
// @Tags Invite
// @Produce json
// @Success 200 {array} dto.UserInviteResponse
// @Router /v1/invites/received [get]
// @Security BearerAuth
func (handler *Handler) ListForUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListReceivedInvites")
	defer scope.End()

	res, err := handler.service.ListForUser(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list received invites")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ListForOrganizer lists invites the caller sent
// @Summary List sent invites
// @Description The recipient's contact details are included once an invite is accepted.
// @Tags Invite
// @Produce json
// @Success 200 {array} dto.OrganizerInviteResponse
// @Router /v1/invites/sent [get]
// @Security BearerAuth
func (handler *Handler) ListForOrganizer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListSentInvites")
	defer scope.End()

	res, err := handler.service.ListForOrganizer(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list sent invites")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ListInvitedEventIDs lists the events the caller already invited
// @Summary List invited event ids
// @Tags Invite
// @Produce json
// @Success 200 {array} string
// @Router /v1/invites/sent/event-ids [get]
// @Security BearerAuth
func (handler *Handler) ListInvitedEventIDs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListInvitedEventIDs")
	defer scope.End()

	res, err := handler.service.ListInvitedEventIDs(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list invited event ids")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
