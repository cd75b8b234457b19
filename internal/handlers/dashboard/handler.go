package dashboard

import (
	"net/http"
	"venuely/infras/otel"
	"venuely/internal/domains/dashboard/service"
	"venuely/shared/constant"
	"venuely/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/dashboard", handler.OrganizerStats)
}

// OrganizerStats returns the organizer's counters
// @Summary Organizer dashboard
// @Description Venues listed, invites sent, favorites and events currently open.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dto.OrganizerStatsResponse
// @Failure 403 {object} response.Error
// @Router /v1/dashboard [get]
// @Security BearerAuth
func (handler *Handler) OrganizerStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OrganizerStats")
	defer scope.End()

	res, err := handler.service.OrganizerStats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load dashboard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
