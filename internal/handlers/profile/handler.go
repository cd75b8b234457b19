package profile

import (
	"net/http"
	"venuely/infras/otel"
	"venuely/internal/domains/profile/model/dto"
	"venuely/internal/domains/profile/service"
	"venuely/shared/constant"
	"venuely/shared/validator"
	"venuely/transport/http/request"
	"venuely/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Profile
	otel    otel.Otel
}

func New(service service.Profile, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/profiles/me", func(r chi.Router) {
		r.Get("/", handler.GetMe)
		r.Patch("/", handler.UpdateMe)
		r.Post("/avatar", handler.UploadAvatar)
	})
}

// GetMe returns the caller's profile
// @Summary Get own profile
// @Tags Profile
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} response.Error
// @Router /v1/profiles/me [get]
// @Security BearerAuth
func (handler *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMe")
	defer scope.End()

	res, err := handler.service.GetMe(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateMe updates the caller's profile
// @Summary Update own profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Update Profile Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Router /v1/profiles/me [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMe")
	defer scope.End()

	req := dto.UpdateProfileRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateMe(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update profile")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Profile updated successfully")
}

// UploadAvatar replaces the caller's avatar
// @Summary Upload avatar
// @Tags Profile
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Avatar image"
// @Success 200 {object} dto.UploadAvatarResponse
// @Failure 400 {object} response.Error
// @Router /v1/profiles/me/avatar [post]
// @Security BearerAuth
func (handler *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadAvatar")
	defer scope.End()

	upload, err := request.FormUpload(r, constant.RequestMaxMemory)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read avatar upload")

		response.WithError(w, err)

		return
	}
	defer upload.Close()

	res, err := handler.service.UploadAvatar(ctx, dto.UploadAvatarRequest{
		File:        upload.File,
		FileName:    upload.FileName,
		ContentType: upload.ContentType,
		Size:        upload.Size,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload avatar")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Avatar uploaded")

	response.WithJSON(w, http.StatusOK, res)
}
