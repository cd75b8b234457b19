package hotel

import (
	"net/http"
	"venuely/infras/otel"
	"venuely/internal/domains/hotel/model"
	"venuely/internal/domains/hotel/model/dto"
	"venuely/internal/domains/hotel/service"
	"venuely/shared/constant"
	gDto "venuely/shared/dto"
	"venuely/shared/validator"
	"venuely/transport/http/request"
	"venuely/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hotel
	otel    otel.Otel
}

func New(service service.Hotel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/hotels", func(r chi.Router) {
		r.Post("/", handler.Create)
		r.Get("/", handler.List)
		r.Get("/mine", handler.ListMine)
		r.Post("/media", handler.UploadMedia)
		r.Get("/{id}", handler.Get)
		r.Patch("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
}

// Create lists a new venue
// @Summary Create hotel
// @Description Organizers list a venue. At most 20 images and 3 videos.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param request body dto.CreateHotelRequest true "Create Hotel Request"
// @Success 201 {object} dto.HotelResponse
// @Failure 400 {object} response.Error
// @Router /v1/hotels [post]
// @Security BearerAuth
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHotel")
	defer scope.End()

	req := dto.CreateHotelRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hotel")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel created " + res.ID)

	response.WithJSON(w, http.StatusCreated, res)
}

// List browses venues
// @Summary List hotels
// @Tags Hotel
// @Produce json
// @Param city query string false "City contains"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetHotelsResponse
// @Router /v1/hotels [get]
// @Security BearerAuth
func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListHotels")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.service.List(ctx, params, r.URL.Query().Get(model.FieldCity))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list hotels")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ListMine lists the caller's venues
// @Summary List own hotels
// @Tags Hotel
// @Produce json
// @Success 200 {array} dto.HotelResponse
// @Router /v1/hotels/mine [get]
// @Security BearerAuth
func (handler *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListMyHotels")
	defer scope.End()

	res, err := handler.service.ListMine(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list own hotels")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Get returns a venue with its halls and menu bundles
// @Summary Get hotel
// @Tags Hotel
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} dto.HotelDetailResponse
// @Failure 404 {object} response.Error
// @Router /v1/hotels/{id} [get]
// @Security BearerAuth
func (handler *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotel")
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
		log.Error().Err(err).Msg("failed to get hotel")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Update edits a venue
// @Summary Update hotel
// @Tags Hotel
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param request body dto.UpdateHotelRequest true "Update Hotel Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/hotels/{id} [patch]
// @Security BearerAuth
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHotel")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(constant.RequestParamID, id); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.UpdateHotelRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hotel")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Hotel updated successfully")
}

// Delete removes a venue with its halls, menu bundles and reviews
// @Summary Delete hotel
// @Tags Hotel
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Router /v1/hotels/{id} [delete]
// @Security BearerAuth
func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHotel")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(constant.RequestParamID, id); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete hotel")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Hotel deleted successfully")
}

// UploadMedia stores a venue image, video or parking picture
// @Summary Upload hotel media
// @Tags Hotel
// @Accept multipart/form-data
// @Produce json
// @Param kind query string false "image, video or parking"
// @Param file formData file true "Media file"
// @Success 200 {object} dto.UploadMediaResponse
// @Failure 400 {object} response.Error
// @Router /v1/hotels/media [post]
// @Security BearerAuth
func (handler *Handler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadHotelMedia")
	defer scope.End()

	r.Body = http.MaxBytesReader(w, r.Body, constant.RequestMaxVideo)

	upload, err := request.FormUpload(r, constant.RequestMaxMemory)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read media upload")

		response.WithError(w, err)

		return
	}
	defer upload.Close()

	res, err := handler.service.UploadMedia(ctx, dto.UploadMediaRequest{
		Kind:        r.URL.Query().Get(constant.RequestParamKind),
		File:        upload.File,
		FileName:    upload.FileName,
		ContentType: upload.ContentType,
		Size:        upload.Size,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload hotel media")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
