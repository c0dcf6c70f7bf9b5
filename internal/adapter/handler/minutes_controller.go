package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sunilghanchi/mom-generator/errors"
	dto "github.com/sunilghanchi/mom-generator/internal/adapter/dto/minutes"
	"github.com/sunilghanchi/mom-generator/internal/media"
	minutesuse "github.com/sunilghanchi/mom-generator/internal/usecase/minutes"
)

// MinutesController handles the upload endpoint that triggers the pipeline
type MinutesController struct {
	svc    minutesuse.Service
	logger *zap.Logger
}

// NewMinutesController creates a new minutes controller
func NewMinutesController(svc minutesuse.Service, logger *zap.Logger) *MinutesController {
	return &MinutesController{svc: svc, logger: logger}
}

// Generate runs the full pipeline on an uploaded recording
// @Summary      Generate Minutes of Meeting
// @Description  Accepts an audio or video recording, transcribes it and returns a formatted MoM document
// @Tags         Minutes
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file    true   "Audio or video recording (max 25 MB)"
// @Param        kind  formData  string  false  "Declared media kind (audio|video); inferred from the extension when omitted"
// @Success      200   {object}  map[string]interface{}  "Generated document"
// @Failure      400   {object}  map[string]interface{}  "Missing file or invalid kind"
// @Failure      422   {object}  map[string]interface{}  "Audio extraction failed"
// @Failure      502   {object}  map[string]interface{}  "Hosted AI service failed"
// @Router       /minutes [post]
func (mc *MinutesController) Generate(c echo.Context) error {
	var req dto.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(mc.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(mc.logger, c, errors.ErrInvalidArgument("kind must be 'audio' or 'video'"))
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return HandleError(mc.logger, c, errors.ErrMissingFile())
	}

	src, err := fh.Open()
	if err != nil {
		return HandleError(mc.logger, c, errors.ErrInternal(err))
	}
	defer src.Close()

	kind := media.Kind(req.Kind)
	if kind == "" {
		kind = media.KindFromFilename(fh.Filename)
	}

	if mc.logger != nil {
		mc.logger.Info("processing upload",
			zap.String("filename", fh.Filename),
			zap.String("kind", string(kind)),
			zap.Int64("size_bytes", fh.Size))
	}

	document, err := mc.svc.GenerateMinutes(c.Request().Context(), media.Upload{
		Reader:   src,
		Kind:     kind,
		Filename: fh.Filename,
	})
	if err != nil {
		return HandleError(mc.logger, c, err)
	}

	return HandleSuccess(mc.logger, c, dto.GenerateResponse{Minutes: document})
}
