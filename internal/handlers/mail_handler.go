package handlers

import (
	"net/http"

	"hrmail_backend/internal/dto"
	"hrmail_backend/internal/logger"
	"hrmail_backend/internal/services"
	"hrmail_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type MailHandler struct {
	*BaseHandler
	service       *services.MailService
	maxUploadSize int64
}

func NewMailHandler(base *BaseHandler, service *services.MailService, maxUploadSize int64) *MailHandler {
	return &MailHandler{
		BaseHandler:   base,
		service:       service,
		maxUploadSize: maxUploadSize,
	}
}

func (h *MailHandler) RegisterRoutes(rg *gin.RouterGroup) {
	mail := rg.Group("/mail")
	mail.POST("/send", h.Send)
}

// Send godoc
// @Summary Dispatch a rendered email
// @Description Validates the rendered email, stores the optional attachment, invokes the mail relay once and reports the outcome. The temporary upload is removed whether or not delivery succeeds.
// @Tags mail
// @Accept multipart/form-data
// @Produce json
// @Param to formData string true "Recipient address"
// @Param subject formData string true "Subject line"
// @Param plaintext formData string true "Plain text body"
// @Param html formData string true "HTML body"
// @Param file formData file false "Single attachment"
// @Success 200 {object} dto.SendMailResponse
// @Failure 400 {object} map[string]string "Missing required email fields"
// @Failure 500 {object} dto.SendMailResponse "Relay failure"
// @Router /api/mail/send [post]
func (h *MailHandler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SendMailRequest
	// The bind error is irrelevant here: the validator below decides, and
	// the contract for a bad form is a single canned 400.
	_ = c.ShouldBind(&req)

	if err := h.validator.Validate(req); err != nil {
		appErr := apperrors.ErrMissingFields(err.Error())
		logger.CtxWarn(ctx, "send rejected before relay", "error", err.Error())
		c.JSON(appErr.HTTPCode, gin.H{"error": appErr.Message})
		return
	}

	var upload *services.TempUpload
	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		if h.maxUploadSize > 0 && fh.Size > h.maxUploadSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Attachment exceeds size limit"})
			return
		}

		f, err := fh.Open()
		if err != nil {
			logger.CtxWithError(ctx, "failed to open uploaded file", err, "filename", fh.Filename)
			c.JSON(http.StatusInternalServerError, dto.SendMailResponse{Success: false, Message: "Failed to send email"})
			return
		}
		defer f.Close()

		upload, err = h.service.SaveUpload(ctx, fh.Filename, f)
		if err != nil {
			logger.CtxWithError(ctx, "failed to store uploaded file", err, "filename", fh.Filename)
			c.JSON(http.StatusInternalServerError, dto.SendMailResponse{Success: false, Message: "Failed to send email"})
			return
		}
	}

	if err := h.service.Dispatch(ctx, req, upload); err != nil {
		logger.CtxWithError(ctx, "mail dispatch failed", err, "to", req.To)
		c.JSON(http.StatusInternalServerError, dto.SendMailResponse{Success: false, Message: "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, dto.SendMailResponse{Success: true, Message: "Email sent successfully"})
}
