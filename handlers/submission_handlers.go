package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/aniketgore/Influencer_Payment_Backend.git/config"
	"github.com/aniketgore/Influencer_Payment_Backend.git/models"
	"github.com/aniketgore/Influencer_Payment_Backend.git/services"
	"github.com/gin-gonic/gin"
)

// SubmitInfluencer godoc
// @Summary Submit an influencer payment request
// @Accept multipart/form-data
// @Produce json
// @Param upiQrCode formData file false "UPI QR image (upi method only)"
// @Success 201 {object} models.Submission
// @Failure 400 {object} map[string]interface{} "Validation failures"
// @Failure 422 {object} map[string]string "Selection or lookup gate failed"
// @Router /submissions [post]
func (h *Handler) SubmitInfluencer(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
	defer cancel()

	var payload models.SubmissionPayload
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var qr *services.UploadedFile
	if fileHeader, err := c.FormFile("upiQrCode"); err == nil {
		upload, err := readUpload(fileHeader)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
			return
		}
		qr = upload
	}

	sub, err := h.Workflow.SubmitInfluencer(ctx, payload, qr)
	if err != nil {
		h.respondSubmitError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"payment_id": sub.PaymentID,
		"submission": sub,
	})
}

func (h *Handler) respondSubmitError(c *gin.Context, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": verr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrSelectionIncomplete),
		errors.Is(err, services.ErrNoPendingPayments),
		errors.Is(err, services.ErrPaymentChoiceRequired),
		errors.Is(err, services.ErrUnknownPendingPayment),
		errors.Is(err, services.ErrOwnerEmailNotFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		config.LogError(h.Logger, "handlers", "SubmitInfluencer", "submit influencer form", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again later."})
	}
}
