package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/aniketgore/Influencer_Payment_Backend.git/config"
	"github.com/aniketgore/Influencer_Payment_Backend.git/services"
	"github.com/gin-gonic/gin"
)

// ConfirmPayment godoc
// @Summary Confirm a payment with a proof screenshot
// @Accept multipart/form-data
// @Produce json
// @Param paymentId formData string true "Payment ID from the influencer"
// @Param screenshot formData file true "Proof-of-payment image"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Payment ID not found"
// @Router /confirmations [post]
func (h *Handler) ConfirmPayment(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
	defer cancel()

	paymentID := c.PostForm("paymentId")
	if paymentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter the Payment ID"})
		return
	}

	fileHeader, err := c.FormFile("screenshot")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload a payment screenshot"})
		return
	}
	screenshot, err := readUpload(fileHeader)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}

	conf, sub, err := h.Workflow.ConfirmClientPayment(ctx, paymentID, screenshot)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSubmissionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment ID not found. Please check and try again."})
		case errors.Is(err, services.ErrAlreadyConfirmed):
			c.JSON(http.StatusConflict, gin.H{"error": "This payment has already been confirmed."})
		default:
			config.LogError(h.Logger, "handlers", "ConfirmPayment", "confirm client payment", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again later."})
		}
		return
	}

	// The success view shows the brand and the identifier that was settled.
	c.JSON(http.StatusCreated, gin.H{
		"confirmation": conf,
		"brand":        sub.Brand,
		"payment_id":   sub.PaymentID,
	})
}
