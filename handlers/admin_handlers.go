package handlers

import (
	"context"
	"net/http"

	"github.com/aniketgore/Influencer_Payment_Backend.git/config"
	"github.com/aniketgore/Influencer_Payment_Backend.git/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// confirmationRow is a confirmation with display fields joined in from the
// matched submission for the dashboard table.
type confirmationRow struct {
	models.Confirmation
	Brand          string `json:"brand,omitempty"`
	InfluencerName string `json:"influencer_name,omitempty"`
	Email          string `json:"email,omitempty"`
	PaymentMethod  string `json:"payment_method,omitempty"`
}

// AdminListSubmissions godoc
// @Summary List all influencer submissions, newest first
// @Produce json
// @Success 200 {array} models.Submission
// @Router /admin/submissions [get]
func (h *Handler) AdminListSubmissions(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	subs, err := h.Submissions.List(ctx)
	if err != nil {
		config.LogError(h.Logger, "handlers", "AdminListSubmissions", "list submissions", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve submissions"})
		return
	}
	c.JSON(http.StatusOK, subs)
}

// AdminListConfirmations godoc
// @Summary List all payment confirmations with joined submission fields
// @Produce json
// @Success 200 {array} confirmationRow
// @Router /admin/confirmations [get]
func (h *Handler) AdminListConfirmations(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	confs, err := h.Confirmations.List(ctx)
	if err != nil {
		config.LogError(h.Logger, "handlers", "AdminListConfirmations", "list confirmations", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve confirmations"})
		return
	}

	ids := make([]primitive.ObjectID, 0, len(confs))
	for _, conf := range confs {
		ids = append(ids, conf.MatchedSubmissionID)
	}
	subs, err := h.Submissions.FindByIDs(ctx, ids)
	if err != nil {
		config.LogError(h.Logger, "handlers", "AdminListConfirmations", "join submissions", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve confirmations"})
		return
	}
	byID := make(map[primitive.ObjectID]models.Submission, len(subs))
	for _, sub := range subs {
		byID[sub.ID] = sub
	}

	rows := make([]confirmationRow, 0, len(confs))
	for _, conf := range confs {
		row := confirmationRow{Confirmation: conf}
		if sub, ok := byID[conf.MatchedSubmissionID]; ok {
			row.Brand = sub.Brand
			row.InfluencerName = sub.InfluencerName
			row.Email = sub.Email
			row.PaymentMethod = sub.PaymentMethod
		}
		rows = append(rows, row)
	}
	c.JSON(http.StatusOK, rows)
}
