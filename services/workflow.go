package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aniketgore/Influencer_Payment_Backend.git/config"
	"github.com/aniketgore/Influencer_Payment_Backend.git/models"
	"github.com/aniketgore/Influencer_Payment_Backend.git/store"
	"github.com/sirupsen/logrus"
)

// User-facing workflow failures. The handler layer maps these to 4xx
// responses; anything else coming out of the workflow is an infrastructure
// error.
var (
	ErrSelectionIncomplete   = errors.New("brand and influencer must be selected")
	ErrNoPendingPayments     = errors.New("no pending payments for this influencer")
	ErrPaymentChoiceRequired = errors.New("multiple pending payments, pick one to continue")
	ErrUnknownPendingPayment = errors.New("selected pending payment not found")
	ErrOwnerEmailNotFound    = errors.New("brand owner email not found")
	ErrSubmissionNotFound    = errors.New("payment id not found")
	ErrAlreadyConfirmed      = errors.New("payment already confirmed")
)

// ValidationError carries every collected field failure for one form pass.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// UploadedFile is an attachment as it arrived on the request.
type UploadedFile struct {
	Name string
	Data []byte
}

// Workflow drives the two-phase submit/confirm flow over the injected
// repositories, uploader, and notifier.
type Workflow struct {
	Directory     store.Directory
	Submissions   store.Submissions
	Confirmations store.Confirmations
	Uploader      Uploader
	Notifier      Notifier
	Cfg           *config.Config
	Logger        *logrus.Logger
}

func NewWorkflow(stores store.Stores, uploader Uploader, notifier Notifier, cfg *config.Config, logger *logrus.Logger) *Workflow {
	return &Workflow{
		Directory:     stores.Directory,
		Submissions:   stores.Submissions,
		Confirmations: stores.Confirmations,
		Uploader:      uploader,
		Notifier:      notifier,
		Cfg:           cfg,
		Logger:        logger,
	}
}

// SubmitInfluencer runs the influencer submission sequence: gate the
// cascading selection, validate fields, resolve the brand contact, upload the
// QR if one came with a UPI request, advance the chosen ledger entry to
// Processing, insert the submission, and fire the notification.
func (w *Workflow) SubmitInfluencer(ctx context.Context, payload models.SubmissionPayload, qr *UploadedFile) (*models.Submission, error) {
	sel := NewSelection()
	sel.SelectBrand(payload.Brand)
	if sel.Stage() == StageNoBrand || payload.InstagramHandle == "" {
		return nil, ErrSelectionIncomplete
	}

	pending, err := w.Directory.ListPendingPayments(ctx, payload.InstagramHandle, payload.Brand)
	if err != nil {
		return nil, fmt.Errorf("loading pending payments: %w", err)
	}
	sel.SelectInfluencer(payload.InstagramHandle, pending)
	if sel.Locked() {
		return nil, ErrNoPendingPayments
	}
	if payload.PaymentID != "" {
		if !sel.ChoosePayment(payload.PaymentID) {
			return nil, ErrUnknownPendingPayment
		}
	}
	chosen, ok := sel.Chosen()
	if !ok {
		return nil, ErrPaymentChoiceRequired
	}

	fieldErrs := ValidateSubmission(SubmissionInput{
		Brand:             payload.Brand,
		InstagramHandle:   payload.InstagramHandle,
		InstagramPost:     payload.InstagramLink,
		Email:             payload.Email,
		PaymentMethod:     payload.PaymentMethod,
		UpiID:             payload.UpiID,
		HasQrUpload:       qr != nil,
		AccountHolderName: payload.AccountHolderName,
		AccountNumber:     payload.AccountNumber,
		IFSCCode:          payload.IFSCCode,
		BankName:          payload.BankName,
	})
	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	ownerEmail, err := w.Directory.ResolveOwnerEmail(ctx, payload.Brand)
	if err == store.ErrNotFound {
		return nil, ErrOwnerEmailNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolving owner email: %w", err)
	}

	// The submission settles an existing ledger entry, so its identifier is
	// reused rather than reissued. The generator covers ledger rows created
	// before ids were assigned at seed time.
	paymentID := chosen.PaymentID
	if paymentID == "" {
		paymentID = GeneratePaymentID()
	}

	upiQrURL := ""
	if payload.PaymentMethod == models.MethodUPI && qr != nil {
		objectName := ObjectName(paymentID, PurposeUpiQr, qr.Name)
		upiQrURL, err = w.Uploader.Upload(ctx, w.Cfg.QRBucket, objectName, qr.Data)
		if err != nil {
			return nil, fmt.Errorf("uploading UPI QR: %w", err)
		}
	}

	if chosen.PaymentID != "" {
		if err := w.Directory.MarkPendingStatus(ctx, chosen.PaymentID, models.StatusProcessing); err != nil {
			return nil, fmt.Errorf("marking pending payment: %w", err)
		}
	}

	sub := &models.Submission{
		PaymentID:       paymentID,
		Brand:           payload.Brand,
		InfluencerName:  payload.InstagramHandle,
		InstagramPost:   payload.InstagramLink,
		Email:           payload.Email,
		PaymentMethod:   payload.PaymentMethod,
		Amount:          chosen.Amount,
		PaymentStatus:   models.StatusPending,
		IsCollaboration: payload.IsCollaboration,
		OwnerEmail:      ownerEmail,
		CreatedAt:       time.Now(),
	}
	switch payload.PaymentMethod {
	case models.MethodBank:
		sub.BankAccountName = payload.AccountHolderName
		sub.BankAccountNo = payload.AccountNumber
		sub.IFSC = payload.IFSCCode
		sub.BankName = payload.BankName
	case models.MethodUPI:
		sub.UpiID = payload.UpiID
		sub.UpiQr = upiQrURL
	}

	if err := w.Submissions.Insert(ctx, sub); err != nil {
		return nil, fmt.Errorf("inserting submission: %w", err)
	}

	w.Notifier.Notify(w.Cfg.SubmissionWebhookURL, map[string]any{
		"brand":            sub.Brand,
		"influencer_name":  sub.InfluencerName,
		"instagram_post":   sub.InstagramPost,
		"email":            sub.Email,
		"payment_method":   sub.PaymentMethod,
		"amount":           sub.Amount,
		"payment_id":       sub.PaymentID,
		"owner_email":      sub.OwnerEmail,
		"is_collaboration": sub.IsCollaboration,
		"timestamp":        time.Now().Format(time.RFC3339),
	})

	return sub, nil
}

// ConfirmClientPayment runs the client confirmation sequence: resolve the
// submission, upload the proof screenshot, write the confirmation and flip
// the submission to Paid in one step, then fire the notification.
func (w *Workflow) ConfirmClientPayment(ctx context.Context, paymentID string, screenshot *UploadedFile) (*models.Confirmation, *models.Submission, error) {
	sub, err := w.Submissions.FindByPaymentID(ctx, paymentID)
	if err == store.ErrNotFound {
		return nil, nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("resolving submission: %w", err)
	}

	screenshotURL := ""
	if screenshot != nil {
		objectName := ObjectName(paymentID, PurposeScreenshot, screenshot.Name)
		screenshotURL, err = w.Uploader.Upload(ctx, w.Cfg.ScreenshotBucket, objectName, screenshot.Data)
		if err != nil {
			return nil, nil, fmt.Errorf("uploading screenshot: %w", err)
		}
	}

	conf := &models.Confirmation{
		PaymentID:           paymentID,
		ScreenshotURL:       screenshotURL,
		MatchedSubmissionID: sub.ID,
		Status:              models.ConfirmationStatus,
		SentToInfluencer:    false,
		CreatedAt:           time.Now(),
	}
	if err := w.Confirmations.Create(ctx, conf); err != nil {
		if err == store.ErrInvalidTransition {
			return nil, nil, ErrAlreadyConfirmed
		}
		return nil, nil, fmt.Errorf("creating confirmation: %w", err)
	}
	sub.PaymentStatus = models.StatusPaid

	w.Notifier.Notify(w.Cfg.ConfirmationWebhookURL, map[string]any{
		"payment_id":       conf.PaymentID,
		"screenshot_url":   conf.ScreenshotURL,
		"influencer_email": sub.Email,
		"brand":            sub.Brand,
		"influencer_name":  sub.InfluencerName,
		"amount":           sub.Amount,
		"timestamp":        time.Now().Format(time.RFC3339),
	})

	return conf, sub, nil
}
