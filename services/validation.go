package services

import (
	"strings"

	"github.com/aniketgore/Influencer_Payment_Backend.git/models"
	"github.com/go-playground/validator/v10"
)

// FieldError is one user-facing validation failure. All free-text failures
// for a form are collected and returned together.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SubmissionInput carries the influencer form fields the declarative rules
// run against. HasQrUpload is set when a QR image arrived with the request,
// since a UPI submission may carry a QR instead of a UPI address.
type SubmissionInput struct {
	Brand           string `validate:"required"`
	InstagramHandle string `validate:"required"`
	InstagramPost   string `validate:"required,instagram_post"`
	Email           string `validate:"required,contains=@"`
	PaymentMethod   string `validate:"required,oneof=bank upi"`

	UpiID       string `validate:"omitempty,upi_address"`
	HasQrUpload bool

	AccountHolderName string
	AccountNumber     string
	IFSCCode          string
	BankName          string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// The post must point at the platform the collaboration ran on.
	v.RegisterValidation("instagram_post", func(fl validator.FieldLevel) bool {
		return strings.Contains(fl.Field().String(), "instagram.com")
	})

	// localpart@provider with both parts at least 3 characters.
	v.RegisterValidation("upi_address", func(fl validator.FieldLevel) bool {
		parts := strings.Split(fl.Field().String(), "@")
		return len(parts) == 2 && len(parts[0]) >= 3 && len(parts[1]) >= 3
	})

	v.RegisterStructValidation(submissionStructLevel, SubmissionInput{})
	return v
}

func submissionStructLevel(sl validator.StructLevel) {
	in := sl.Current().Interface().(SubmissionInput)

	// Weak identity binding: the contact email should mention the handle the
	// payment is for. Not cryptographic, just a typo catch.
	if in.InstagramHandle != "" && in.Email != "" && !strings.Contains(in.Email, in.InstagramHandle) {
		sl.ReportError(in.Email, "Email", "Email", "handle_match", "")
	}

	switch in.PaymentMethod {
	case models.MethodBank:
		if in.AccountHolderName == "" || in.AccountNumber == "" || in.IFSCCode == "" || in.BankName == "" {
			sl.ReportError(in.AccountNumber, "AccountNumber", "AccountNumber", "bank_details", "")
		}
	case models.MethodUPI:
		if in.UpiID == "" && !in.HasQrUpload {
			sl.ReportError(in.UpiID, "UpiID", "UpiID", "upi_required", "")
		}
	}
}

// ValidateSubmission runs every rule and returns the full set of failures,
// empty when the input is clean.
func ValidateSubmission(in SubmissionInput) []FieldError {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "form", Message: "Invalid input"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   formFieldName(fe.StructField()),
			Message: validationMessage(fe.StructField(), fe.Tag()),
		})
	}
	return out
}

// formFieldName maps struct fields back to the names the form posts, so the
// frontend can attach errors inline.
func formFieldName(structField string) string {
	switch structField {
	case "Brand":
		return "brand"
	case "InstagramHandle":
		return "instagramHandle"
	case "InstagramPost":
		return "instagramLink"
	case "Email":
		return "email"
	case "PaymentMethod":
		return "paymentMethod"
	case "UpiID":
		return "upiId"
	case "AccountNumber":
		return "bankDetails"
	default:
		return structField
	}
}

func validationMessage(structField, tag string) string {
	switch {
	case structField == "Brand":
		return "Please select a brand"
	case structField == "InstagramHandle":
		return "Please select an influencer"
	case structField == "InstagramPost" && tag == "required":
		return "Please enter your Instagram post link"
	case structField == "InstagramPost":
		return "Post link must point to instagram.com"
	case structField == "Email" && tag == "required":
		return "Please enter your email address"
	case structField == "Email" && tag == "handle_match":
		return "Email should include your Instagram handle"
	case structField == "Email":
		return "Please enter a valid email address"
	case structField == "PaymentMethod":
		return "Please choose bank transfer or UPI"
	case structField == "UpiID" && tag == "upi_required":
		return "Please enter your UPI ID or upload a QR code"
	case structField == "UpiID":
		return "UPI ID must look like name@bank"
	case structField == "AccountNumber":
		return "Please fill in all bank details"
	default:
		return "Invalid value"
	}
}
