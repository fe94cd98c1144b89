package services

import "testing"

func validBankInput() SubmissionInput {
	return SubmissionInput{
		Brand:             "Nike",
		InstagramHandle:   "alice",
		InstagramPost:     "https://www.instagram.com/p/abc123",
		Email:             "alice@brandmail.com",
		PaymentMethod:     "bank",
		AccountHolderName: "Alice K",
		AccountNumber:     "123456789",
		IFSCCode:          "ICIC0001",
		BankName:          "ICICI",
	}
}

func TestValidateSubmission_ValidBank(t *testing.T) {
	if errs := ValidateSubmission(validBankInput()); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateSubmission_ValidUpi(t *testing.T) {
	t.Run("with address", func(t *testing.T) {
		in := validBankInput()
		in.PaymentMethod = "upi"
		in.UpiID = "alice@icici"
		in.AccountHolderName, in.AccountNumber, in.IFSCCode, in.BankName = "", "", "", ""
		if errs := ValidateSubmission(in); len(errs) != 0 {
			t.Fatalf("expected no errors, got %v", errs)
		}
	})

	t.Run("with QR only", func(t *testing.T) {
		in := validBankInput()
		in.PaymentMethod = "upi"
		in.HasQrUpload = true
		in.AccountHolderName, in.AccountNumber, in.IFSCCode, in.BankName = "", "", "", ""
		if errs := ValidateSubmission(in); len(errs) != 0 {
			t.Fatalf("expected no errors, got %v", errs)
		}
	})

	t.Run("with neither", func(t *testing.T) {
		in := validBankInput()
		in.PaymentMethod = "upi"
		in.AccountHolderName, in.AccountNumber, in.IFSCCode, in.BankName = "", "", "", ""
		errs := ValidateSubmission(in)
		if len(errs) != 1 || errs[0].Field != "upiId" {
			t.Fatalf("expected one upiId error, got %v", errs)
		}
	})
}

func TestValidateSubmission_PostLink(t *testing.T) {
	cases := []struct {
		name string
		link string
		want bool // want an error
	}{
		{"missing", "", true},
		{"wrong platform", "https://www.tiktok.com/@alice/video/1", true},
		{"instagram", "https://instagram.com/p/xyz", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validBankInput()
			in.InstagramPost = tc.link
			errs := ValidateSubmission(in)
			got := hasFieldError(errs, "instagramLink")
			if got != tc.want {
				t.Errorf("link %q: error=%v, want %v (all: %v)", tc.link, got, tc.want, errs)
			}
		})
	}
}

func TestValidateSubmission_Email(t *testing.T) {
	t.Run("missing at sign", func(t *testing.T) {
		in := validBankInput()
		in.Email = "alicebrandmail.com"
		if !hasFieldError(ValidateSubmission(in), "email") {
			t.Error("expected an email error")
		}
	})

	t.Run("does not contain handle", func(t *testing.T) {
		in := validBankInput()
		in.Email = "someoneelse@brandmail.com"
		if !hasFieldError(ValidateSubmission(in), "email") {
			t.Error("expected a handle-binding error")
		}
	})
}

func TestValidateSubmission_UpiAddressShape(t *testing.T) {
	cases := []struct {
		addr  string
		valid bool
	}{
		{"alice@icici", true},
		{"abc@def", true},
		{"ab@icici", false},
		{"alice@ic", false},
		{"aliceicici", false},
		{"a@b@c", false},
	}
	for _, tc := range cases {
		in := validBankInput()
		in.PaymentMethod = "upi"
		in.UpiID = tc.addr
		in.AccountHolderName, in.AccountNumber, in.IFSCCode, in.BankName = "", "", "", ""
		errs := ValidateSubmission(in)
		if tc.valid && len(errs) != 0 {
			t.Errorf("%q: expected valid, got %v", tc.addr, errs)
		}
		if !tc.valid && !hasFieldError(errs, "upiId") {
			t.Errorf("%q: expected a upiId error, got %v", tc.addr, errs)
		}
	}
}

func TestValidateSubmission_BankFieldsAllRequired(t *testing.T) {
	for _, clear := range []func(*SubmissionInput){
		func(in *SubmissionInput) { in.AccountHolderName = "" },
		func(in *SubmissionInput) { in.AccountNumber = "" },
		func(in *SubmissionInput) { in.IFSCCode = "" },
		func(in *SubmissionInput) { in.BankName = "" },
	} {
		in := validBankInput()
		clear(&in)
		if !hasFieldError(ValidateSubmission(in), "bankDetails") {
			t.Errorf("expected a bankDetails error for %+v", in)
		}
	}
}

func TestValidateSubmission_CollectsAllFailures(t *testing.T) {
	in := validBankInput()
	in.InstagramPost = "https://youtube.com/watch?v=1"
	in.Email = "nobody-here"
	in.BankName = ""

	errs := ValidateSubmission(in)
	if len(errs) < 3 {
		t.Fatalf("expected all failures collected together, got %v", errs)
	}
	for _, field := range []string{"instagramLink", "email", "bankDetails"} {
		if !hasFieldError(errs, field) {
			t.Errorf("missing %s error in %v", field, errs)
		}
	}
}

func hasFieldError(errs []FieldError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}
