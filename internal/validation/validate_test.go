package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/dto"
)

func TestRegisterValidationEnumeratesAllFields(t *testing.T) {
	req := dto.RegisterRequest{
		Email:           "not-an-email",
		Password:        "abc",
		ConfirmPassword: "different",
		Username:        "ab",
		// Name and Surname missing entirely.
	}

	err := Struct(&req)
	ve, ok := apperrors.AsValidation(err)
	if !ok {
		t.Fatalf("got %v, want ValidationError", err)
	}

	for _, field := range []string{"email", "password", "confirm_password", "username", "name", "surname"} {
		if _, present := ve.Fields[field]; !present {
			t.Errorf("field %q missing from validation report: %v", field, ve.Fields)
		}
	}
}

func TestJobSalaryRangeCrossCheck(t *testing.T) {
	lo, hi := 50000.0, 90000.0

	valid := dto.JobRequest{
		Title:               "Engineer",
		Description:         "Work",
		Location:            "Remote",
		EmploymentType:      "Full-time",
		CompanyName:         "Acme",
		ApplicationDeadline: time.Now().Add(24 * time.Hour),
		SalaryMin:           &lo,
		SalaryMax:           &hi,
	}
	if err := Struct(&valid); err != nil {
		t.Fatalf("valid range rejected: %v", err)
	}

	inverted := valid
	inverted.SalaryMin = &hi
	inverted.SalaryMax = &lo
	err := Struct(&inverted)
	ve, ok := apperrors.AsValidation(err)
	if !ok {
		t.Fatalf("inverted range: got %v, want ValidationError", err)
	}
	if _, present := ve.Fields["salary_max"]; !present {
		t.Errorf("salary_max missing from report: %v", ve.Fields)
	}

	// A single bound on its own is fine.
	open := valid
	open.SalaryMax = nil
	if err := Struct(&open); err != nil {
		t.Fatalf("open-ended range rejected: %v", err)
	}
}

func TestApplyRequestLengthLimits(t *testing.T) {
	long := strings.Repeat("x", 1001)
	req := dto.ApplyRequest{CoverLetter: &long}

	err := Struct(&req)
	ve, ok := apperrors.AsValidation(err)
	if !ok {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if _, present := ve.Fields["cover_letter"]; !present {
		t.Errorf("cover_letter missing from report: %v", ve.Fields)
	}

	short := "looks fine"
	if err := Struct(&dto.ApplyRequest{CoverLetter: &short}); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	// Empty body is a valid application.
	if err := Struct(&dto.ApplyRequest{}); err != nil {
		t.Fatalf("empty request rejected: %v", err)
	}
}
