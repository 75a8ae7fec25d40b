package partner

import (
	"regexp"
	"strings"

	"github.com/fleetledger/backend/internal/domain/shared"
)

var (
	codePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	gstPattern  = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][0-9A-Z]Z[0-9A-Z]$`)
	panPattern  = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	regPattern  = regexp.MustCompile(`^[A-Z]{2}[ -]?[0-9]{1,2}[ -]?[A-Z]{0,3}[ -]?[0-9]{1,4}$`)
)

func validatePartnerCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_ARGUMENT", "Code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_ARGUMENT", "Code cannot exceed 50 characters")
	}
	if !codePattern.MatchString(code) {
		return shared.NewDomainError("INVALID_ARGUMENT", "Code may only contain letters, digits, hyphen and underscore")
	}
	return nil
}

func validatePartnerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_ARGUMENT", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_ARGUMENT", "Name cannot exceed 200 characters")
	}
	return nil
}

func validateGSTNumber(gst string) error {
	if gst == "" {
		return nil
	}
	if !gstPattern.MatchString(strings.ToUpper(gst)) {
		return shared.NewDomainError("INVALID_ARGUMENT", "Invalid GST number format")
	}
	return nil
}

func validatePANNumber(pan string) error {
	if pan == "" {
		return nil
	}
	if !panPattern.MatchString(strings.ToUpper(pan)) {
		return shared.NewDomainError("INVALID_ARGUMENT", "Invalid PAN number format")
	}
	return nil
}

func validateRegistrationNumber(reg string) error {
	if reg == "" {
		return shared.NewDomainError("INVALID_ARGUMENT", "Registration number cannot be empty")
	}
	if !regPattern.MatchString(strings.ToUpper(reg)) {
		return shared.NewDomainError("INVALID_ARGUMENT", "Invalid vehicle registration number format")
	}
	return nil
}
