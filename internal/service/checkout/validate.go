package checkout

import (
	"regexp"
	"strings"

	"zomio-storefront/internal/domain"
)

// Field error codes.
const (
	CodeRequired = "required"
	CodeFormat   = "format"
)

// FieldError describes why a single checkout field was rejected.
type FieldError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Fields maps field name to its error. Submission proceeds only when the
// map is empty.
type Fields map[string]FieldError

// Indian mobile numbering plan: ten digits, leading digit 6-9.
var phonePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)

// Validate checks a customer info draft. The area selector is a fixed list
// client-side; the membership check here is a guard for direct API callers.
func Validate(info domain.CustomerInfo, areas []string) Fields {
	errs := Fields{}

	if strings.TrimSpace(info.Name) == "" {
		errs["name"] = FieldError{Code: CodeRequired, Message: "Name is required"}
	}

	if strings.TrimSpace(info.Phone) == "" {
		errs["phone"] = FieldError{Code: CodeRequired, Message: "Phone number is required"}
	} else if !phonePattern.MatchString(info.Phone) {
		errs["phone"] = FieldError{Code: CodeFormat, Message: "Please enter a valid 10-digit Indian phone number"}
	}

	if strings.TrimSpace(info.Address) == "" {
		errs["address"] = FieldError{Code: CodeRequired, Message: "Address is required"}
	}

	if len(areas) > 0 {
		known := false
		for _, a := range areas {
			if a == info.Area {
				known = true
				break
			}
		}
		if !known {
			errs["area"] = FieldError{Code: CodeFormat, Message: "Please choose a delivery area we serve"}
		}
	}

	return errs
}
