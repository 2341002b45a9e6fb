package registration

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ValidatorFunc reports whether a canonical value is acceptable and, when
// it is not, a human-readable message surfaced verbatim to the user.
type ValidatorFunc func(value string) (bool, string)

var (
	nationalIDPattern = regexp.MustCompile(`^\d{14}$`)
	mobilePattern     = regexp.MustCompile(`^\+?\d{10,15}$`)
	emailPattern      = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	yearPattern       = regexp.MustCompile(`^\d{4}$`)
)

var dobLayouts = []string{"02-01-2006", "02/01/2006"}

// validators is the static table mapping each field kind to its rule,
// constructed once at package init.
var validators = map[FieldKind]ValidatorFunc{
	KindFullName:    validateFullName,
	KindDate:        validateDateOfBirth,
	KindGender:      validateGender,
	KindNationality: validateNationality,
	KindNationalID:  validateNationalID,
	KindPhone:       validateMobileNumber,
	KindEmail:       validateEmail,
	KindFreeText:    func(string) (bool, string) { return true, "" },
	KindYear:        validateGraduationYear,
	KindGPA:         validateGPA,
	KindMajor:       validatePreferredMajor,
}

// Validate applies the rule for the given kind. Unknown kinds are
// accepted; the schema is fixed at startup so this only guards against
// programmer error.
func Validate(kind FieldKind, value string) (bool, string) {
	if validate, ok := validators[kind]; ok {
		return validate(value)
	}
	return true, ""
}

func validateFullName(value string) (bool, string) {
	if len(strings.Fields(value)) >= 3 {
		return true, ""
	}
	return false, "Full name must contain at least three names."
}

func validateDateOfBirth(value string) (bool, string) {
	for _, layout := range dobLayouts {
		// time.Parse rejects calendar-invalid dates such as 31-02-2000.
		if _, err := time.Parse(layout, value); err == nil {
			return true, ""
		}
	}
	return false, "Date of Birth must be in the format DD-MM-YYYY or DD/MM/YYYY."
}

func validateGender(value string) (bool, string) {
	if _, ok := genderMap[strings.ToLower(value)]; ok {
		return true, ""
	}
	return false, "Gender must be Male or Female (M/F accepted)."
}

func validateNationality(value string) (bool, string) {
	if _, ok := validCountries[value]; ok {
		return true, ""
	}
	return false, fmt.Sprintf("Nationality '%s' is not recognized.", value)
}

func validateNationalID(value string) (bool, string) {
	if nationalIDPattern.MatchString(value) {
		return true, ""
	}
	return false, "National ID must be exactly 14 digits."
}

func validateMobileNumber(value string) (bool, string) {
	if mobilePattern.MatchString(value) {
		return true, ""
	}
	return false, "Mobile number should be 10 to 15 digits (with optional +)."
}

func validateEmail(value string) (bool, string) {
	if emailPattern.MatchString(value) {
		return true, ""
	}
	return false, "Email address not valid."
}

func validateGraduationYear(value string) (bool, string) {
	if yearPattern.MatchString(value) {
		year, err := strconv.Atoi(value)
		if err == nil && year >= 1900 && year <= 2100 {
			return true, ""
		}
	}
	return false, "Graduation year must be between 1900 and 2100."
}

func validateGPA(value string) (bool, string) {
	gpa, err := strconv.ParseFloat(value, 64)
	if err == nil && gpa >= 0.0 && gpa <= 4.0 {
		return true, ""
	}
	return false, "GPA must be 0.0 to 4.0."
}

func validatePreferredMajor(value string) (bool, string) {
	for _, canonical := range preferredMajorMap {
		if value == canonical {
			return true, ""
		}
	}
	return false, "Preferred Major not recognized."
}
