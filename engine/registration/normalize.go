package registration

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var genderMap = map[string]string{
	"male":   "Male",
	"m":      "Male",
	"female": "Female",
	"f":      "Female",
}

// validCountries maps a canonical country name to its accepted synonyms.
var validCountries = map[string][]string{
	"Egypt":          {"egypt", "egyptian"},
	"United States":  {"united states", "usa", "us", "america", "american"},
	"Canada":         {"canada", "canadian"},
	"United Kingdom": {"united kingdom", "uk", "britain", "british"},
	"France":         {"france", "french"},
	"Germany":        {"germany", "german"},
	"India":          {"india", "indian"},
	"China":          {"china", "chinese"},
}

var preferredMajorMap = map[string]string{
	"cs":                        "Computer Science",
	"computer science":          "Computer Science",
	"electrical engineering":    "Electrical Engineering",
	"ee":                        "Electrical Engineering",
	"mechanical engineering":    "Mechanical Engineering",
	"me":                        "Mechanical Engineering",
	"civil engineering":         "Civil Engineering",
	"ce":                        "Civil Engineering",
	"aerospace engineering":     "Aerospace Engineering",
	"ae":                        "Aerospace Engineering",
	"biomedical engineering":    "Biomedical Engineering",
	"be":                        "Biomedical Engineering",
	"software engineering":      "Software Engineering",
	"se":                        "Software Engineering",
	"environmental engineering": "Environmental Engineering",
	"enve":                      "Environmental Engineering",
	"robotics and automation":   "Robotics and Automation",
	"ra":                        "Robotics and Automation",
	"data science":              "Data Science",
	"ds":                        "Data Science",
}

// fieldAliases resolves free-text field references (abbreviations and
// partial terms) to canonical field names.
var fieldAliases = map[string]string{
	"student full name":       "Student Full Name",
	"full name":               "Student Full Name",
	"dob":                     "Date of Birth",
	"date of birth":           "Date of Birth",
	"gender":                  "Gender",
	"nationality":             "Nationality",
	"national id":             "National ID",
	"id number":               "National ID",
	"id":                      "National ID",
	"mobile":                  "Mobile Number",
	"mobile number":           "Mobile Number",
	"email":                   "Email Address",
	"parent name":             "Parent/Guardian Name",
	"guardian name":           "Parent/Guardian Name",
	"parent/guardian name":    "Parent/Guardian Name",
	"parent contact":          "Parent/Guardian Contact Number",
	"guardian contact":        "Parent/Guardian Contact Number",
	"parent/guardian contact": "Parent/Guardian Contact Number",
	"parent email":            "Parent/Guardian Email Address",
	"guardian email":          "Parent/Guardian Email Address",
	"parent/guardian email":   "Parent/Guardian Email Address",
	"high school":             "High School Name",
	"graduation year":         "Graduation Year",
	"gpa":                     "GPA",
	"preferred major":         "Preferred Major/Program",
	"preferred program":       "Preferred Major/Program",
}

// FieldAliases returns the alias table for field-reference resolution.
func FieldAliases() map[string]string {
	return fieldAliases
}

var digitRun = regexp.MustCompile(`\d+`)

// titleCase constructs the caser per call: a cases.Caser is stateful and
// not safe for concurrent use, and Normalize runs on the request path
// where turns for distinct sessions proceed in parallel.
func titleCase(value string) string {
	return cases.Title(language.English).String(value)
}

// Normalize maps a raw extracted value to its canonical form for the given
// field kind. Kinds without a mapping pass through trimmed.
func Normalize(kind FieldKind, value string) string {
	value = strings.TrimSpace(value)
	switch kind {
	case KindGender:
		if canonical, ok := genderMap[strings.ToLower(value)]; ok {
			return canonical
		}
		return value
	case KindNationality:
		return normalizeNationality(value)
	case KindMajor:
		if canonical, ok := preferredMajorMap[strings.ToLower(value)]; ok {
			return canonical
		}
		return titleCase(value)
	case KindNationalID:
		// Keep only the first contiguous digit run.
		if digits := digitRun.FindString(value); digits != "" {
			return digits
		}
		return value
	default:
		return value
	}
}

// normalizeNationality resolves a synonym to the canonical country name,
// defaulting to title-cased input when no synonym matches.
func normalizeNationality(value string) string {
	lower := strings.ToLower(value)
	for country, synonyms := range validCountries {
		for _, synonym := range synonyms {
			if lower == synonym {
				return country
			}
		}
	}
	return titleCase(lower)
}
