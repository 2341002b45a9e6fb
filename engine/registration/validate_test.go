package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDateOfBirth(t *testing.T) {
	t.Run("Should accept calendar-valid dates in both layouts", func(t *testing.T) {
		for _, value := range []string{"01-01-2000", "29-02-2004", "31/12/1999", "15/06/2010"} {
			ok, msg := Validate(KindDate, value)
			assert.True(t, ok, "expected %q to be valid", value)
			assert.Empty(t, msg)
		}
	})
	t.Run("Should reject other strings with the format message", func(t *testing.T) {
		for _, value := range []string{"2023-01-01", "31-02-2000", "29-02-2003", "1st of May 2000", "01.01.2000", ""} {
			ok, msg := Validate(KindDate, value)
			assert.False(t, ok, "expected %q to be invalid", value)
			assert.Equal(t, "Date of Birth must be in the format DD-MM-YYYY or DD/MM/YYYY.", msg)
		}
	})
}

func TestValidateNationalID(t *testing.T) {
	t.Run("Should accept exactly fourteen digits", func(t *testing.T) {
		ok, _ := Validate(KindNationalID, "12345678901234")
		assert.True(t, ok)
	})
	t.Run("Should reject other digit counts and non-digits", func(t *testing.T) {
		for _, value := range []string{"1234567890123", "123456789012345", "1234567890123a", "", "abcdefghijklmn"} {
			ok, msg := Validate(KindNationalID, value)
			assert.False(t, ok, "expected %q to be invalid", value)
			assert.Equal(t, "National ID must be exactly 14 digits.", msg)
		}
	})
}

func TestValidateGPA(t *testing.T) {
	t.Run("Should accept real numbers within the scale", func(t *testing.T) {
		for _, value := range []string{"0.0", "4.0", "3.75", "2", "0"} {
			ok, _ := Validate(KindGPA, value)
			assert.True(t, ok, "expected %q to be valid", value)
		}
	})
	t.Run("Should reject out-of-range and non-numeric values", func(t *testing.T) {
		for _, value := range []string{"4.1", "-0.5", "abc", ""} {
			ok, msg := Validate(KindGPA, value)
			assert.False(t, ok, "expected %q to be invalid", value)
			assert.Equal(t, "GPA must be 0.0 to 4.0.", msg)
		}
	})
}

func TestValidateFullName(t *testing.T) {
	t.Run("Should require at least three space-separated tokens", func(t *testing.T) {
		ok, _ := Validate(KindFullName, "John Michael Smith")
		assert.True(t, ok)
		ok, _ = Validate(KindFullName, "Anna Maria Louise de la Cruz")
		assert.True(t, ok)
		ok, msg := Validate(KindFullName, "John Smith")
		assert.False(t, ok)
		assert.Equal(t, "Full name must contain at least three names.", msg)
	})
}

func TestValidateGender(t *testing.T) {
	t.Run("Should accept the closed set case-insensitively", func(t *testing.T) {
		for _, value := range []string{"male", "M", "Female", "f"} {
			ok, _ := Validate(KindGender, value)
			assert.True(t, ok, "expected %q to be valid", value)
		}
	})
	t.Run("Should reject anything else", func(t *testing.T) {
		ok, msg := Validate(KindGender, "unsure")
		assert.False(t, ok)
		assert.Equal(t, "Gender must be Male or Female (M/F accepted).", msg)
	})
}

func TestValidateNationality(t *testing.T) {
	t.Run("Should accept canonical country names only", func(t *testing.T) {
		ok, _ := Validate(KindNationality, "Egypt")
		assert.True(t, ok)
		ok, msg := Validate(KindNationality, "Atlantis")
		assert.False(t, ok)
		assert.Equal(t, "Nationality 'Atlantis' is not recognized.", msg)
	})
	t.Run("Should reject raw synonyms that skipped normalization", func(t *testing.T) {
		ok, _ := Validate(KindNationality, "egyptian")
		assert.False(t, ok)
	})
}

func TestValidateMobileNumber(t *testing.T) {
	t.Run("Should accept 10 to 15 digits with optional plus", func(t *testing.T) {
		for _, value := range []string{"0123456789", "+201234567890", "123456789012345"} {
			ok, _ := Validate(KindPhone, value)
			assert.True(t, ok, "expected %q to be valid", value)
		}
	})
	t.Run("Should reject short, long, and malformed numbers", func(t *testing.T) {
		for _, value := range []string{"123456789", "1234567890123456", "+12 345", "phone"} {
			ok, _ := Validate(KindPhone, value)
			assert.False(t, ok, "expected %q to be invalid", value)
		}
	})
}

func TestValidateEmail(t *testing.T) {
	t.Run("Should accept a conventional address shape", func(t *testing.T) {
		for _, value := range []string{"john@example.com", "a.b-c@mail.co.uk"} {
			ok, _ := Validate(KindEmail, value)
			assert.True(t, ok, "expected %q to be valid", value)
		}
	})
	t.Run("Should reject malformed addresses", func(t *testing.T) {
		for _, value := range []string{"john", "john@", "@example.com", "john@example"} {
			ok, msg := Validate(KindEmail, value)
			assert.False(t, ok, "expected %q to be invalid", value)
			assert.Equal(t, "Email address not valid.", msg)
		}
	})
}

func TestValidateGraduationYear(t *testing.T) {
	t.Run("Should accept four-digit years within range", func(t *testing.T) {
		for _, value := range []string{"1900", "2018", "2100"} {
			ok, _ := Validate(KindYear, value)
			assert.True(t, ok, "expected %q to be valid", value)
		}
	})
	t.Run("Should reject out-of-range and non-four-digit values", func(t *testing.T) {
		for _, value := range []string{"1899", "2101", "95", "20222", "year"} {
			ok, msg := Validate(KindYear, value)
			assert.False(t, ok, "expected %q to be invalid", value)
			assert.Equal(t, "Graduation year must be between 1900 and 2100.", msg)
		}
	})
}

func TestValidatePreferredMajor(t *testing.T) {
	t.Run("Should accept canonical program names only", func(t *testing.T) {
		ok, _ := Validate(KindMajor, "Computer Science")
		assert.True(t, ok)
		ok, msg := Validate(KindMajor, "Astrology")
		assert.False(t, ok)
		assert.Equal(t, "Preferred Major not recognized.", msg)
	})
}

func TestValidateFreeText(t *testing.T) {
	t.Run("Should accept anything", func(t *testing.T) {
		for _, value := range []string{"", "Cairo High School", "123"} {
			ok, _ := Validate(KindFreeText, value)
			assert.True(t, ok)
		}
	})
}
