package entry

import (
	"strings"
	"unicode/utf8"
)

// MaxFieldLen caps each answer; kept small so entries stay comfortable to
// type on a phone keyboard.
const MaxFieldLen = 500

// Field names for the three daily questions, used for field-level error
// lookup by whatever renders the form.
const (
	FieldAchievements = "achievements"
	FieldAnxieties    = "anxieties"
	FieldImprovements = "improvements"
)

// Form holds the in-progress answers to the three daily questions,
// pre-validation and pre-trim.
type Form struct {
	Achievements string
	Anxieties    string
	Improvements string
}

// Trimmed returns a copy with leading and trailing whitespace removed from
// every answer.
func (f Form) Trimmed() Form {
	return Form{
		Achievements: strings.TrimSpace(f.Achievements),
		Anxieties:    strings.TrimSpace(f.Anxieties),
		Improvements: strings.TrimSpace(f.Improvements),
	}
}

// Validate reports form-level problems in a fixed order: the required-answer
// messages field by field, then the length messages field by field. Length is
// checked against the raw value, independent of emptiness. An empty result
// means the form may be submitted.
func (f Form) Validate() []string {
	var errs []string

	if strings.TrimSpace(f.Achievements) == "" {
		errs = append(errs, "Please share what went well today")
	}
	if strings.TrimSpace(f.Anxieties) == "" {
		errs = append(errs, "Please share what made you anxious today")
	}
	if strings.TrimSpace(f.Improvements) == "" {
		errs = append(errs, "Please share what you could improve tomorrow")
	}

	if utf8.RuneCountInString(f.Achievements) > MaxFieldLen {
		errs = append(errs, "Achievements section should be under 500 characters")
	}
	if utf8.RuneCountInString(f.Anxieties) > MaxFieldLen {
		errs = append(errs, "Anxieties section should be under 500 characters")
	}
	if utf8.RuneCountInString(f.Improvements) > MaxFieldLen {
		errs = append(errs, "Improvements section should be under 500 characters")
	}

	return errs
}

// FieldErrors maps field names to a short inline message suitable for
// rendering next to the offending input.
func (f Form) FieldErrors() map[string]string {
	out := make(map[string]string)
	for name, value := range map[string]string{
		FieldAchievements: f.Achievements,
		FieldAnxieties:    f.Anxieties,
		FieldImprovements: f.Improvements,
	} {
		switch {
		case strings.TrimSpace(value) == "":
			out[name] = "This field is required"
		case utf8.RuneCountInString(value) > MaxFieldLen:
			out[name] = "Must be under 500 characters"
		}
	}
	return out
}

// Complete reports whether every answer is present and within the length
// cap, i.e. Validate would return nothing.
func (f Form) Complete() bool {
	return len(f.Validate()) == 0
}
