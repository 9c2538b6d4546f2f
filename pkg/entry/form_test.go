package entry

import (
	"strings"
	"testing"
)

func TestValidateAllEmpty(t *testing.T) {
	errs := Form{}.Validate()
	want := []string{
		"Please share what went well today",
		"Please share what made you anxious today",
		"Please share what you could improve tomorrow",
	}
	if len(errs) != len(want) {
		t.Fatalf("got %d errors, want %d: %v", len(errs), len(want), errs)
	}
	for i := range want {
		if errs[i] != want[i] {
			t.Errorf("errs[%d] = %q, want %q", i, errs[i], want[i])
		}
	}
}

func TestValidateSingleMissingField(t *testing.T) {
	f := Form{Achievements: "", Anxieties: "x", Improvements: "x"}
	errs := f.Validate()
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if errs[0] != "Please share what went well today" {
		t.Errorf("errs[0] = %q", errs[0])
	}
}

func TestValidateWhitespaceOnlyCountsAsEmpty(t *testing.T) {
	f := Form{Achievements: "   \n\t ", Anxieties: "ok", Improvements: "ok"}
	errs := f.Validate()
	if len(errs) != 1 || errs[0] != "Please share what went well today" {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidateTooLong(t *testing.T) {
	long := strings.Repeat("a", MaxFieldLen+1)
	f := Form{Achievements: "fine", Anxieties: long, Improvements: "fine"}
	errs := f.Validate()
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if errs[0] != "Anxieties section should be under 500 characters" {
		t.Errorf("errs[0] = %q", errs[0])
	}

	// Exactly at the cap is fine.
	f.Anxieties = strings.Repeat("a", MaxFieldLen)
	if errs := f.Validate(); len(errs) != 0 {
		t.Errorf("value at cap should validate, got %v", errs)
	}
}

func TestValidateLengthIndependentOfEmptiness(t *testing.T) {
	// Whitespace past the cap triggers both the required and length rules.
	f := Form{
		Achievements: strings.Repeat(" ", MaxFieldLen+1),
		Anxieties:    "ok",
		Improvements: "ok",
	}
	errs := f.Validate()
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), errs)
	}
	if errs[0] != "Please share what went well today" {
		t.Errorf("errs[0] = %q", errs[0])
	}
	if errs[1] != "Achievements section should be under 500 characters" {
		t.Errorf("errs[1] = %q", errs[1])
	}
}

func TestFieldErrors(t *testing.T) {
	f := Form{
		Achievements: "",
		Anxieties:    strings.Repeat("b", MaxFieldLen+1),
		Improvements: "fine",
	}
	fe := f.FieldErrors()
	if fe[FieldAchievements] != "This field is required" {
		t.Errorf("achievements: %q", fe[FieldAchievements])
	}
	if fe[FieldAnxieties] != "Must be under 500 characters" {
		t.Errorf("anxieties: %q", fe[FieldAnxieties])
	}
	if _, ok := fe[FieldImprovements]; ok {
		t.Errorf("improvements should have no error, got %q", fe[FieldImprovements])
	}
}

func TestComplete(t *testing.T) {
	if (Form{}).Complete() {
		t.Error("empty form should not be complete")
	}
	f := Form{Achievements: "a", Anxieties: "b", Improvements: "c"}
	if !f.Complete() {
		t.Error("filled form should be complete")
	}
}
