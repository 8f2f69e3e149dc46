package validator

import (
	"testing"
)

type contactFixture struct {
	Contact string `validate:"required,contact"`
}

func TestValidateContact(t *testing.T) {
	cv := NewValidator()

	tests := []struct {
		name    string
		contact string
		valid   bool
	}{
		{"plain email", "carla@exemplo.com", true},
		{"anything with at sign", "weird@", true},
		{"bare digits", "11987654321", true},
		{"digits with separators", "(11) 98765-4321", true},
		{"digits with spaces", "11 98765 4321", true},
		{"letters only", "call me", false},
		{"separators without digits", "(-) -", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(&contactFixture{Contact: tt.contact})
			if tt.valid && err != nil {
				t.Errorf("Validate(%q) = %v, want nil", tt.contact, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("Validate(%q) = nil, want error", tt.contact)
			}
		})
	}
}

type professionalFixture struct {
	Name       string `validate:"required,min=2,max=100"`
	Occupation string `validate:"required,min=3,max=100"`
	Contact    string `validate:"required,contact"`
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&professionalFixture{
		Name:       "D",
		Occupation: "Dr",
		Contact:    "not a contact",
	})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	formatted := cv.FormatValidationErrors(err)

	if formatted["Name"] != "Name must be at least 2 characters" {
		t.Errorf("Name error = %q", formatted["Name"])
	}
	if formatted["Occupation"] != "Occupation must be at least 3 characters" {
		t.Errorf("Occupation error = %q", formatted["Occupation"])
	}
	if formatted["Contact"] != "Contact must be an email address or a phone number" {
		t.Errorf("Contact error = %q", formatted["Contact"])
	}
}

func TestValidateAcceptsMinimumLengths(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&professionalFixture{
		Name:       "Jo",
		Occupation: "Psi",
		Contact:    "jo@exemplo.com",
	})
	if err != nil {
		t.Errorf("minimum-length fixture failed validation: %v", err)
	}
}
