package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type registerPayload struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
}

func TestValidateStructCollectsAllErrors(t *testing.T) {
	errs := ValidateStruct(registerPayload{Email: "not-an-email", Password: "weak"})

	assert.Len(t, errs, 2)
	assert.Contains(t, errs, "Email")
	assert.Contains(t, errs, "Password")
}

func TestValidateStructValid(t *testing.T) {
	errs := ValidateStruct(registerPayload{Email: "john@example.com", Password: "Str0ng!pass"})
	assert.Nil(t, errs)
}

func TestPasswordRule(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{"Str0ng!pass", true},
		{"Aa1!xx", true},         // exactly 6 chars
		{"Aa1!", false},          // too short
		{"alllower1!", false},    // no upper
		{"ALLUPPER1!", false},    // no lower
		{"NoDigits!!", false},    // no digit
		{"NoSpecial12", false},   // no special
		{"", false},
	}

	for _, tt := range tests {
		errs := ValidateStruct(registerPayload{Email: "john@example.com", Password: tt.password})
		if tt.valid {
			assert.Nil(t, errs, "password %q should pass", tt.password)
		} else {
			assert.Contains(t, errs, "Password", "password %q should fail", tt.password)
		}
	}
}
