package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCPF(t *testing.T) {
	cases := []struct {
		cpf   string
		valid bool
	}{
		{"52998224725", true},
		{"52998224724", false},
		{"11111111111", false},
		{"00000000000", false},
		{"5299822472", false},
		{"529982247255", false},
		{"5299822472a", false},
		{"", false},
	}

	for _, tc := range cases {
		t.Run(tc.cpf, func(t *testing.T) {
			assert.Equal(t, tc.valid, ValidCPF(tc.cpf))
		})
	}
}

func TestValidateStructWithCPFTag(t *testing.T) {
	v := NewValidator()

	type form struct {
		CPF string `validate:"required,cpf"`
	}

	assert.NoError(t, v.Validate(&form{CPF: "52998224725"}))
	assert.Error(t, v.Validate(&form{CPF: "11111111111"}))
	assert.Error(t, v.Validate(&form{}))
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	type form struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required,min=2"`
	}

	err := v.Validate(&form{Email: "not-an-email", Name: "a"})
	assert.Error(t, err)

	formatted := v.FormatValidationErrors(err)
	assert.Contains(t, formatted["Email"], "valid email")
	assert.Contains(t, formatted["Name"], "at least 2")
}
