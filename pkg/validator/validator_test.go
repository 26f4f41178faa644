package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		email   string
		wantErr bool
	}{
		{"jhon@gmail.com", false},
		{"first.last+tag@example.co", false},
		{"", true},
		{"not-an-email", true},
		{"a@b", true},
		{"spaces in@example.com", true},
	}

	for _, tt := range tests {
		err := Email(tt.email)
		if tt.wantErr {
			assert.Error(t, err, tt.email)
		} else {
			assert.NoError(t, err, tt.email)
		}
	}
}

func TestUserNameAndPassword(t *testing.T) {
	assert.NoError(t, UserName("Jhon"))
	assert.Error(t, UserName("   "))
	assert.Error(t, UserName("bad\x00name"))
	assert.Error(t, UserName(strings.Repeat("x", maxUserNameLength+1)))

	assert.NoError(t, Password("jhonpw"))
	assert.Error(t, Password(""))
}

func TestPhone(t *testing.T) {
	for _, phone := range []string{"+974-10101011", "(555) 123-4567", "+1 (555) 123.4567"} {
		assert.NoError(t, Phone(phone), phone)
	}
	assert.Error(t, Phone(strings.Repeat("5", maxPhoneLength+1)))
}

func TestStatus(t *testing.T) {
	assert.NoError(t, Status("Done"))
	assert.Error(t, Status("Do\nne"))
	assert.Error(t, Status(strings.Repeat("s", maxStatusLength+1)))
}
