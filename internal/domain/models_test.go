package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPhoneNumber(t *testing.T) {
	valid := []string{
		"0912345678",
		"0351234567",
		"0781234567",
		"0161234567",
		"02123456789",
		"+84912345678",
		"+84351234567",
	}
	for _, s := range valid {
		assert.True(t, ValidPhoneNumber(s), s)
	}

	invalid := []string{
		"",
		"091234567",    // too short
		"09123456789",  // too long for a 9x prefix
		"0012345678",   // bad carrier prefix
		"84912345678",  // missing + on country code
		"+85912345678", // wrong country code
		"09123A5678",
		"0912 345 678",
	}
	for _, s := range invalid {
		assert.False(t, ValidPhoneNumber(s), s)
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := PhoneRecord{Number: "0912345678", Accounts: []AccountRecord{{Name: "Facebook"}}}
	cp := p.Clone()
	cp.Accounts[0].Name = "Zalo"
	assert.Equal(t, "Facebook", p.Accounts[0].Name)
}
