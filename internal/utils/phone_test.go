package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "International format with plus",
			input:    "+919876543210",
			expected: "9876543210",
		},
		{
			name:     "Country code without plus",
			input:    "919876543210",
			expected: "9876543210",
		},
		{
			name:     "Leading zero trunk prefix",
			input:    "09876543210",
			expected: "9876543210",
		},
		{
			name:     "Bare national number",
			input:    "9876543210",
			expected: "9876543210",
		},
		{
			name:     "Spaces and dashes stripped",
			input:    "+91 98765-43210",
			expected: "9876543210",
		},
		{
			name:    "Too short",
			input:   "12345",
			wantErr: true,
		},
		{
			name:    "Too long",
			input:   "98765432109876",
			wantErr: true,
		},
		{
			name:    "Leading zero after normalization",
			input:    "0123456789",
			wantErr: true,
		},
		{
			name:    "Non-numeric",
			input:   "98765abcde",
			wantErr: true,
		},
		{
			name:    "Empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePhone(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestCustomerUsername(t *testing.T) {
	assert.Equal(t, "customer_9876543210", CustomerUsername("9876543210"))
}

func TestNormalizePhoneVariantsConverge(t *testing.T) {
	// All spellings of the same number must resolve to one username,
	// otherwise a customer gets duplicate identities.
	variants := []string{"+919876543210", "919876543210", "9876543210", "09876543210"}
	for _, v := range variants {
		got, err := NormalizePhone(v)
		assert.NoError(t, err)
		assert.Equal(t, "customer_9876543210", CustomerUsername(got))
	}
}
