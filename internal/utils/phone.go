package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// CountryCode is the dialing prefix stripped when deriving usernames
const CountryCode = "91"

var nationalNumberPattern = regexp.MustCompile(`^[1-9]\d{9}$`)

// NormalizePhone validates a phone number and returns its national form
// (country code removed). Accepts "+919876543210", "919876543210",
// "09876543210" and "9876543210".
func NormalizePhone(phone string) (string, error) {
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "+", "")

	if strings.HasPrefix(stripped, CountryCode) && len(stripped) > 10 {
		stripped = stripped[len(CountryCode):]
	} else if strings.HasPrefix(stripped, "0") {
		stripped = stripped[1:]
	}

	if !nationalNumberPattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid phone number format")
	}

	return stripped, nil
}

// CustomerUsername derives the unique username for an OTP-authenticated
// customer from the national phone number.
func CustomerUsername(nationalNumber string) string {
	return "customer_" + nationalNumber
}
