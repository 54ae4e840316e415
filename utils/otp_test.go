package utils

import (
	"regexp"
	"testing"
)

func TestGenerateOTP(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{6}$`)
	for range 50 {
		otp, err := GenerateOTP()
		if err != nil {
			t.Fatalf("GenerateOTP: %v", err)
		}
		if !pattern.MatchString(otp) {
			t.Fatalf("OTP %q is not 6 ASCII digits", otp)
		}
	}
}
