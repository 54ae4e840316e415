package models

import "gorm.io/gorm"

// EmailOTP holds the latest code issued for an email address. One row per
// email: re-sending overwrites the code and resets the verified flag, so a
// stale code can never be verified after a new one is issued.
type EmailOTP struct {
	gorm.Model
	Email      string `json:"email" gorm:"uniqueIndex;size:255"`
	OTP        string `json:"-" gorm:"size:6"`
	IsVerified bool   `json:"isVerified"`
}
