package models

import (
	"strings"

	"gorm.io/gorm"
)

// User represents a registered user. All categories and transactions
// belong to exactly one user.
type User struct {
	DefaultModel
	Name     string `json:"name" example:"Jane"`
	Email    string `json:"email" gorm:"uniqueIndex" example:"jane@example.com"`
	Password string `json:"-"` // The bcrypt hash of the password. Never serialized.
}

// NormalizeEmail canonicalizes an email address the same way the
// BeforeSave hook does, so lookups match stored values.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = NormalizeEmail(u.Email)

	return nil
}
