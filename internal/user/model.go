package user

import (
	"time"

	"github.com/Amadavid/alx-backend-user-data/internal/auth/credentials"
)

// User is a stored account. The password hash never leaves the process
// through JSON.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsValidPassword checks password against the stored hash.
func (u *User) IsValidPassword(password string) bool {
	if u == nil || password == "" {
		return false
	}
	return credentials.IsValid(u.PasswordHash, password)
}

// SetPassword replaces the stored hash with one derived from password.
func (u *User) SetPassword(password string) error {
	hash, err := credentials.HashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}
