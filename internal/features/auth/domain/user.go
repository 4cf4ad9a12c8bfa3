package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidCredentials is returned when an email/password pair does not
	// match a stored account. It never reveals which half was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering with an email that already
	// has an account.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrPasswordMismatch is returned when the password confirmation differs.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrPasswordTooShort is returned for passwords under the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	// ErrEmailRequired is returned when a registration carries no email.
	ErrEmailRequired = errors.New("email is required")
	// ErrUserNotFound is returned when a user id or email does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidToken is returned for unknown or expired session tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// User is a registered customer account. The password hash lives in the
// repository, never on this struct.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone,omitempty"`
	Address   *Address  `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Address is the user's saved delivery address, prefilled at checkout.
type Address struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
}

// Registration carries the fields of a sign-up request.
type Registration struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Phone           string `json:"phone,omitempty"`
}

// Validate checks the registration rules. Email uniqueness is checked by the
// service against the repository.
func (r Registration) Validate() error {
	if r.Email == "" {
		return ErrEmailRequired
	}
	return ValidatePassword(r.Password, r.ConfirmPassword)
}

// ValidatePassword checks length and confirmation rules for a new password.
func ValidatePassword(password, confirm string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	return nil
}
