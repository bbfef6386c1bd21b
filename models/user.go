package models

import "time"

// User represents an account record used for authentication and authorization.
// Sensitive fields (Password, Token, VerificationToken) are never serialized.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is assigned by the database and never changes.
	UserID int64 `json:"-"`

	// Email is the unique, lowercase-normalized address of the user.
	Email string `json:"email"`

	// Password holds the bcrypt hash of the user's password.
	// The plain-text value only exists transiently in request models.
	Password string `json:"-"`

	// Name is an optional display name.
	Name string `json:"name,omitempty"`

	// Subscription is the current subscription tier.
	Subscription Subscription `json:"subscription"`

	// AvatarURL points either to the gravatar of the email or to an uploaded file.
	AvatarURL string `json:"avatarURL,omitempty"`

	// Token is the single active session token. Empty when logged out.
	Token string `json:"-"`

	// Verify reports whether the email address has been confirmed.
	// Once true it never goes back to false.
	Verify bool `json:"-"`

	// VerificationToken is the one-time value mailed to the user.
	// It is empty once Verify is true.
	VerificationToken string `json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the part of the record that may be exposed to the account owner.
func (u User) Public() UserResponse {
	return UserResponse{
		Email:        u.Email,
		Subscription: u.Subscription,
	}
}
