package models

// UserResponse is the public projection of a user record.
type UserResponse struct {
	Email        string       `json:"email"`
	Subscription Subscription `json:"subscription"`
}

// RegisterResponse is returned by a successful registration.
type RegisterResponse struct {
	User UserResponse `json:"user"`
}

// LoginResponse carries the issued session token along with the user projection.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// AvatarResponse is returned after an avatar upload.
type AvatarResponse struct {
	AvatarURL string `json:"avatarURL"`
}

// MessageResponse is used for acknowledgements and for every error body.
type MessageResponse struct {
	Message string `json:"message"`
}
