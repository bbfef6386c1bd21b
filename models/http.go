package models

// RegisterRequest is the body of POST /api/users/register.
// Only the listed fields are ever persisted. Passwords are capped at 72
// bytes, the most bcrypt accepts.
type RegisterRequest struct {
	Email        string       `json:"email" validate:"required,email"`
	Password     string       `json:"password" validate:"required,min=6,maxbytes=72"`
	Name         string       `json:"name,omitempty"`
	Subscription Subscription `json:"subscription,omitempty" validate:"omitempty,oneof=starter pro business"`
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
}

// SubscriptionRequest is the body of PATCH /api/users.
type SubscriptionRequest struct {
	Subscription Subscription `json:"subscription" validate:"required,oneof=starter pro business"`
}

// ResendVerificationRequest is the body of POST /api/users/verify.
type ResendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}
