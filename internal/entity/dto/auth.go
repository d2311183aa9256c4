package dto

import "time"

// AuthLoginRequest is the login request payload.
type AuthLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthRegisterRequest is the registration request payload.
type AuthRegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned after successful login/registration.
type AuthResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      UserSummary `json:"user"`
}
