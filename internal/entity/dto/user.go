package dto

import "time"

// UserSummary is the public user description returned to clients. It never
// carries the password hash.
type UserSummary struct {
	ID        uint      `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserCreateRequest is the payload for creating a user.
type UserCreateRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserUpdateRequest is the payload for updating a user. Nil fields are left
// untouched.
type UserUpdateRequest struct {
	FullName *string `json:"fullName,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
}

// UserListResponse is the response for listing users.
type UserListResponse struct {
	Users []UserSummary `json:"users"`
}

// UserDetailResponse wraps a single user.
type UserDetailResponse struct {
	User UserSummary `json:"user"`
}
