package models

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// MediaUpdateRequest is a partial update: only non-nil fields change.
type MediaUpdateRequest struct {
	Description *string   `json:"description" validate:"omitempty,max=500"`
	Tags        *[]string `json:"tags"`
}

type MediaListResponse struct {
	Items    []Media `json:"items"`
	Total    int64   `json:"total"`
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
}
