// internal/models/user.go
package models

import "time"

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	PasswordHash string     `json:"-"`
	Age          *int       `json:"age"`
	Height       *int       `json:"height"`
	Weight       *float64   `json:"weight"`
	BodyType     *string    `json:"bodyType"`
	LastLogin    *time.Time `json:"-"`
	SessionToken *string    `json:"-"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type UserResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// UpdateDetailsRequest carries the optional physical attributes. Only fields
// present in the payload are written; the rest keep their stored values.
type UpdateDetailsRequest struct {
	Age      *int     `json:"age" validate:"omitempty,gte=0,lte=150"`
	Height   *int     `json:"height" validate:"omitempty,gt=0"`
	Weight   *float64 `json:"weight" validate:"omitempty,gt=0"`
	BodyType *string  `json:"bodyType" validate:"omitempty"`
}

type UserDetails struct {
	Age      *int     `json:"age"`
	Height   *int     `json:"height"`
	Weight   *float64 `json:"weight"`
	BodyType *string  `json:"bodyType"`
}
