package domain

import "errors"

const PasswordMinLength = 8

var (
	MessageSuccessRegister    = "user created successfully"
	MessageSuccessLogin       = "token created successfully"
	MessageSuccessGetProfile  = "success get profile"
	MessageSuccessUpdateUser  = "profile updated successfully"
	MessageFailedRegister     = "failed to create user"
	MessageFailedLogin        = "failed to create token"
	MessageFailedGetProfile   = "failed to get profile"
	MessageFailedUpdateUser   = "failed to update profile"
	MessageRegistrationNotice = "Welcome to Recipe API"

	ErrEmailRequired      = errors.New("users must have an email address")
	ErrEmailExists        = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email,max=255"`
		Password string `json:"password" validate:"required,min=8"`
		Name     string `json:"name" validate:"max=255"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}

	// UpdateUserRequest carries a partial profile update; nil fields are left untouched.
	UpdateUserRequest struct {
		Email    *string `json:"email" validate:"omitempty,email,max=255"`
		Name     *string `json:"name" validate:"omitempty,max=255"`
		Password *string `json:"password" validate:"omitempty,min=8"`
	}

	UserResponse struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
)
