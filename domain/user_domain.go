package domain

import "errors"

var (
	MessageSuccessSignUp     = "account created successfully"
	MessageSuccessSignIn     = "signed in successfully"
	MessageSuccessGoogleAuth = "google sign in successful"
	MessageSuccessGetSession = "success get session"
	MessageSuccessSignOut    = "signed out successfully"

	MessageFailedSignUp     = "failed to create account"
	MessageFailedSignIn     = "failed to sign in"
	MessageFailedGoogleAuth = "google sign in failed"
	MessageFailedGetSession = "failed to get session"

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserNotFound           = errors.New("user not found")
	ErrGoogleTokenInvalid     = errors.New("google credential verification failed")
)

type (
	SignUpRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		FullName string `json:"full_name"`
	}

	SignInRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	GoogleSignInRequest struct {
		Credential string `json:"credential" validate:"required"`
	}

	UserResponse struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		FullName string `json:"full_name"`
	}

	AuthResponse struct {
		User  UserResponse `json:"user"`
		Token string       `json:"token"`
	}

	SessionResponse struct {
		User *UserResponse `json:"user"`
	}
)
