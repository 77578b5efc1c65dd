package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/20alina03/FYP-MASALA-TARKA/domain"
	"github.com/20alina03/FYP-MASALA-TARKA/entities"
	"github.com/20alina03/FYP-MASALA-TARKA/pkg/jwt"
)

// federatedSentinel marks accounts created through Google sign-in. The stored
// password never matches a bcrypt comparison, so password login stays closed
// for federation-only accounts.
const federatedSentinel = "google_"

type (
	UserService interface {
		SignUp(ctx context.Context, req domain.SignUpRequest) (domain.AuthResponse, error)
		SignIn(ctx context.Context, req domain.SignInRequest) (domain.AuthResponse, error)
		GoogleSignIn(ctx context.Context, req domain.GoogleSignInRequest) (domain.AuthResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		googleVerifier GoogleVerifier
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, googleVerifier GoogleVerifier) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		googleVerifier: googleVerifier,
	}
}

func (s *userService) SignUp(ctx context.Context, req domain.SignUpRequest) (domain.AuthResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.AuthResponse{}, domain.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AuthResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	user := entities.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: string(hash),
		FullName: req.FullName,
	}

	if err := s.userRepository.CreateUser(ctx, &user); err != nil {
		// the unique index is the actual guard; the lookup above is a friendly fast path
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.AuthResponse{}, domain.ErrEmailAlreadyRegistered
		}
		return domain.AuthResponse{}, err
	}

	return s.authResponse(&user), nil
}

func (s *userService) SignIn(ctx context.Context, req domain.SignInRequest) (domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		// wrong email and wrong password are indistinguishable on purpose
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}

	if strings.HasPrefix(user.Password, federatedSentinel) {
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}

	return s.authResponse(user), nil
}

func (s *userService) GoogleSignIn(ctx context.Context, req domain.GoogleSignInRequest) (domain.AuthResponse, error) {
	claims, err := s.googleVerifier.Verify(ctx, req.Credential)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	user, err := s.userRepository.GetUserByEmail(ctx, claims.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, err
		}

		googleID := claims.Sub
		newUser := entities.User{
			ID:       uuid.New(),
			Email:    claims.Email,
			FullName: claims.Name,
			Password: fmt.Sprintf("%s%s_%d", federatedSentinel, claims.Sub, time.Now().Unix()),
			GoogleID: &googleID,
		}
		if err := s.userRepository.CreateUser(ctx, &newUser); err != nil {
			return domain.AuthResponse{}, err
		}
		return s.authResponse(&newUser), nil
	}

	if user.GoogleID == nil {
		googleID := claims.Sub
		user.GoogleID = &googleID
		if err := s.userRepository.UpdateUser(ctx, user); err != nil {
			return domain.AuthResponse{}, err
		}
	}

	return s.authResponse(user), nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return domain.UserResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		FullName: user.FullName,
	}, nil
}

func (s *userService) authResponse(user *entities.User) domain.AuthResponse {
	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Email, user.FullName)
	return domain.AuthResponse{
		User: domain.UserResponse{
			ID:       user.ID.String(),
			Email:    user.Email,
			FullName: user.FullName,
		},
		Token: token,
	}
}
