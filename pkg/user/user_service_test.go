package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/20alina03/FYP-MASALA-TARKA/domain"
	"github.com/20alina03/FYP-MASALA-TARKA/entities"
	"github.com/20alina03/FYP-MASALA-TARKA/pkg/jwt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockGoogleVerifier struct {
	mock.Mock
}

func (m *MockGoogleVerifier) Verify(ctx context.Context, credential string) (*GoogleClaims, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GoogleClaims), args.Error(1)
}

func newTestService(repo UserRepository, verifier GoogleVerifier) UserService {
	return NewUserService(repo, jwt.NewJWTServiceWithSecret("test-secret"), verifier)
}

func TestSignUp_Success(t *testing.T) {
	repo := new(MockUserRepository)
	service := newTestService(repo, nil)

	repo.On("GetUserByEmail", mock.Anything, "alina@example.com").Return(nil, gorm.ErrRecordNotFound)
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
		return u.Email == "alina@example.com" && u.Password != "secret123"
	})).Return(nil)

	res, err := service.SignUp(context.Background(), domain.SignUpRequest{
		Email:    "alina@example.com",
		Password: "secret123",
		FullName: "Alina",
	})

	assert.NoError(t, err)
	assert.Equal(t, "alina@example.com", res.User.Email)
	assert.NotEmpty(t, res.Token)
	repo.AssertExpectations(t)
}

func TestSignUp_EmailTaken(t *testing.T) {
	repo := new(MockUserRepository)
	service := newTestService(repo, nil)

	repo.On("GetUserByEmail", mock.Anything, "alina@example.com").Return(&entities.User{ID: uuid.New()}, nil)

	_, err := service.SignUp(context.Background(), domain.SignUpRequest{
		Email:    "alina@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestSignUp_InsertRaceReportsEmailTaken(t *testing.T) {
	repo := new(MockUserRepository)
	service := newTestService(repo, nil)

	repo.On("GetUserByEmail", mock.Anything, "alina@example.com").Return(nil, gorm.ErrRecordNotFound)
	repo.On("CreateUser", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := service.SignUp(context.Background(), domain.SignUpRequest{
		Email:    "alina@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
}

func TestSignIn_WrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	service := newTestService(repo, nil)

	hash, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	repo.On("GetUserByEmail", mock.Anything, "alina@example.com").Return(&entities.User{
		ID:       uuid.New(),
		Email:    "alina@example.com",
		Password: string(hash),
	}, nil)

	_, err := service.SignIn(context.Background(), domain.SignInRequest{
		Email:    "alina@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestSignIn_UnknownEmailSameError(t *testing.T) {
	repo := new(MockUserRepository)
	service := newTestService(repo, nil)

	repo.On("GetUserByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := service.SignIn(context.Background(), domain.SignInRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestSignIn_FederatedAccountRejected(t *testing.T) {
	repo := new(MockUserRepository)
	service := newTestService(repo, nil)

	repo.On("GetUserByEmail", mock.Anything, "alina@example.com").Return(&entities.User{
		ID:       uuid.New(),
		Email:    "alina@example.com",
		Password: "google_110234_1700000000",
	}, nil)

	_, err := service.SignIn(context.Background(), domain.SignInRequest{
		Email:    "alina@example.com",
		Password: "google_110234_1700000000",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestGoogleSignIn_CreatesAccount(t *testing.T) {
	repo := new(MockUserRepository)
	verifier := new(MockGoogleVerifier)
	service := newTestService(repo, verifier)

	verifier.On("Verify", mock.Anything, "credential-token").Return(&GoogleClaims{
		Sub:   "110234",
		Email: "alina@example.com",
		Name:  "Alina",
	}, nil)
	repo.On("GetUserByEmail", mock.Anything, "alina@example.com").Return(nil, gorm.ErrRecordNotFound)
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
		return u.GoogleID != nil && *u.GoogleID == "110234" && u.Email == "alina@example.com"
	})).Return(nil)

	res, err := service.GoogleSignIn(context.Background(), domain.GoogleSignInRequest{Credential: "credential-token"})

	assert.NoError(t, err)
	assert.Equal(t, "Alina", res.User.FullName)
	assert.NotEmpty(t, res.Token)
	repo.AssertExpectations(t)
}

func TestGoogleSignIn_LinksExistingAccount(t *testing.T) {
	repo := new(MockUserRepository)
	verifier := new(MockGoogleVerifier)
	service := newTestService(repo, verifier)

	existing := &entities.User{
		ID:    uuid.New(),
		Email: "alina@example.com",
	}

	verifier.On("Verify", mock.Anything, "credential-token").Return(&GoogleClaims{
		Sub:   "110234",
		Email: "alina@example.com",
		Name:  "Alina",
	}, nil)
	repo.On("GetUserByEmail", mock.Anything, "alina@example.com").Return(existing, nil)
	repo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
		return u.GoogleID != nil && *u.GoogleID == "110234"
	})).Return(nil)

	_, err := service.GoogleSignIn(context.Background(), domain.GoogleSignInRequest{Credential: "credential-token"})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestGoogleSignIn_BadCredential(t *testing.T) {
	repo := new(MockUserRepository)
	verifier := new(MockGoogleVerifier)
	service := newTestService(repo, verifier)

	verifier.On("Verify", mock.Anything, "bogus").Return(nil, domain.ErrGoogleTokenInvalid)

	_, err := service.GoogleSignIn(context.Background(), domain.GoogleSignInRequest{Credential: "bogus"})

	assert.ErrorIs(t, err, domain.ErrGoogleTokenInvalid)
	repo.AssertNotCalled(t, "GetUserByEmail", mock.Anything, mock.Anything)
}
