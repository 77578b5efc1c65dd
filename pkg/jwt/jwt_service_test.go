package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/20alina03/FYP-MASALA-TARKA/domain"
)

func TestGenerateAndValidateToken(t *testing.T) {
	service := NewJWTServiceWithSecret("test-secret")

	token := service.GenerateTokenUser("user-123", "alina@example.com", "Alina")
	assert.NotEmpty(t, token)

	userID, email, fullName, err := service.GetUserByToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", userID)
	assert.Equal(t, "alina@example.com", email)
	assert.Equal(t, "Alina", fullName)
}

func TestValidateToken_Garbage(t *testing.T) {
	service := NewJWTServiceWithSecret("test-secret")

	_, _, _, err := service.GetUserByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := NewJWTServiceWithSecret("secret-one")
	checker := NewJWTServiceWithSecret("secret-two")

	token := issuer.GenerateTokenUser("user-123", "alina@example.com", "Alina")

	_, _, _, err := checker.GetUserByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
