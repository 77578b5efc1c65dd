package user

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/20alina03/FYP-MASALA-TARKA/domain"
)

type (
	// GoogleClaims is the subset of the ID token payload the service needs.
	GoogleClaims struct {
		Sub      string `json:"sub"`
		Email    string `json:"email"`
		Name     string `json:"name"`
		Audience string `json:"aud"`
	}

	GoogleVerifier interface {
		Verify(ctx context.Context, credential string) (*GoogleClaims, error)
	}

	googleVerifier struct {
		clientID   string
		httpClient *http.Client
	}
)

func NewGoogleVerifier(clientID string) GoogleVerifier {
	return &googleVerifier{
		clientID:   clientID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *googleVerifier) Verify(ctx context.Context, credential string) (*GoogleClaims, error) {
	url := fmt.Sprintf("https://oauth2.googleapis.com/tokeninfo?id_token=%s", credential)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, domain.ErrGoogleTokenInvalid
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrGoogleTokenInvalid
	}

	var claims GoogleClaims
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		return nil, domain.ErrGoogleTokenInvalid
	}

	if g.clientID != "" && claims.Audience != g.clientID {
		return nil, domain.ErrGoogleTokenInvalid
	}
	if claims.Email == "" {
		return nil, domain.ErrGoogleTokenInvalid
	}

	return &claims, nil
}
