package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/20alina03/FYP-MASALA-TARKA/domain"
	"github.com/20alina03/FYP-MASALA-TARKA/internal/api/presenters"
)

type (
	// Client is a thin data-access facade over the resource API. Every named
	// collection maps onto a REST resource group and exposes the same four
	// operations, so callers never build URLs or headers themselves.
	Client struct {
		baseURL    string
		httpClient *http.Client
		session    SessionStore

		Auth *Auth
	}

	// APIError is the expected-failure shape. Operations return it inside a
	// Result rather than as a Go error so callers can branch on the code.
	APIError struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
		Status  int    `json:"status"`
	}

	// Result carries either the raw response payload or an APIError, never both.
	Result struct {
		Data  json.RawMessage
		Error *APIError
	}

	// DeleteResult has no payload; only the error matters.
	DeleteResult struct {
		Error *APIError
	}

	Collection struct {
		client *Client
		name   string
	}

	UpdateBuilder struct {
		collection *Collection
		values     any
	}

	DeleteBuilder struct {
		collection *Collection
	}

	Auth struct {
		client *Client
	}

	Session struct {
		User *domain.UserResponse
	}
)

func (e *APIError) Error() string {
	return e.Message
}

// IsDuplicate reports whether the failure was a uniqueness violation.
func (e *APIError) IsDuplicate() bool {
	return e != nil && e.Code == domain.DuplicateCode
}

func New(baseURL string, session SessionStore) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		session:    session,
	}
	c.Auth = &Auth{client: c}
	return c
}

// Collection names a resource group, e.g. "recipes" or "recipe_books".
func (c *Client) Collection(name string) *Collection {
	return &Collection{client: c, name: name}
}

func (col *Collection) Select(ctx context.Context) Result {
	return col.client.do(ctx, http.MethodGet, "/"+col.name, nil)
}

func (col *Collection) Insert(ctx context.Context, values any) Result {
	return col.client.do(ctx, http.MethodPost, "/"+col.name, values)
}

func (col *Collection) Update(values any) *UpdateBuilder {
	return &UpdateBuilder{collection: col, values: values}
}

func (col *Collection) Delete() *DeleteBuilder {
	return &DeleteBuilder{collection: col}
}

// Eq scopes the update to a single row. Only id lookups exist on the wire,
// so any other field is reported as not found without a round trip.
func (b *UpdateBuilder) Eq(ctx context.Context, field, value string) Result {
	if field != "id" && field != "_id" {
		return Result{Error: &APIError{
			Message: fmt.Sprintf("no row matched %s = %s", field, value),
			Status:  http.StatusNotFound,
		}}
	}
	return b.collection.client.do(ctx, http.MethodPut, "/"+b.collection.name+"/"+value, b.values)
}

func (b *DeleteBuilder) Eq(ctx context.Context, field, value string) DeleteResult {
	if field != "id" && field != "_id" {
		return DeleteResult{Error: &APIError{
			Message: fmt.Sprintf("no row matched %s = %s", field, value),
			Status:  http.StatusNotFound,
		}}
	}
	res := b.collection.client.do(ctx, http.MethodDelete, "/"+b.collection.name+"/"+value, nil)
	return DeleteResult{Error: res.Error}
}

func (a *Auth) SignUp(ctx context.Context, email, password, fullName string) (Session, error) {
	return a.authenticate(ctx, "/auth/signup", domain.SignUpRequest{
		Email:    email,
		Password: password,
		FullName: fullName,
	})
}

func (a *Auth) SignIn(ctx context.Context, email, password string) (Session, error) {
	return a.authenticate(ctx, "/auth/signin", domain.SignInRequest{
		Email:    email,
		Password: password,
	})
}

func (a *Auth) SignInWithGoogle(ctx context.Context, credential string) (Session, error) {
	return a.authenticate(ctx, "/auth/google", domain.GoogleSignInRequest{
		Credential: credential,
	})
}

func (a *Auth) authenticate(ctx context.Context, endpoint string, payload any) (Session, error) {
	res := a.client.do(ctx, http.MethodPost, endpoint, payload)
	if res.Error != nil {
		return Session{}, res.Error
	}

	var auth domain.AuthResponse
	if err := json.Unmarshal(res.Data, &auth); err != nil {
		return Session{}, err
	}

	if err := a.client.session.SetToken(auth.Token); err != nil {
		return Session{}, err
	}
	if err := a.client.session.SetUser(&auth.User); err != nil {
		return Session{}, err
	}

	return Session{User: &auth.User}, nil
}

// GetSession answers from the cached profile when one exists, falls back to
// the server otherwise, and clears the store when the token no longer works.
// An absent session is not an error.
func (a *Auth) GetSession(ctx context.Context) (Session, error) {
	if a.client.session.Token() == "" {
		return Session{}, nil
	}

	if cached := a.client.session.User(); cached != nil {
		return Session{User: cached}, nil
	}

	res := a.client.do(ctx, http.MethodGet, "/auth/session", nil)
	if res.Error != nil {
		_ = a.client.session.Clear()
		return Session{}, nil
	}

	var session domain.SessionResponse
	if err := json.Unmarshal(res.Data, &session); err != nil {
		_ = a.client.session.Clear()
		return Session{}, nil
	}

	_ = a.client.session.SetUser(session.User)
	return Session{User: session.User}, nil
}

// SignOut tells the server best-effort; the local session is dropped
// no matter what the server said.
func (a *Auth) SignOut(ctx context.Context) error {
	_ = a.client.do(ctx, http.MethodPost, "/auth/signout", nil)
	return a.client.session.Clear()
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload any) Result {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return Result{Error: &APIError{Message: err.Error(), Status: 0}}
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return Result{Error: &APIError{Message: err.Error(), Status: 0}}
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{Error: &APIError{Message: err.Error(), Status: 0}}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Error: &APIError{Message: err.Error(), Status: resp.StatusCode}}
	}

	var envelope presenters.Response
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return Result{Error: &APIError{Message: "malformed response", Status: resp.StatusCode}}
	}

	if resp.StatusCode >= http.StatusBadRequest || !envelope.Status {
		message := envelope.Error
		if message == "" {
			message = envelope.Message
		}
		return Result{Error: &APIError{
			Message: message,
			Code:    envelope.Code,
			Status:  resp.StatusCode,
		}}
	}

	data, err := json.Marshal(envelope.Data)
	if err != nil {
		return Result{Error: &APIError{Message: err.Error(), Status: resp.StatusCode}}
	}
	return Result{Data: data}
}
