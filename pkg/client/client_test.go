package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/20alina03/FYP-MASALA-TARKA/domain"
	"github.com/20alina03/FYP-MASALA-TARKA/internal/api/presenters"
)

func writeEnvelope(w http.ResponseWriter, status int, res presenters.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(res)
}

func newStubServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/signin", func(w http.ResponseWriter, r *http.Request) {
		var req domain.SignInRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret123" {
			writeEnvelope(w, http.StatusUnauthorized, presenters.Response{
				Status:  false,
				Message: domain.MessageFailedSignIn,
				Error:   domain.ErrInvalidCredentials.Error(),
			})
			return
		}
		writeEnvelope(w, http.StatusOK, presenters.Response{
			Status:  true,
			Message: domain.MessageSuccessSignIn,
			Data: domain.AuthResponse{
				User:  domain.UserResponse{ID: "user-1", Email: req.Email, FullName: "Alina"},
				Token: "token-abc",
			},
		})
	})

	mux.HandleFunc("GET /auth/session", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token-abc" {
			writeEnvelope(w, http.StatusUnauthorized, presenters.Response{
				Status:  false,
				Message: domain.MessageFailedGetSession,
				Error:   domain.ErrTokenInvalid.Error(),
			})
			return
		}
		writeEnvelope(w, http.StatusOK, presenters.Response{
			Status:  true,
			Message: domain.MessageSuccessGetSession,
			Data: domain.SessionResponse{
				User: &domain.UserResponse{ID: "user-1", Email: "alina@example.com", FullName: "Alina"},
			},
		})
	})

	mux.HandleFunc("POST /auth/signout", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusInternalServerError, presenters.Response{
			Status:  false,
			Message: "boom",
		})
	})

	mux.HandleFunc("GET /recipes", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, presenters.Response{
			Status:  true,
			Message: domain.MessageSuccessGetRecipes,
			Data:    []domain.Recipe{{ID: "r-1", Title: "Biryani"}},
		})
	})

	mux.HandleFunc("POST /recipe_books", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusConflict, presenters.Response{
			Status:  false,
			Message: domain.MessageFailedAddToBook,
			Error:   domain.ErrAlreadyInBook.Error(),
			Code:    domain.DuplicateCode,
		})
	})

	mux.HandleFunc("PUT /recipes/r-1", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, presenters.Response{
			Status:  true,
			Message: domain.MessageSuccessUpdateRecipe,
			Data:    domain.Recipe{ID: "r-1", Title: "Updated"},
		})
	})

	mux.HandleFunc("DELETE /recipes/r-1", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, presenters.Response{
			Status:  true,
			Message: domain.MessageSuccessDeleteRecipe,
		})
	})

	return httptest.NewServer(mux)
}

func TestSignIn_StoresSession(t *testing.T) {
	server := newStubServer(t)
	defer server.Close()

	store := NewMemorySessionStore()
	c := New(server.URL, store)

	session, err := c.Auth.SignIn(context.Background(), "alina@example.com", "secret123")

	assert.NoError(t, err)
	assert.Equal(t, "Alina", session.User.FullName)
	assert.Equal(t, "token-abc", store.Token())
	assert.Equal(t, "alina@example.com", store.User().Email)
}

func TestSignIn_BadPassword(t *testing.T) {
	server := newStubServer(t)
	defer server.Close()

	store := NewMemorySessionStore()
	c := New(server.URL, store)

	_, err := c.Auth.SignIn(context.Background(), "alina@example.com", "wrong")

	apiErr, ok := err.(*APIError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.False(t, apiErr.IsDuplicate())
	assert.Empty(t, store.Token())
}

func TestGetSession_NoToken(t *testing.T) {
	server := newStubServer(t)
	defer server.Close()

	c := New(server.URL, NewMemorySessionStore())

	session, err := c.Auth.GetSession(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, session.User)
}

func TestGetSession_PrefersCachedUser(t *testing.T) {
	server := newStubServer(t)
	defer server.Close()

	store := NewMemorySessionStore()
	_ = store.SetToken("token-abc")
	_ = store.SetUser(&domain.UserResponse{ID: "user-1", FullName: "Cached Alina"})
	c := New(server.URL, store)

	session, err := c.Auth.GetSession(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "Cached Alina", session.User.FullName)
}

func TestGetSession_RevalidatesAndCaches(t *testing.T) {
	server := newStubServer(t)
	defer server.Close()

	store := NewMemorySessionStore()
	_ = store.SetToken("token-abc")
	c := New(server.URL, store)

	session, err := c.Auth.GetSession(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "Alina", session.User.FullName)
	assert.NotNil(t, store.User())
}

func TestGetSession_ClearsDeadToken(t *testing.T) {
	server := newStubServer(t)
	defer server.Close()

	store := NewMemorySessionStore()
	_ = store.SetToken("stale-token")
	c := New(server.URL, store)

	session, err := c.Auth.GetSession(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, session.User)
	assert.Empty(t, store.Token())
}

func TestSignOut_ClearsDespiteServerError(t *testing.T) {
	server := newStubServer(t)
	defer server.Close()

	store := NewMemorySessionStore()
	_ = store.SetToken("token-abc")
	_ = store.SetUser(&domain.UserResponse{ID: "user-1"})
	c := New(server.URL, store)

	err := c.Auth.SignOut(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())
}

func TestCollectionSelect(t *testing.T) {
	server := newStubServer(t)
	defer server.Close()

	c := New(server.URL, NewMemorySessionStore())

	res := c.Collection("recipes").Select(context.Background())

	assert.Nil(t, res.Error)
	var recipes []domain.Recipe
	assert.NoError(t, json.Unmarshal(res.Data, &recipes))
	assert.Len(t, recipes, 1)
	assert.Equal(t, "Biryani", recipes[0].Title)
}

func TestCollectionInsert_DuplicateCode(t *testing.T) {
	server := newStubServer(t)
	defer server.Close()

	c := New(server.URL, NewMemorySessionStore())

	res := c.Collection("recipe_books").Insert(context.Background(), domain.AddToBookRequest{RecipeID: "r-1"})

	assert.NotNil(t, res.Error)
	assert.True(t, res.Error.IsDuplicate())
	assert.Equal(t, http.StatusConflict, res.Error.Status)
}

func TestUpdateEq_ById(t *testing.T) {
	server := newStubServer(t)
	defer server.Close()

	c := New(server.URL, NewMemorySessionStore())

	res := c.Collection("recipes").Update(map[string]string{"title": "Updated"}).Eq(context.Background(), "id", "r-1")

	assert.Nil(t, res.Error)
	var recipe domain.Recipe
	assert.NoError(t, json.Unmarshal(res.Data, &recipe))
	assert.Equal(t, "Updated", recipe.Title)
}

func TestUpdateEq_UnsupportedField(t *testing.T) {
	server := newStubServer(t)
	defer server.Close()

	c := New(server.URL, NewMemorySessionStore())

	res := c.Collection("recipes").Update(map[string]string{"title": "x"}).Eq(context.Background(), "title", "Biryani")

	assert.NotNil(t, res.Error)
	assert.Equal(t, http.StatusNotFound, res.Error.Status)
}

func TestDeleteEq(t *testing.T) {
	server := newStubServer(t)
	defer server.Close()

	c := New(server.URL, NewMemorySessionStore())

	res := c.Collection("recipes").Delete().Eq(context.Background(), "id", "r-1")
	assert.Nil(t, res.Error)

	missing := c.Collection("recipes").Delete().Eq(context.Background(), "recipe_id", "r-1")
	assert.NotNil(t, missing.Error)
	assert.Equal(t, http.StatusNotFound, missing.Error.Status)
}
