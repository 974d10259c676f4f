package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newIAM(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != verifyPath || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("X-Api-Key") != "secret" {
			http.Error(w, "bad key", http.StatusForbidden)
			return
		}

		var req verifyRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		switch req.Token {
		case "good":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"user_id":"u-1","email":"vet@zoo.test","name":"Vet"}`))
		case "empty":
			_, _ = w.Write([]byte(`{}`))
		case "boom":
			http.Error(w, "boom", http.StatusBadGateway)
		default:
			http.Error(w, "nope", http.StatusUnauthorized)
		}
	}))
}

func TestNew_DisabledWithoutConfig(t *testing.T) {
	v, err := New(Config{BaseURL: "http://iam.local"})
	if err != nil || v != nil {
		t.Fatalf("expected disabled verifier, got %v err=%v", v, err)
	}

	var nilV *Verifier
	if _, err := nilV.Verify(context.Background(), "x"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestVerify(t *testing.T) {
	srv := newIAM(t)
	defer srv.Close()

	v, err := New(Config{BaseURL: srv.URL, APIKey: "secret"})
	if err != nil || v == nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	c, err := v.Verify(ctx, "good")
	if err != nil || c.UserID != "u-1" || c.Email != "vet@zoo.test" || c.Name != "Vet" {
		t.Fatalf("unexpected claims %+v err=%v", c, err)
	}

	if _, err := v.Verify(ctx, "bad"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := v.Verify(ctx, "  "); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for blank token, got %v", err)
	}
	if _, err := v.Verify(ctx, "boom"); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if _, err := v.Verify(ctx, "empty"); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream for missing user_id, got %v", err)
	}
}

func TestVerify_WrongAPIKeyIsUnauthorized(t *testing.T) {
	srv := newIAM(t)
	defer srv.Close()

	v, _ := New(Config{BaseURL: srv.URL, APIKey: "wrong"})
	if _, err := v.Verify(context.Background(), "good"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
