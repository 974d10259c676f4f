package auth

import (
	"context"
	"errors"
	"testing"
)

func TestFirstOf(t *testing.T) {
	errRemote := errors.New("remote down")
	reject := VerifierFunc(func(context.Context, string) (Claims, error) { return Claims{}, ErrUnauthenticated })
	remote := VerifierFunc(func(_ context.Context, tok string) (Claims, error) {
		if tok == "remote-ok" {
			return Claims{UserID: "u-remote"}, nil
		}
		return Claims{}, errRemote
	})

	v := FirstOf(reject, nil, remote)

	c, err := v.Verify(context.Background(), "remote-ok")
	if err != nil || c.UserID != "u-remote" {
		t.Fatalf("expected remote claims, got %+v err=%v", c, err)
	}

	if _, err := v.Verify(context.Background(), "bad"); !errors.Is(err, errRemote) {
		t.Fatalf("expected last error, got %v", err)
	}

	if _, err := FirstOf().Verify(context.Background(), "x"); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated with no verifiers, got %v", err)
	}
}
