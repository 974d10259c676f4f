package auth

import (
	"context"
	"errors"
)

// ErrUnauthenticated: el token no corresponde a ninguna sesión válida.
var ErrUnauthenticated = errors.New("unauthenticated")

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// VerifierFunc adapta una función a AuthVerifier.
type VerifierFunc func(ctx context.Context, token string) (Claims, error)

func (f VerifierFunc) Verify(ctx context.Context, token string) (Claims, error) {
	return f(ctx, token)
}

// FirstOf prueba los verifiers en orden y devuelve el primer éxito.
// Los nil se ignoran. Si ninguno acepta, devuelve el último error.
func FirstOf(verifiers ...AuthVerifier) AuthVerifier {
	list := make([]AuthVerifier, 0, len(verifiers))
	for _, v := range verifiers {
		if v != nil {
			list = append(list, v)
		}
	}
	return VerifierFunc(func(ctx context.Context, token string) (Claims, error) {
		err := ErrUnauthenticated
		for _, v := range list {
			c, verr := v.Verify(ctx, token)
			if verr == nil {
				return c, nil
			}
			err = verr
		}
		return Claims{}, err
	})
}
