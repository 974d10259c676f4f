package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes: login y consulta son públicos; logout pasa por requireAuth.
func RegisterRoutes(r chi.Router, svc *Service, requireAuth func(http.Handler) http.Handler) {
	r.Route("/session", func(sr chi.Router) {
		sr.Get("/", currentSessionHandler(svc))
		sr.Post("/login", loginHandler(svc))
		sr.With(requireAuth).Post("/logout", logoutHandler(svc))
	})
}

type loginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

type userResponse struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *userResponse `json:"user,omitempty"`
	Token         string        `json:"token,omitempty"`
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Description Sesión de demo: no valida la contraseña. Simula latencia y devuelve un token `demo-token-<ms>` para usar como `Authorization: Bearer`. Con remember_me el usuario sobrevive a reinicios.
// @Tags session
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} sessionResponse
// @Failure 400 {string} string "invalid json / email requerido"
// @Failure 500 {string} string "internal error"
// @Router /session/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		st, err := svc.Login(r.Context(), LoginInput{
			Email:      req.Email,
			Password:   req.Password,
			RememberMe: req.RememberMe,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
				// el cliente se fue; nada útil que responder
				return
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toSessionResponse(st, true))
	}
}

// logoutHandler godoc
// @Summary Cerrar sesión
// @Description Borra el token y el usuario persistidos. Requiere la sesión activa (o X-Debug-User-ID en modo dev).
// @Tags session
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Success 204 "sin contenido"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /session/logout [post]
func logoutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Logout(r.Context()); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// currentSessionHandler godoc
// @Summary Sesión actual
// @Description Indica si hay una sesión activa y su usuario. No expone el token.
// @Tags session
// @Produce json
// @Success 200 {object} sessionResponse
// @Router /session [get]
func currentSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toSessionResponse(svc.Current(), false))
	}
}

func toSessionResponse(st State, withToken bool) sessionResponse {
	out := sessionResponse{Authenticated: st.Authenticated}
	if st.User != nil {
		out.User = &userResponse{Email: st.User.Email, Name: st.User.Name}
	}
	if withToken {
		out.Token = st.Token
	}
	return out
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
