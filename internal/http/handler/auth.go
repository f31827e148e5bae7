package handler

import (
	"errors"
	"net/http"

	"talenthub/internal/auth"
	"talenthub/internal/user"
	"talenthub/internal/validate"
)

type AuthHandler struct {
	Auth *auth.Service
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if !decodeBody(w, r, &req) {
		return
	}

	token, _, err := h.Auth.Register(r.Context(), auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var fieldErrs validate.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			respondFieldErrors(w, fieldErrs)
		case errors.Is(err, user.ErrDuplicateEmail):
			respondError(w, http.StatusBadRequest, "email already registered")
		default:
			respondServerError(w, err)
		}
		return
	}

	respondToken(w, http.StatusCreated, token)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if !decodeBody(w, r, &req) {
		return
	}

	token, _, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		respondServerError(w, err)
		return
	}

	respondToken(w, http.StatusOK, token)
}

// Me returns the user the access guard already resolved for this request.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	respondData(w, http.StatusOK, u)
}
