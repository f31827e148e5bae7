package handler

import (
	"errors"
	"net/http"

	"talenthub/internal/auth"
	"talenthub/internal/profile"
	"talenthub/internal/user"
	"talenthub/internal/validate"
)

type ProfileHandler struct {
	Profile *profile.Service
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	cu, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	u, err := h.Profile.Get(r.Context(), cu.ID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}
		respondServerError(w, err)
		return
	}

	respondData(w, http.StatusOK, u)
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	cu, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var patch profile.Patch
	if !decodeBody(w, r, &patch) {
		return
	}

	u, err := h.Profile.Update(r.Context(), cu.ID, patch)
	if err != nil {
		var fieldErrs validate.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			respondFieldErrors(w, fieldErrs)
		case errors.Is(err, user.ErrNotFound):
			respondError(w, http.StatusNotFound, "user not found")
		default:
			respondServerError(w, err)
		}
		return
	}

	respondData(w, http.StatusOK, u)
}
