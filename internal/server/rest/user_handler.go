package rest

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/kyraymege/bookmarkd/internal/common"
	"github.com/kyraymege/bookmarkd/internal/httpx"
	"github.com/kyraymege/bookmarkd/internal/server/auth"
	"github.com/kyraymege/bookmarkd/internal/server/users"
)

type updateUserRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func (r updateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, is.Email),
	)
}

func (s *RestServer) handleGetMe(w http.ResponseWriter, r *http.Request) error {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		return httpx.ErrUnauthorized("")
	}

	user, err := s.users.Get(r.Context(), principal.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return httpx.ErrNotFound("")
		}
		return httpx.ErrInternalServerWrap(err)
	}

	httpx.RespondWithJSON(w, http.StatusOK, user)
	return nil
}

func (s *RestServer) handleUpdateUser(w http.ResponseWriter, r *http.Request) error {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		return httpx.ErrUnauthorized("")
	}

	var req updateUserRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		return httpx.ErrBadRequest(err.Error())
	}

	user, err := s.users.Update(r.Context(), principal.UserID, users.UpdateParams{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorEmailTaken):
			return httpx.ErrForbidden(err.Error())
		case errors.Is(err, common.ErrorNotFound):
			return httpx.ErrNotFound("")
		default:
			return httpx.ErrInternalServerWrap(err)
		}
	}

	httpx.RespondWithJSON(w, http.StatusOK, user)
	return nil
}
