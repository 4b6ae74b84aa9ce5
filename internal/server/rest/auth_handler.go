package rest

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/kyraymege/bookmarkd/internal/common"
	"github.com/kyraymege/bookmarkd/internal/httpx"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r credentialsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

func (s *RestServer) handleSignup(w http.ResponseWriter, r *http.Request) error {
	req, err := decodeCredentials(r)
	if err != nil {
		return err
	}

	token, err := s.users.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorEmailTaken) {
			return httpx.ErrForbidden(err.Error())
		}
		return httpx.ErrInternalServerWrap(err)
	}

	httpx.RespondWithJSON(w, http.StatusCreated, tokenResponse{AccessToken: token})
	return nil
}

func (s *RestServer) handleSignin(w http.ResponseWriter, r *http.Request) error {
	req, err := decodeCredentials(r)
	if err != nil {
		return err
	}

	token, err := s.users.Signin(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			return httpx.ErrForbidden(err.Error())
		}
		return httpx.ErrInternalServerWrap(err)
	}

	httpx.RespondWithJSON(w, http.StatusOK, tokenResponse{AccessToken: token})
	return nil
}

func decodeCredentials(r *http.Request) (*credentialsRequest, error) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, httpx.ErrBadRequest(err.Error())
	}
	return &req, nil
}
