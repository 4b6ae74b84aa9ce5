package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/kyraymege/bookmarkd/internal/common"
	"github.com/kyraymege/bookmarkd/internal/httpx"
	"github.com/kyraymege/bookmarkd/internal/server/auth"
	"github.com/kyraymege/bookmarkd/internal/server/bookmarks"
	"github.com/kyraymege/bookmarkd/internal/server/models"
)

type createBookmarkRequest struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

func (r createBookmarkRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Link, is.URL),
	)
}

type updateBookmarkRequest struct {
	Title       *string `json:"title"`
	Link        *string `json:"link"`
	Description *string `json:"description"`
}

func (r updateBookmarkRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Link, is.URL),
	)
}

func (s *RestServer) handleCreateBookmark(w http.ResponseWriter, r *http.Request) error {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		return httpx.ErrUnauthorized("")
	}

	var req createBookmarkRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return httpx.ErrBadRequest(err.Error())
	}

	bookmark, err := s.bookmarks.Create(r.Context(), principal.UserID, bookmarks.CreateParams{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		return httpx.ErrInternalServerWrap(err)
	}

	httpx.RespondWithJSON(w, http.StatusCreated, bookmark)
	return nil
}

func (s *RestServer) handleListBookmarks(w http.ResponseWriter, r *http.Request) error {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		return httpx.ErrUnauthorized("")
	}

	list, err := s.bookmarks.List(r.Context(), principal.UserID)
	if err != nil {
		return httpx.ErrInternalServerWrap(err)
	}

	// An empty result is a JSON array, never null.
	if list == nil {
		list = []*models.Bookmark{}
	}

	httpx.RespondWithJSON(w, http.StatusOK, list)
	return nil
}

func (s *RestServer) handleGetBookmark(w http.ResponseWriter, r *http.Request) error {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		return httpx.ErrUnauthorized("")
	}

	bookmark, err := s.bookmarks.Get(r.Context(), principal.UserID, chi.URLParam(r, paramID))
	if err != nil {
		return mapBookmarkError(err)
	}

	httpx.RespondWithJSON(w, http.StatusOK, bookmark)
	return nil
}

func (s *RestServer) handleUpdateBookmark(w http.ResponseWriter, r *http.Request) error {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		return httpx.ErrUnauthorized("")
	}

	var req updateBookmarkRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return httpx.ErrBadRequest(err.Error())
	}

	bookmark, err := s.bookmarks.Update(r.Context(), principal.UserID, chi.URLParam(r, paramID), bookmarks.UpdateParams{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		return mapBookmarkError(err)
	}

	httpx.RespondWithJSON(w, http.StatusOK, bookmark)
	return nil
}

func (s *RestServer) handleDeleteBookmark(w http.ResponseWriter, r *http.Request) error {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		return httpx.ErrUnauthorized("")
	}

	if err := s.bookmarks.Delete(r.Context(), principal.UserID, chi.URLParam(r, paramID)); err != nil {
		return mapBookmarkError(err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func mapBookmarkError(err error) error {
	if errors.Is(err, common.ErrorAccessDenied) {
		return httpx.ErrForbidden(err.Error())
	}
	return httpx.ErrInternalServerWrap(err)
}

func decodeBody(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return httpx.ErrBadRequest("Invalid request payload: " + err.Error())
	}
	defer r.Body.Close()
	return nil
}
