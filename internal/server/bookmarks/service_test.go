package bookmarks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kyraymege/bookmarkd/internal/common"
	"github.com/kyraymege/bookmarkd/internal/server/models"
)

// --- helpers ---

type fakeBookmarksRepo struct {
	byID map[string]*models.Bookmark

	listErr error
}

func newFakeBookmarksRepo() *fakeBookmarksRepo {
	return &fakeBookmarksRepo{byID: map[string]*models.Bookmark{}}
}

func (f *fakeBookmarksRepo) Create(ctx context.Context, b *models.Bookmark) (*models.Bookmark, error) {
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.byID[b.ID] = b
	return b, nil
}

func (f *fakeBookmarksRepo) ListByUser(ctx context.Context, userID string) ([]*models.Bookmark, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Bookmark
	for _, b := range f.byID {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookmarksRepo) GetByID(ctx context.Context, id string) (*models.Bookmark, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return b, nil
}

func (f *fakeBookmarksRepo) Update(ctx context.Context, b *models.Bookmark) (*models.Bookmark, error) {
	if _, ok := f.byID[b.ID]; !ok {
		return nil, common.ErrorNotFound
	}
	b.UpdatedAt = time.Now()
	f.byID[b.ID] = b
	return b, nil
}

func (f *fakeBookmarksRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

func seedBookmark(t *testing.T, svc *Service, userID, title string) *models.Bookmark {
	t.Helper()
	b, err := svc.Create(context.Background(), userID, CreateParams{
		Title:       title,
		Link:        "https://example.com",
		Description: "d",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	return b
}

// --- tests ---

func TestCreate_AssignsOwner(t *testing.T) {
	svc := NewService(newFakeBookmarksRepo())

	b := seedBookmark(t, svc, "owner-1", "Go")
	if b.UserID != "owner-1" {
		t.Fatalf("owner not set: %+v", b)
	}
	if b.ID == "" {
		t.Fatalf("id not assigned")
	}
}

func TestGet_OwnerSeesOwnBookmark(t *testing.T) {
	svc := NewService(newFakeBookmarksRepo())
	b := seedBookmark(t, svc, "owner-1", "Go")

	got, err := svc.Get(context.Background(), "owner-1", b.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.ID != b.ID {
		t.Fatalf("unexpected bookmark: %+v", got)
	}
}

func TestGet_ForeignBookmarkIsAccessDenied(t *testing.T) {
	svc := NewService(newFakeBookmarksRepo())
	b := seedBookmark(t, svc, "owner-1", "Go")

	_, err := svc.Get(context.Background(), "intruder", b.ID)
	if !errors.Is(err, common.ErrorAccessDenied) {
		t.Fatalf("want common.ErrorAccessDenied, got %v", err)
	}
}

func TestGet_MissingBookmarkIsAccessDeniedToo(t *testing.T) {
	svc := NewService(newFakeBookmarksRepo())

	// Absent rows and foreign rows must be indistinguishable.
	_, err := svc.Get(context.Background(), "owner-1", "no-such-id")
	if !errors.Is(err, common.ErrorAccessDenied) {
		t.Fatalf("want common.ErrorAccessDenied, got %v", err)
	}
}

func TestUpdate_OwnershipEnforced(t *testing.T) {
	svc := NewService(newFakeBookmarksRepo())
	b := seedBookmark(t, svc, "owner-1", "Go")

	title := "NodeJS"
	if _, err := svc.Update(context.Background(), "intruder", b.ID, UpdateParams{Title: &title}); !errors.Is(err, common.ErrorAccessDenied) {
		t.Fatalf("want common.ErrorAccessDenied, got %v", err)
	}

	got, err := svc.Update(context.Background(), "owner-1", b.ID, UpdateParams{Title: &title})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Title != "NodeJS" {
		t.Fatalf("title not updated: %+v", got)
	}
	if got.Link != "https://example.com" {
		t.Fatalf("unset fields must be unchanged: %+v", got)
	}
}

func TestDelete_OwnershipEnforced(t *testing.T) {
	repo := newFakeBookmarksRepo()
	svc := NewService(repo)
	b := seedBookmark(t, svc, "owner-1", "Go")

	if err := svc.Delete(context.Background(), "intruder", b.ID); !errors.Is(err, common.ErrorAccessDenied) {
		t.Fatalf("want common.ErrorAccessDenied, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("bookmark must survive a denied delete")
	}

	if err := svc.Delete(context.Background(), "owner-1", b.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("bookmark not deleted")
	}
}

func TestList_OnlyOwnBookmarks(t *testing.T) {
	svc := NewService(newFakeBookmarksRepo())
	seedBookmark(t, svc, "owner-1", "one")
	seedBookmark(t, svc, "owner-1", "two")
	seedBookmark(t, svc, "owner-2", "other")

	got, err := svc.List(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 bookmarks, got %d", len(got))
	}
	for _, b := range got {
		if b.UserID != "owner-1" {
			t.Fatalf("foreign bookmark leaked into listing: %+v", b)
		}
	}
}
