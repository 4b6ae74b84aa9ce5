package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/kyraymege/bookmarkd/internal/client/api"
)

// List prints the caller's bookmarks. On success the local cache is
// refreshed; if the server is unreachable, the cached copy is shown instead.
func (a *App) List(ctx context.Context) error {
	list, err := a.api.ListBookmarks(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			log.Printf("Server unavailable, showing cached bookmarks...")
			list, err = a.cache.List(ctx)
			if err != nil {
				return err
			}
			printBookmarks(list)
			return nil
		}
		log.Printf("List unsuccessful: %s", err.Error())
		return err
	}

	if err := a.cache.Replace(ctx, list); err != nil {
		log.Printf("error refreshing cache: %s", err.Error())
	}

	printBookmarks(list)
	return nil
}

// Add prompts for the bookmark fields and stores a new bookmark.
func (a *App) Add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}

	link, err := getSimpleText(a.reader, "Enter link (optional)", os.Stdout)
	if err != nil {
		return err
	}

	description, err := getSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		return err
	}

	bookmark, err := a.api.CreateBookmark(ctx, title, link, description)
	if err != nil {
		log.Printf("Add unsuccessful: %s", err.Error())
		return err
	}

	fmt.Printf("Created %s\n", bookmark.ID)
	return nil
}

// Remove prompts for a bookmark id and deletes it.
func (a *App) Remove(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter bookmark id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.DeleteBookmark(ctx, id); err != nil {
		log.Printf("Remove unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Deleted")
	return nil
}

// WhoAmI prints the account owning the session.
func (a *App) WhoAmI(ctx context.Context) error {
	user, err := a.api.Me(ctx)
	if err != nil {
		log.Printf("Request unsuccessful: %s", err.Error())
		return err
	}

	name := user.Email
	if user.FirstName != "" || user.LastName != "" {
		name = fmt.Sprintf("%s %s <%s>", user.FirstName, user.LastName, user.Email)
	}
	fmt.Println(name)
	return nil
}

func printBookmarks(list []api.Bookmark) {
	if len(list) == 0 {
		fmt.Println("No bookmarks")
		return
	}
	for _, b := range list {
		line := fmt.Sprintf("%s  %s", b.ID, b.Title)
		if b.Link != "" {
			line += "  " + b.Link
		}
		fmt.Println(line)
	}
}
