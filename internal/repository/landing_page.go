package repository

import (
	"context"

	"salespage/internal/model"
	"salespage/internal/sections"
)

// LandingPageRepository persists landing pages. Lookups of missing rows return
// sql.ErrNoRows; slug uniqueness violations return ErrSlugConflict.
type LandingPageRepository interface {
	// Create inserts a page. The caller sets ID and timestamps.
	Create(ctx context.Context, page *model.LandingPage) (*model.LandingPage, error)

	// Update overwrites every editable column of the page with the given ID.
	// Owner and creation time are never changed.
	Update(ctx context.Context, page *model.LandingPage) (*model.LandingPage, error)

	FindByID(ctx context.Context, id string) (*model.LandingPage, error)

	// FindPublishedBySlug returns the page only when it is published.
	FindPublishedBySlug(ctx context.Context, slug string) (*model.LandingPage, error)

	// ListByOwner returns the owner's pages, newest first.
	ListByOwner(ctx context.Context, userID string) ([]model.PageSummary, error)

	// List returns all pages, newest first, with the total count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.PageSummary], error)

	// Counts returns the number of pages and how many of them are published.
	Counts(ctx context.Context) (total, published int, err error)

	// CountByOwner returns the number of pages per owning user id.
	CountByOwner(ctx context.Context) (map[string]int, error)

	// SlugsWithPrefix lists pages whose slug starts with prefix.
	SlugsWithPrefix(ctx context.Context, prefix string) ([]model.SlugRef, error)

	SetPublished(ctx context.Context, id string, published bool) error

	UpdateSectionOrder(ctx context.Context, id string, order sections.Order) error

	// Delete removes a page by ID. It returns nil if the row did not exist.
	Delete(ctx context.Context, id string) error
}
