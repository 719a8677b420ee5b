package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"salespage/internal/auth"
	"salespage/internal/cache"
	"salespage/internal/metrics"
	"salespage/internal/model"
	"salespage/internal/render"
	"salespage/internal/repository"
	"salespage/internal/sections"
	"salespage/internal/slug"
	"salespage/internal/theme"
)

var tracer = otel.Tracer("salespage/internal/service")

// Section change operations accepted by UpdateSections.
const (
	SectionReplace = "replace"
	SectionMove    = "move"
	SectionShift   = "shift"
	SectionToggle  = "toggle"
)

// SectionChange is one edit of a page's section order.
//
//	replace: Order becomes the new order (normalized)
//	move:    the entry at From moves to To
//	shift:   section ID moves Delta positions (-1 up, +1 down)
//	toggle:  section ID is shown or hidden per Enabled
type SectionChange struct {
	Op      string         `json:"op"`
	Order   sections.Order `json:"order,omitempty"`
	From    int            `json:"from"`
	To      int            `json:"to"`
	ID      sections.ID    `json:"id"`
	Delta   int            `json:"delta"`
	Enabled bool           `json:"enabled"`
}

// PageService holds the landing page use cases of owners and public visitors.
type PageService interface {
	// Defaults returns the content a new page starts with.
	Defaults() model.LandingPage

	// Create stores a new page for the session user. A taken slug is replaced
	// by a timestamped variant instead of failing.
	Create(ctx context.Context, owner *auth.Session, in *model.LandingPage) (*model.LandingPage, error)

	// Update overwrites the page's editable fields. A taken slug fails with ErrSlugTaken.
	Update(ctx context.Context, userID, id string, in *model.LandingPage) (*model.LandingPage, error)

	Get(ctx context.Context, userID, id string) (*model.LandingPage, error)
	ListMine(ctx context.Context, userID string) ([]model.PageSummary, error)
	Delete(ctx context.Context, userID, id string) error
	UpdateSections(ctx context.Context, userID, id string, change SectionChange) (sections.Order, error)

	SuggestSlug(ctx context.Context, title, excludeID string) (*slug.Suggestion, error)
	CheckSlug(ctx context.Context, value, excludeID string) (bool, error)

	// PublicPage renders the published page at slug. Unknown or unpublished
	// slugs return ErrNotFound.
	PublicPage(ctx context.Context, slug string) ([]byte, error)
}

// PageDeps are the collaborators of the page service.
type PageDeps struct {
	Pages    repository.LandingPageRepository
	Profiles repository.ProfileRepository
	Slugs    *slug.Allocator
	Renderer *render.Renderer
	Cache    cache.PageCache
	Metrics  *metrics.Collector
	Logger   *zap.Logger
}

type pageService struct {
	pages    repository.LandingPageRepository
	profiles repository.ProfileRepository
	slugs    *slug.Allocator
	renderer *render.Renderer
	cache    cache.PageCache
	metrics  *metrics.Collector
	log      *zap.Logger
}

// NewPageService constructs a PageService.
func NewPageService(d PageDeps) PageService {
	s := &pageService{
		pages:    d.Pages,
		profiles: d.Profiles,
		slugs:    d.Slugs,
		renderer: d.Renderer,
		cache:    d.Cache,
		metrics:  d.Metrics,
		log:      d.Logger,
	}
	if s.cache == nil {
		s.cache = cache.Noop{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.slugs == nil {
		s.slugs = slug.NewAllocator(d.Pages, slug.WithLogger(s.log))
	}
	return s
}

func (s *pageService) Defaults() model.LandingPage {
	return model.NewDefaultPage()
}

func (s *pageService) Create(ctx context.Context, owner *auth.Session, in *model.LandingPage) (*model.LandingPage, error) {
	ctx, span := tracer.Start(ctx, "PageService.Create")
	defer span.End()

	if owner == nil || owner.UserID == "" {
		return nil, ErrForbidden
	}
	if in == nil {
		return nil, fmt.Errorf("%w: page is required", ErrInvalidInput)
	}
	if err := checkTheme(in); err != nil {
		return nil, err
	}

	base, err := s.createSlug(ctx, in.Slug, in.HeroTitle)
	if err != nil {
		return nil, err
	}

	if err := s.profiles.Ensure(ctx, &model.Profile{
		ID:       owner.UserID,
		Email:    owner.Email,
		FullName: owner.FullName,
	}); err != nil {
		return nil, fmt.Errorf("ensure profile: %w", err)
	}

	page := *in
	page.Sanitize()
	now := s.slugs.Now().UTC()
	page.ID = uuid.NewString()
	page.UserID = owner.UserID
	page.Slug = base
	page.CreatedAt = now
	page.UpdatedAt = now

	created, err := s.pages.Create(ctx, &page)
	if errors.Is(err, repository.ErrSlugConflict) {
		// Another save took the slug between the check and the insert.
		s.metrics.SlugCollision()
		page.Slug = slug.Fallback(base, s.slugs.Now()) + "-" + s.slugs.Random()
		created, err = s.pages.Create(ctx, &page)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, repository.ErrSlugConflict) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("create page: %w", err)
	}

	span.SetAttributes(attribute.String("page.id", created.ID), attribute.String("page.slug", created.Slug))
	s.log.Info("landing_page_created",
		zap.String("page_id", created.ID),
		zap.String("user_id", created.UserID),
		zap.String("slug", created.Slug),
	)
	return created, nil
}

// createSlug resolves the slug for a new page: the typed one when given,
// otherwise one derived from the title. A taken slug gets a timestamp suffix.
func (s *pageService) createSlug(ctx context.Context, requested, title string) (string, error) {
	var base string
	if strings.TrimSpace(requested) != "" {
		base = slug.Clean(requested)
		if err := slug.Validate(base); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidSlug, err)
		}
	} else {
		base = slug.Derive(title)
		if base == "" {
			return "", fmt.Errorf("%w: %v", ErrInvalidSlug, slug.ErrEmptyTitle)
		}
	}

	ok := false
	if slug.Validate(base) == nil {
		var err error
		ok, err = s.slugs.Available(ctx, base, "")
		if err != nil {
			return "", err
		}
	}
	if ok {
		return base, nil
	}
	s.metrics.SlugCollision()
	return slug.Fallback(base, s.slugs.Now()), nil
}

// owned loads a page and checks that userID owns it.
func (s *pageService) owned(ctx context.Context, userID, id string) (*model.LandingPage, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	page, err := s.pages.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if page.UserID != userID {
		return nil, ErrForbidden
	}
	return page, nil
}

func (s *pageService) Update(ctx context.Context, userID, id string, in *model.LandingPage) (*model.LandingPage, error) {
	ctx, span := tracer.Start(ctx, "PageService.Update")
	defer span.End()

	if in == nil {
		return nil, fmt.Errorf("%w: page is required", ErrInvalidInput)
	}
	existing, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := checkTheme(in); err != nil {
		return nil, err
	}

	page := *in
	if in.SectionOrder == nil {
		page.SectionOrder = existing.SectionOrder
	}
	page.ID = existing.ID
	page.UserID = existing.UserID
	page.CreatedAt = existing.CreatedAt
	page.UpdatedAt = s.slugs.Now().UTC()

	page.Slug = existing.Slug
	if strings.TrimSpace(in.Slug) != "" {
		page.Slug = slug.Clean(in.Slug)
	}
	if page.Slug != existing.Slug {
		if err := slug.Validate(page.Slug); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSlug, err)
		}
		ok, err := s.slugs.Available(ctx, page.Slug, existing.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			s.metrics.SlugCollision()
			return nil, ErrSlugTaken
		}
	}
	page.Sanitize()

	updated, err := s.pages.Update(ctx, &page)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, repository.ErrSlugConflict) {
			s.metrics.SlugCollision()
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("update page: %w", mapNotFound(err))
	}

	s.invalidate(ctx, existing.Slug, updated.Slug)
	return updated, nil
}

func (s *pageService) Get(ctx context.Context, userID, id string) (*model.LandingPage, error) {
	return s.owned(ctx, userID, id)
}

func (s *pageService) ListMine(ctx context.Context, userID string) ([]model.PageSummary, error) {
	if userID == "" {
		return nil, ErrForbidden
	}
	items, err := s.pages.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.PageSummary{}
	}
	return items, nil
}

func (s *pageService) Delete(ctx context.Context, userID, id string) error {
	page, err := s.owned(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.pages.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	s.invalidate(ctx, page.Slug)
	s.log.Info("landing_page_deleted", zap.String("page_id", id), zap.String("user_id", userID))
	return nil
}

func (s *pageService) UpdateSections(ctx context.Context, userID, id string, change SectionChange) (sections.Order, error) {
	page, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	order, err := applySectionChange(page.SectionOrder, change)
	if err != nil {
		return nil, err
	}
	if err := s.pages.UpdateSectionOrder(ctx, id, order); err != nil {
		return nil, fmt.Errorf("update sections: %w", mapNotFound(err))
	}
	s.invalidate(ctx, page.Slug)
	return order, nil
}

func applySectionChange(current sections.Order, change SectionChange) (sections.Order, error) {
	var (
		order sections.Order
		err   error
	)
	switch change.Op {
	case SectionReplace:
		if len(change.Order) == 0 {
			return nil, fmt.Errorf("%w: order is required", ErrInvalidInput)
		}
		order = change.Order.Normalized()
	case SectionMove:
		order, err = current.Move(change.From, change.To)
	case SectionShift:
		order, err = current.Shift(change.ID, change.Delta)
	case SectionToggle:
		order, err = current.Toggle(change.ID, change.Enabled)
	default:
		return nil, fmt.Errorf("%w: unknown operation %q", ErrInvalidInput, change.Op)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return order, nil
}

func (s *pageService) SuggestSlug(ctx context.Context, title, excludeID string) (*slug.Suggestion, error) {
	sug, err := s.slugs.Suggest(ctx, title, excludeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlug, err)
	}
	return sug, nil
}

func (s *pageService) CheckSlug(ctx context.Context, value, excludeID string) (bool, error) {
	if err := slug.Validate(value); err != nil {
		if errors.Is(err, slug.ErrReserved) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", ErrInvalidSlug, err)
	}
	return s.slugs.Available(ctx, value, excludeID)
}

func (s *pageService) PublicPage(ctx context.Context, value string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "PageService.PublicPage")
	defer span.End()
	span.SetAttributes(attribute.String("page.slug", value))

	if len(value) < slug.MinLength || len(value) > 2*slug.MaxLength {
		s.metrics.PublicPage(metrics.OutcomeNotFound)
		return nil, ErrNotFound
	}

	html, ok, err := s.cache.Get(ctx, value)
	if err != nil {
		s.log.Warn("page_cache_get_failed", zap.String("slug", value), zap.Error(err))
	}
	if ok {
		s.metrics.PublicPage(metrics.OutcomeCached)
		return html, nil
	}

	page, err := s.pages.FindPublishedBySlug(ctx, value)
	if err != nil {
		err = mapNotFound(err)
		if errors.Is(err, ErrNotFound) {
			s.metrics.PublicPage(metrics.OutcomeNotFound)
		} else {
			s.metrics.PublicPage(metrics.OutcomeError)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return nil, err
	}

	html, err = s.renderer.RenderBytes(page)
	if err != nil {
		s.metrics.PublicPage(metrics.OutcomeError)
		span.RecordError(err)
		return nil, fmt.Errorf("render page %q: %w", value, err)
	}

	if err := s.cache.Set(ctx, value, html); err != nil {
		s.log.Warn("page_cache_set_failed", zap.String("slug", value), zap.Error(err))
	}
	s.metrics.PublicPage(metrics.OutcomeServed)
	return html, nil
}

func (s *pageService) invalidate(ctx context.Context, slugs ...string) {
	if err := s.cache.Invalidate(ctx, slugs...); err != nil {
		s.log.Warn("page_cache_invalidate_failed", zap.Strings("slugs", slugs), zap.Error(err))
	}
}

func checkTheme(p *model.LandingPage) error {
	if !theme.Valid(p.ThemeColor) {
		return fmt.Errorf("%w: unknown theme color %q", ErrInvalidInput, p.ThemeColor)
	}
	if !theme.Valid(p.PixColor) {
		return fmt.Errorf("%w: unknown pix color %q", ErrInvalidInput, p.PixColor)
	}
	return nil
}
