package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"salespage/internal/cache"
	"salespage/internal/model"
	"salespage/internal/repository"
)

// AdminService backs the administrator dashboard.
type AdminService interface {
	// Dashboard returns the totals, the slice of pages selected by pq and all users.
	Dashboard(ctx context.Context, pq repository.PageQuery) (*model.Dashboard, error)
	SetPublished(ctx context.Context, id string, published bool) error
	DeletePage(ctx context.Context, id string) error
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

type adminService struct {
	pages    repository.LandingPageRepository
	profiles repository.ProfileRepository
	roles    repository.RoleRepository
	stats    repository.StatsRepository
	cache    cache.PageCache
	log      *zap.Logger
}

// NewAdminService constructs an AdminService.
func NewAdminService(
	pages repository.LandingPageRepository,
	profiles repository.ProfileRepository,
	roles repository.RoleRepository,
	stats repository.StatsRepository,
	pageCache cache.PageCache,
	log *zap.Logger,
) AdminService {
	if pageCache == nil {
		pageCache = cache.Noop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &adminService{pages: pages, profiles: profiles, roles: roles, stats: stats, cache: pageCache, log: log}
}

func (s *adminService) Dashboard(ctx context.Context, pq repository.PageQuery) (*model.Dashboard, error) {
	ctx, span := tracer.Start(ctx, "AdminService.Dashboard")
	defer span.End()

	if pq.Limit <= 0 {
		pq.Limit = 100
	}
	if pq.Offset < 0 {
		pq.Offset = 0
	}

	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	total, published, err := s.pages.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count pages: %w", err)
	}
	listed, err := s.pages.List(ctx, pq)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	perOwner, err := s.pages.CountByOwner(ctx)
	if err != nil {
		return nil, fmt.Errorf("count pages per owner: %w", err)
	}
	adminIDs, err := s.roles.UserIDsWithRole(ctx, model.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	customers, err := s.stats.Get(ctx, model.StatCustomersCount)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("read customers count: %w", err)
	}

	emails := make(map[string]string, len(profiles))
	for _, p := range profiles {
		emails[p.ID] = p.Email
	}
	admins := make(map[string]bool, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = true
	}

	d := &model.Dashboard{
		Totals: model.DashboardTotals{
			Users:     len(profiles),
			Pages:     total,
			Published: published,
			Drafts:    total - published,
		},
		CustomersCount: customers,
		Pages:          make([]model.AdminPage, 0, len(listed.Items)),
		Users:          make([]model.AdminUser, 0, len(profiles)),
	}
	for _, p := range listed.Items {
		email, ok := emails[p.UserID]
		if !ok || email == "" {
			email = model.UnknownOwner
		}
		d.Pages = append(d.Pages, model.AdminPage{PageSummary: p, OwnerEmail: email})
	}
	for _, p := range profiles {
		d.Users = append(d.Users, model.AdminUser{
			Profile:   p,
			PageCount: perOwner[p.ID],
			IsAdmin:   admins[p.ID],
		})
	}
	return d, nil
}

func (s *adminService) SetPublished(ctx context.Context, id string, published bool) error {
	if err := checkID(id); err != nil {
		return err
	}
	page, err := s.pages.FindByID(ctx, id)
	if err != nil {
		return mapNotFound(err)
	}
	if err := s.pages.SetPublished(ctx, id, published); err != nil {
		return fmt.Errorf("set published: %w", mapNotFound(err))
	}
	if err := s.cache.Invalidate(ctx, page.Slug); err != nil {
		s.log.Warn("page_cache_invalidate_failed", zap.String("slug", page.Slug), zap.Error(err))
	}
	s.log.Info("landing_page_publish_changed", zap.String("page_id", id), zap.Bool("published", published))
	return nil
}

func (s *adminService) DeletePage(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	page, err := s.pages.FindByID(ctx, id)
	if err != nil {
		return mapNotFound(err)
	}
	if err := s.pages.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	if err := s.cache.Invalidate(ctx, page.Slug); err != nil {
		s.log.Warn("page_cache_invalidate_failed", zap.String("slug", page.Slug), zap.Error(err))
	}
	s.log.Info("landing_page_deleted_by_admin", zap.String("page_id", id))
	return nil
}

func (s *adminService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	return s.roles.HasRole(ctx, userID, model.RoleAdmin)
}
