package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"salespage/internal/content"
	"salespage/internal/model"
	"salespage/internal/repository"
	"salespage/internal/sections"
)

// LandingPagePostgres is a PostgreSQL implementation of repository.LandingPageRepository.
// Content lists and the section order are stored as jsonb and decoded leniently on read.
type LandingPagePostgres struct {
	db *sql.DB
}

// NewLandingPagePostgres creates a new LandingPagePostgres repository.
func NewLandingPagePostgres(db *sql.DB) *LandingPagePostgres {
	return &LandingPagePostgres{db: db}
}

var _ repository.LandingPageRepository = (*LandingPagePostgres)(nil)

// editableColumns are written by both insert and update, in pageArgs order.
var editableColumns = []string{
	"slug",
	"hero_title", "hero_subtitle", "hero_badge", "hero_image_url",
	"offer_text", "bonus_text", "delivery_time", "cta_text",
	"whatsapp_number", "channel_url", "channel_name",
	"is_published", "meta_title", "meta_description",
	"about_name", "about_title", "about_description", "about_image_url", "about_highlights",
	"why_buy_items", "how_to_steps", "benefits_receive", "security_items",
	"pricing_plans", "testimonials", "faq_items",
	"pix_enabled", "pix_key", "pix_name", "pix_color", "donation_title",
	"theme_color", "section_order",
}

var (
	pageColumns   = "id, user_id, " + strings.Join(editableColumns, ", ") + ", created_at, updated_at"
	summaryColumn = "id, user_id, slug, hero_title, is_published, created_at, updated_at"
)

func placeholders(from, n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(ph, ", ")
}

func setClause(cols []string, from int) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprintf("%s = $%d", c, from+i)
	}
	return strings.Join(parts, ", ")
}

var (
	insertPageSQL = fmt.Sprintf(
		`INSERT INTO landing_pages (%s) VALUES (%s) RETURNING %s`,
		pageColumns, placeholders(1, len(editableColumns)+4), pageColumns,
	)
	updatePageSQL = fmt.Sprintf(
		`UPDATE landing_pages SET %s, updated_at = $%d WHERE id = $1 RETURNING %s`,
		setClause(editableColumns, 2), len(editableColumns)+2, pageColumns,
	)
)

// jsonList encodes a list column, storing nil as an empty array.
func jsonList(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	if string(b) == "null" {
		return "[]", nil
	}
	return string(b), nil
}

// pageArgs returns the values of editableColumns for p.
func pageArgs(p *model.LandingPage) ([]any, error) {
	lists := []struct {
		name  string
		value any
	}{
		{"about_highlights", p.AboutHighlights},
		{"why_buy_items", p.WhyBuyItems},
		{"how_to_steps", p.HowToSteps},
		{"benefits_receive", p.BenefitsReceive},
		{"security_items", p.SecurityItems},
		{"pricing_plans", p.PricingPlans},
		{"testimonials", p.Testimonials},
		{"faq_items", p.FAQItems},
		{"section_order", p.SectionOrder},
	}
	enc := make([]string, len(lists))
	for i, l := range lists {
		s, err := jsonList(l.value)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", l.name, err)
		}
		enc[i] = s
	}

	return []any{
		p.Slug,
		p.HeroTitle, p.HeroSubtitle, p.HeroBadge, p.HeroImageURL,
		p.OfferText, p.BonusText, p.DeliveryTime, p.CTAText,
		p.WhatsAppNumber, p.ChannelURL, p.ChannelName,
		p.IsPublished, p.MetaTitle, p.MetaDescription,
		p.AboutName, p.AboutTitle, p.AboutDescription, p.AboutImageURL, enc[0],
		enc[1], enc[2], enc[3], enc[4],
		enc[5], enc[6], enc[7],
		p.PixEnabled, p.PixKey, p.PixName, p.PixColor, p.DonationTitle,
		p.ThemeColor, enc[8],
	}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPage(row scanner) (*model.LandingPage, error) {
	var (
		p                                             model.LandingPage
		highlights, whyBuy, howTo, benefits, security []byte
		pricing, testimonials, faq, order             []byte
	)
	if err := row.Scan(
		&p.ID, &p.UserID,
		&p.Slug,
		&p.HeroTitle, &p.HeroSubtitle, &p.HeroBadge, &p.HeroImageURL,
		&p.OfferText, &p.BonusText, &p.DeliveryTime, &p.CTAText,
		&p.WhatsAppNumber, &p.ChannelURL, &p.ChannelName,
		&p.IsPublished, &p.MetaTitle, &p.MetaDescription,
		&p.AboutName, &p.AboutTitle, &p.AboutDescription, &p.AboutImageURL, &highlights,
		&whyBuy, &howTo, &benefits, &security,
		&pricing, &testimonials, &faq,
		&p.PixEnabled, &p.PixKey, &p.PixName, &p.PixColor, &p.DonationTitle,
		&p.ThemeColor, &order,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.AboutHighlights = content.DecodeAboutHighlights(highlights)
	p.WhyBuyItems = content.DecodeWhyBuyItems(whyBuy)
	p.HowToSteps = content.DecodeHowToSteps(howTo)
	p.BenefitsReceive = content.DecodeStrings(benefits)
	p.SecurityItems = content.DecodeStrings(security)
	p.PricingPlans = content.DecodePricingPlans(pricing)
	p.Testimonials = content.DecodeTestimonials(testimonials)
	p.FAQItems = content.DecodeFAQItems(faq)
	p.SectionOrder = sections.Normalize(order)
	return &p, nil
}

func scanSummary(row scanner) (model.PageSummary, error) {
	var s model.PageSummary
	err := row.Scan(&s.ID, &s.UserID, &s.Slug, &s.HeroTitle, &s.IsPublished, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func mapWriteError(err error) error {
	if IsUniqueViolation(err) {
		return fmt.Errorf("%w: %v", repository.ErrSlugConflict, err)
	}
	return err
}

// Create inserts a new page row and returns the stored record.
func (r *LandingPagePostgres) Create(ctx context.Context, page *model.LandingPage) (*model.LandingPage, error) {
	fields, err := pageArgs(page)
	if err != nil {
		return nil, err
	}
	args := append([]any{page.ID, page.UserID}, fields...)
	args = append(args, page.CreatedAt, page.UpdatedAt)

	out, err := scanPage(r.db.QueryRowContext(ctx, insertPageSQL, args...))
	if err != nil {
		return nil, mapWriteError(err)
	}
	return out, nil
}

// Update overwrites the editable columns of an existing page.
func (r *LandingPagePostgres) Update(ctx context.Context, page *model.LandingPage) (*model.LandingPage, error) {
	fields, err := pageArgs(page)
	if err != nil {
		return nil, err
	}
	args := append([]any{page.ID}, fields...)
	args = append(args, page.UpdatedAt)

	out, err := scanPage(r.db.QueryRowContext(ctx, updatePageSQL, args...))
	if err != nil {
		return nil, mapWriteError(err)
	}
	return out, nil
}

// FindByID fetches a single page by its ID.
func (r *LandingPagePostgres) FindByID(ctx context.Context, id string) (*model.LandingPage, error) {
	q := `SELECT ` + pageColumns + ` FROM landing_pages WHERE id = $1`
	return scanPage(r.db.QueryRowContext(ctx, q, id))
}

// FindPublishedBySlug fetches a published page by its slug.
func (r *LandingPagePostgres) FindPublishedBySlug(ctx context.Context, slug string) (*model.LandingPage, error) {
	q := `SELECT ` + pageColumns + ` FROM landing_pages WHERE slug = $1 AND is_published = TRUE`
	return scanPage(r.db.QueryRowContext(ctx, q, slug))
}

func (r *LandingPagePostgres) querySummaries(ctx context.Context, q string, args ...any) ([]model.PageSummary, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.PageSummary, 0)
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ListByOwner returns the owner's pages, newest first.
func (r *LandingPagePostgres) ListByOwner(ctx context.Context, userID string) ([]model.PageSummary, error) {
	q := `SELECT ` + summaryColumn + ` FROM landing_pages WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	return r.querySummaries(ctx, q, userID)
}

// List returns pages using LIMIT/OFFSET pagination and a total count.
func (r *LandingPagePostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.PageSummary], error) {
	const qCount = `SELECT COUNT(*) FROM landing_pages`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT ` + summaryColumn + ` FROM landing_pages ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	items, err := r.querySummaries(ctx, q, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}

	return &repository.PageResult[model.PageSummary]{
		Items: items,
		Total: total,
	}, nil
}

// Counts returns the total and published page counts.
func (r *LandingPagePostgres) Counts(ctx context.Context) (int, int, error) {
	const q = `SELECT COUNT(*), COUNT(*) FILTER (WHERE is_published) FROM landing_pages`
	var total, published int
	if err := r.db.QueryRowContext(ctx, q).Scan(&total, &published); err != nil {
		return 0, 0, err
	}
	return total, published, nil
}

// CountByOwner returns page counts grouped by owner.
func (r *LandingPagePostgres) CountByOwner(ctx context.Context) (map[string]int, error) {
	const q = `SELECT user_id, COUNT(*) FROM landing_pages GROUP BY user_id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var (
			userID string
			n      int
		)
		if err := rows.Scan(&userID, &n); err != nil {
			return nil, err
		}
		out[userID] = n
	}
	return out, rows.Err()
}

// escapeLike escapes LIKE wildcards so prefix matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// SlugsWithPrefix lists id/slug pairs whose slug starts with prefix.
func (r *LandingPagePostgres) SlugsWithPrefix(ctx context.Context, prefix string) ([]model.SlugRef, error) {
	const q = `SELECT id, slug FROM landing_pages WHERE slug LIKE $1 ORDER BY slug`
	rows, err := r.db.QueryContext(ctx, q, escapeLike(prefix)+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.SlugRef, 0)
	for rows.Next() {
		var ref model.SlugRef
		if err := rows.Scan(&ref.ID, &ref.Slug); err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, rows.Err()
}

func (r *LandingPagePostgres) execOne(ctx context.Context, q string, args ...any) error {
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SetPublished flips the publication flag of a page.
func (r *LandingPagePostgres) SetPublished(ctx context.Context, id string, published bool) error {
	const q = `UPDATE landing_pages SET is_published = $2, updated_at = now() WHERE id = $1`
	return r.execOne(ctx, q, id, published)
}

// UpdateSectionOrder stores a new section order for a page.
func (r *LandingPagePostgres) UpdateSectionOrder(ctx context.Context, id string, order sections.Order) error {
	enc, err := jsonList(order)
	if err != nil {
		return fmt.Errorf("encode section_order: %w", err)
	}
	const q = `UPDATE landing_pages SET section_order = $2, updated_at = now() WHERE id = $1`
	return r.execOne(ctx, q, id, enc)
}

// Delete removes a page by ID. It does not return an error if the row does not exist.
func (r *LandingPagePostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM landing_pages WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
