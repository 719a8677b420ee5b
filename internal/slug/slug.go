// Package slug derives and allocates the URL path segment a page is published under.
//
// Allocation is opportunistic: availability is checked before saving, and the
// database unique constraint on landing_pages.slug is the final arbiter.
package slug

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"salespage/internal/model"
)

const (
	MaxLength = 50
	MinLength = 3

	// suggestionCount is how many alternatives Suggest offers on collision.
	suggestionCount = 3
)

var (
	ErrEmptyTitle = errors.New("title has no characters usable in a slug")
	ErrTooShort   = fmt.Errorf("slug must have at least %d characters", MinLength)
	ErrReserved   = errors.New("slug is reserved")
)

// reserved slugs collide with service routes.
var reserved = map[string]bool{
	"api":     true,
	"admin":   true,
	"docs":    true,
	"health":  true,
	"healthz": true,
	"media":   true,
	"metrics": true,
	"swagger": true,
}

var (
	disallowedDerive = regexp.MustCompile(`[^a-z0-9\s-]`)
	disallowedClean  = regexp.MustCompile(`[^a-z0-9-]`)
	spaceRun         = regexp.MustCompile(`\s+`)
	hyphenRun        = regexp.MustCompile(`-+`)
)

// fold lowercases s, turns unicode spaces into ASCII spaces and strips diacritics.
func fold(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, strings.ToLower(s))

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func truncate(s string) string {
	if len(s) > MaxLength {
		s = s[:MaxLength]
	}
	return strings.Trim(s, "-")
}

// Derive builds a slug candidate from a page title. The result contains only
// lowercase ASCII letters, digits and single hyphens, has no leading or trailing
// hyphen and is at most MaxLength bytes. It may be empty.
func Derive(title string) string {
	s := disallowedDerive.ReplaceAllString(fold(title), "")
	s = spaceRun.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	return truncate(strings.Trim(s, "-"))
}

// Clean sanitizes a slug typed by hand: characters outside [a-z0-9-] are
// dropped after lowercasing and stripping diacritics.
func Clean(input string) string {
	s := disallowedClean.ReplaceAllString(fold(input), "")
	return truncate(hyphenRun.ReplaceAllString(s, "-"))
}

// Validate checks that s is usable as a page slug as typed.
func Validate(s string) error {
	if len(s) < MinLength {
		return ErrTooShort
	}
	if Clean(s) != s {
		return fmt.Errorf("slug %q contains invalid characters", s)
	}
	if reserved[s] {
		return fmt.Errorf("%w: %q", ErrReserved, s)
	}
	return nil
}

// Alternatives returns the variants offered when base is taken: the year, the
// month and year, and a short random suffix.
func Alternatives(base string, now time.Time, random func() string) []string {
	return []string{
		fmt.Sprintf("%s-%d", base, now.Year()),
		fmt.Sprintf("%s-%02d%d", base, int(now.Month()), now.Year()),
		fmt.Sprintf("%s-%s", base, random()),
	}
}

// Fallback appends the unix time in milliseconds to base.
func Fallback(base string, now time.Time) string {
	return fmt.Sprintf("%s-%d", strings.Trim(base, "-"), now.UnixMilli())
}

// RandomSuffix returns four random base36 characters.
func RandomSuffix() string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, 4)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}

// Finder lists the pages whose slug starts with a prefix.
type Finder interface {
	SlugsWithPrefix(ctx context.Context, prefix string) ([]model.SlugRef, error)
}

// Suggestion is the result of Allocator.Suggest. When Available is false, Slug is
// the derived candidate that is taken and Alternatives holds free variants.
type Suggestion struct {
	Slug         string   `json:"slug"`
	Available    bool     `json:"available"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// Allocator proposes and checks slugs against the stored pages.
type Allocator struct {
	finder Finder
	log    *zap.Logger
	now    func() time.Time
	random func() string
}

// Option configures an Allocator.
type Option func(*Allocator)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option { return func(a *Allocator) { a.now = now } }

// WithRandom overrides the random suffix source.
func WithRandom(random func() string) Option { return func(a *Allocator) { a.random = random } }

// WithLogger sets the logger used for lookup failures.
func WithLogger(log *zap.Logger) Option { return func(a *Allocator) { a.log = log } }

func NewAllocator(finder Finder, opts ...Option) *Allocator {
	a := &Allocator{
		finder: finder,
		log:    zap.NewNop(),
		now:    time.Now,
		random: RandomSuffix,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Now returns the allocator's current time.
func (a *Allocator) Now() time.Time { return a.now() }

// Random returns a random suffix from the allocator's source.
func (a *Allocator) Random() string { return a.random() }

// taken returns the slugs starting with prefix that belong to pages other than excludeID.
func (a *Allocator) taken(ctx context.Context, prefix, excludeID string) (map[string]bool, error) {
	refs, err := a.finder.SlugsWithPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(refs))
	for _, r := range refs {
		if excludeID != "" && r.ID == excludeID {
			continue
		}
		out[r.Slug] = true
	}
	return out, nil
}

// Suggest derives a slug from title and checks it. If it is in use by another
// page, reserved or too short, up to three free alternatives are returned. When
// the lookup fails a timestamped slug is returned instead.
func (a *Allocator) Suggest(ctx context.Context, title, excludeID string) (*Suggestion, error) {
	base := Derive(title)
	if base == "" {
		return nil, ErrEmptyTitle
	}

	taken, err := a.taken(ctx, base, excludeID)
	if err != nil {
		a.log.Warn("slug lookup failed, using timestamp fallback", zap.String("base", base), zap.Error(err))
		return &Suggestion{Slug: a.stamp(base, 0), Available: true}, nil
	}

	if !taken[base] && len(base) >= MinLength && !reserved[base] {
		return &Suggestion{Slug: base, Available: true}, nil
	}

	alts := make([]string, 0, suggestionCount)
	for _, alt := range Alternatives(base, a.now(), a.random) {
		if !taken[alt] {
			alts = append(alts, alt)
		}
	}
	for i := 0; len(alts) < suggestionCount; i++ {
		alt := a.stamp(base, i)
		if !taken[alt] && !slices.Contains(alts, alt) {
			alts = append(alts, alt)
		}
	}

	return &Suggestion{Slug: base, Available: false, Alternatives: alts[:suggestionCount]}, nil
}

// stamp appends the current millisecond time in base36, offset by n.
func (a *Allocator) stamp(base string, n int) string {
	return base + "-" + strconv.FormatInt(a.now().UnixMilli()+int64(n), 36)
}

// Available reports whether s is free for the page excludeID (empty when creating).
func (a *Allocator) Available(ctx context.Context, s, excludeID string) (bool, error) {
	if len(s) < MinLength {
		return false, ErrTooShort
	}
	if reserved[s] {
		return false, nil
	}
	taken, err := a.taken(ctx, s, excludeID)
	if err != nil {
		return false, fmt.Errorf("check slug %q: %w", s, err)
	}
	return !taken[s], nil
}
