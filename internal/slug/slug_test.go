package slug

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salespage/internal/model"
)

var slugShape = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type fakeFinder struct {
	refs []model.SlugRef
	err  error
}

func (f fakeFinder) SlugsWithPrefix(_ context.Context, prefix string) ([]model.SlugRef, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.SlugRef
	for _, r := range f.refs {
		if strings.HasPrefix(r.Slug, prefix) {
			out = append(out, r)
		}
	}
	return out, nil
}

var fixedNow = time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)

func newTestAllocator(f Finder) *Allocator {
	return NewAllocator(f,
		WithClock(func() time.Time { return fixedNow }),
		WithRandom(func() string { return "x7k2" }),
	)
}

func TestDerive(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Créditos Lovable!!", "creditos-lovable"},
		{"CRÉDITOS LOVABLE COM BÔNUS EXCLUSIVO", "creditos-lovable-com-bonus-exclusivo"},
		{"  --Olá   mundo--  ", "ola-mundo"},
		{"a - - b", "a-b"},
		{"Ação Rápida", "acao-rapida"},
		{"ção 100% ✨ grátis", "cao-100-gratis"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.title))
		})
	}
}

func TestDerive_Shape(t *testing.T) {
	inputs := []string{
		"Créditos Lovable!!",
		strings.Repeat("palavra ", 20),
		strings.Repeat("a", 49) + " b c",
		"Über-Straße  ---  Ñandú",
	}

	for _, in := range inputs {
		got := Derive(in)
		assert.LessOrEqual(t, len(got), MaxLength, in)
		assert.Regexp(t, slugShape, got, in)
	}
}

func TestClean(t *testing.T) {
	assert.Equal(t, "minhapagina", Clean("Minha Página"))
	assert.Equal(t, "promo-2026", Clean("promo--2026!"))
	assert.Equal(t, "abc", Clean("-abc-"))
	assert.Len(t, Clean(strings.Repeat("z", 80)), MaxLength)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("creditos-lovable"))
	assert.ErrorIs(t, Validate("ab"), ErrTooShort)
	assert.Error(t, Validate("Upper"))
	assert.Error(t, Validate("-abc"))
	assert.ErrorIs(t, Validate("metrics"), ErrReserved)
}

func TestAlternatives(t *testing.T) {
	got := Alternatives("promo", fixedNow, func() string { return "ab12" })

	assert.Equal(t, []string{"promo-2026", "promo-032026", "promo-ab12"}, got)
}

func TestFallback(t *testing.T) {
	assert.Equal(t, "promo-1772704800000", Fallback("promo", fixedNow))
}

func TestRandomSuffix(t *testing.T) {
	for i := 0; i < 20; i++ {
		assert.Regexp(t, `^[0-9a-z]{4}$`, RandomSuffix())
	}
}

func TestAllocator_Suggest_Free(t *testing.T) {
	a := newTestAllocator(fakeFinder{refs: []model.SlugRef{{ID: "1", Slug: "creditos-lovable-2025"}}})

	got, err := a.Suggest(context.Background(), "Créditos Lovable", "")

	require.NoError(t, err)
	assert.Equal(t, &Suggestion{Slug: "creditos-lovable", Available: true}, got)
}

func TestAllocator_Suggest_OwnSlugIsFree(t *testing.T) {
	a := newTestAllocator(fakeFinder{refs: []model.SlugRef{{ID: "page-1", Slug: "promo"}}})

	got, err := a.Suggest(context.Background(), "Promo", "page-1")

	require.NoError(t, err)
	assert.True(t, got.Available)
	assert.Equal(t, "promo", got.Slug)
}

func TestAllocator_Suggest_Collision(t *testing.T) {
	a := newTestAllocator(fakeFinder{refs: []model.SlugRef{
		{ID: "1", Slug: "promo"},
		{ID: "2", Slug: "promo-2026"},
	}})

	got, err := a.Suggest(context.Background(), "Promo", "")

	require.NoError(t, err)
	assert.False(t, got.Available)
	assert.Equal(t, "promo", got.Slug)
	assert.Equal(t, []string{"promo-032026", "promo-x7k2", "promo-mmdao1s0"}, got.Alternatives)
}

func TestAllocator_Suggest_AlwaysThreeDistinct(t *testing.T) {
	a := newTestAllocator(fakeFinder{refs: []model.SlugRef{
		{ID: "1", Slug: "promo"},
		{ID: "2", Slug: "promo-2026"},
		{ID: "3", Slug: "promo-032026"},
		{ID: "4", Slug: "promo-x7k2"},
	}})

	got, err := a.Suggest(context.Background(), "Promo", "")

	require.NoError(t, err)
	require.Len(t, got.Alternatives, 3)
	assert.NotEqual(t, got.Alternatives[0], got.Alternatives[1])
	assert.NotEqual(t, got.Alternatives[1], got.Alternatives[2])
	for _, alt := range got.Alternatives {
		assert.True(t, strings.HasPrefix(alt, "promo-"))
		assert.Regexp(t, slugShape, alt)
	}
}

func TestAllocator_Suggest_ReservedOrShort(t *testing.T) {
	a := newTestAllocator(fakeFinder{})

	got, err := a.Suggest(context.Background(), "Metrics", "")
	require.NoError(t, err)
	assert.False(t, got.Available)
	assert.Len(t, got.Alternatives, 3)

	got, err = a.Suggest(context.Background(), "Oi", "")
	require.NoError(t, err)
	assert.False(t, got.Available)
	assert.Equal(t, "oi-2026", got.Alternatives[0])
}

func TestAllocator_Suggest_EmptyTitle(t *testing.T) {
	a := newTestAllocator(fakeFinder{})

	_, err := a.Suggest(context.Background(), "  ¿¡  ", "")

	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestAllocator_Suggest_LookupFailureFallsBack(t *testing.T) {
	a := newTestAllocator(fakeFinder{err: errors.New("db down")})

	got, err := a.Suggest(context.Background(), "Promo", "")

	require.NoError(t, err)
	assert.True(t, got.Available)
	assert.Equal(t, "promo-mmdao1s0", got.Slug)
}

func TestAllocator_Available(t *testing.T) {
	a := newTestAllocator(fakeFinder{refs: []model.SlugRef{{ID: "1", Slug: "promo"}}})
	ctx := context.Background()

	ok, err := a.Available(ctx, "promo", "")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = a.Available(ctx, "promo", "1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.Available(ctx, "promo-2", "")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.Available(ctx, "swagger", "")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = a.Available(ctx, "ab", "")
	assert.ErrorIs(t, err, ErrTooShort)
}

func TestAllocator_Available_LookupError(t *testing.T) {
	a := newTestAllocator(fakeFinder{err: errors.New("db down")})

	_, err := a.Available(context.Background(), "promo", "")

	assert.Error(t, err)
}
