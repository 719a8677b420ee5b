package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"salespage/internal/auth"
	"salespage/internal/http/middleware"
	"salespage/internal/model"
	"salespage/internal/sections"
	"salespage/internal/service"
	serviceMocks "salespage/internal/service/mocks"
	"salespage/internal/slug"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	ownerID = "5f1d7a52-3c0e-4f8b-9a51-0d6a2b7e4c11"
	pageID  = "c2b6e1f4-7a3d-4e59-8c10-3f9d2a6b5e33"
)

func owner() *auth.Session {
	return &auth.Session{UserID: ownerID, Email: "ana@example.com", FullName: "Ana"}
}

// newApp returns an app using the production error handler, with s stored as
// the request session when non-nil.
func newApp(s *auth.Session) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(middleware.RequestID())
	if s != nil {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals(middleware.SessionLocalKey, s)
			return c.Next()
		})
	}
	return app
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var res errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListMyPages(t *testing.T) {
	mockSvc := new(serviceMocks.MockPageService)
	app := newApp(owner())
	app.Get("/api/pages", ListMyPages(mockSvc))

	t.Run("success", func(t *testing.T) {
		items := []model.PageSummary{{ID: pageID, UserID: ownerID, Slug: "loja-da-ana"}}
		mockSvc.On("ListMine", mock.Anything, ownerID).Return(items, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/pages", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result pageList
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, "loja-da-ana", result.Items[0].Slug)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("ListMine", mock.Anything, ownerID).Return(nil, errors.New("db error")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/pages", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "INTERNAL_ERROR", res.Error.Code)
		assert.NotEmpty(t, res.RequestID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no session", func(t *testing.T) {
		anon := newApp(nil)
		anon.Get("/api/pages", ListMyPages(mockSvc))

		resp, _ := anon.Test(httptest.NewRequest(http.MethodGet, "/api/pages", nil))

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp).Error.Code)
	})
}

func TestCreatePage(t *testing.T) {
	mockSvc := new(serviceMocks.MockPageService)
	app := newApp(owner())
	app.Post("/api/pages", CreatePage(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, owner(), mock.MatchedBy(func(p *model.LandingPage) bool {
			return p.HeroTitle == "Loja da Ana"
		})).Return(&model.LandingPage{ID: pageID, Slug: "loja-da-ana-1772704800000"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/pages", map[string]any{"hero_title": "Loja da Ana", "slug": "loja-da-ana"}))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var result model.LandingPage
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "loja-da-ana-1772704800000", result.Slug)
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/pages", "{not json"))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})

	t.Run("invalid slug", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, owner(), mock.Anything).
			Return(nil, errors.Join(service.ErrInvalidSlug, errors.New("too short"))).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/pages", map[string]any{"slug": "ab"}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_SLUG", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetUpdateDeletePage(t *testing.T) {
	mockSvc := new(serviceMocks.MockPageService)
	app := newApp(owner())
	app.Get("/api/pages/:id", GetPage(mockSvc))
	app.Put("/api/pages/:id", UpdatePage(mockSvc))
	app.Delete("/api/pages/:id", DeletePage(mockSvc))

	t.Run("get", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, ownerID, pageID).Return(&model.LandingPage{ID: pageID}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/pages/"+pageID, nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("get someone else's page", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, ownerID, "other").Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/pages/other", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("update with taken slug", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, ownerID, pageID, mock.Anything).Return(nil, service.ErrSlugTaken).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/api/pages/"+pageID, map[string]any{"slug": "loja-do-bruno"}))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "SLUG_TAKEN", decodeError(t, resp).Error.Code)
	})

	t.Run("update bad theme", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, ownerID, pageID, mock.Anything).
			Return(nil, errors.Join(service.ErrInvalidInput, errors.New("unknown theme"))).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/api/pages/"+pageID, map[string]any{"theme_color": "black"}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_INPUT", decodeError(t, resp).Error.Code)
	})

	t.Run("delete", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, ownerID, pageID).Return(nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/api/pages/"+pageID, nil))

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	mockSvc.AssertExpectations(t)
}

func TestUpdateSections(t *testing.T) {
	mockSvc := new(serviceMocks.MockPageService)
	app := newApp(owner())
	app.Patch("/api/pages/:id/sections", UpdateSections(mockSvc))

	t.Run("toggle", func(t *testing.T) {
		want := service.SectionChange{Op: service.SectionToggle, ID: sections.FAQ, Enabled: false}
		order := sections.Default()
		mockSvc.On("UpdateSections", mock.Anything, ownerID, pageID, want).Return(order, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPatch, "/api/pages/"+pageID+"/sections",
			map[string]any{"op": "toggle", "id": "faq", "enabled": false}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result sectionOrderResponse
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, order, result.SectionOrder)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown op", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPatch, "/api/pages/"+pageID+"/sections", map[string]any{"op": "explode"}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "INVALID_BODY", res.Error.Code)
		assert.Contains(t, res.Error.Message, "oneof")
	})
}

func TestSlugEndpoints(t *testing.T) {
	mockSvc := new(serviceMocks.MockPageService)
	app := newApp(owner())
	app.Get("/api/slugs/suggest", SuggestSlug(mockSvc))
	app.Get("/api/slugs/check", CheckSlug(mockSvc))

	t.Run("suggest", func(t *testing.T) {
		sug := &slug.Suggestion{Slug: "loja-da-ana-2", Available: true}
		mockSvc.On("SuggestSlug", mock.Anything, "Loja da Ana", pageID).Return(sug, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/slugs/suggest?title=Loja%20da%20Ana&exclude_id="+pageID, nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result slug.Suggestion
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "loja-da-ana-2", result.Slug)
	})

	t.Run("suggest without title", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/slugs/suggest", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "TITLE_REQUIRED", decodeError(t, resp).Error.Code)
	})

	t.Run("check taken", func(t *testing.T) {
		mockSvc.On("CheckSlug", mock.Anything, "loja-da-ana", "").Return(false, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/slugs/check?slug=loja-da-ana", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result slugCheckResponse
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, slugCheckResponse{Slug: "loja-da-ana", Available: false}, result)
	})

	t.Run("check malformed", func(t *testing.T) {
		mockSvc.On("CheckSlug", mock.Anything, "A B", "").Return(false, service.ErrInvalidSlug).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/slugs/check?slug=A+B", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_SLUG", decodeError(t, resp).Error.Code)
	})

	mockSvc.AssertExpectations(t)
}

func TestSectionCatalog(t *testing.T) {
	app := newApp(nil)
	app.Get("/api/sections", SectionCatalog())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/sections", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got sectionCatalog
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got.Items, len(sections.IDs()))
	assert.Equal(t, sectionInfo{ID: sections.Pricing, Label: "Tabela de Preços"}, got.Items[0])
	assert.Equal(t, sectionInfo{ID: sections.Pix, Label: "Doações PIX"}, got.Items[len(got.Items)-1])
}

func TestPublicPage(t *testing.T) {
	mockSvc := new(serviceMocks.MockPageService)
	app := newApp(nil)
	app.Get("/:slug", PublicPage(mockSvc))

	t.Run("published", func(t *testing.T) {
		mockSvc.On("PublicPage", mock.Anything, "loja-da-ana").Return([]byte("<!DOCTYPE html><title>Loja</title>"), nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/loja-da-ana", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "<title>Loja</title>")
	})

	t.Run("unknown or unpublished redirects home", func(t *testing.T) {
		mockSvc.On("PublicPage", mock.Anything, "rascunho").Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/rascunho", nil))

		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get("Location"))
	})

	t.Run("slug outlives the request", func(t *testing.T) {
		var got string
		mockSvc.On("PublicPage", mock.Anything, "loja-aaaa").Run(func(args mock.Arguments) {
			got = args.String(1)
		}).Return([]byte("<p>a</p>"), nil).Once()
		mockSvc.On("PublicPage", mock.Anything, "loja-bbbb").Return([]byte("<p>b</p>"), nil).Once()

		_, _ = app.Test(httptest.NewRequest(http.MethodGet, "/loja-aaaa", nil))
		_, _ = app.Test(httptest.NewRequest(http.MethodGet, "/loja-bbbb", nil))

		assert.Equal(t, "loja-aaaa", got)
	})

	t.Run("render failure", func(t *testing.T) {
		mockSvc.On("PublicPage", mock.Anything, "quebrada").Return(nil, errors.New("template error")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/quebrada", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "INTERNAL_ERROR", decodeError(t, resp).Error.Code)
	})

	mockSvc.AssertExpectations(t)
}

type stubVerifier map[string]*auth.Session

func (v stubVerifier) Verify(_ context.Context, token string) (*auth.Session, error) {
	if s, ok := v[token]; ok {
		return s, nil
	}
	return nil, auth.ErrInvalidToken
}

func TestRouting(t *testing.T) {
	pages := new(serviceMocks.MockPageService)
	images := new(serviceMocks.MockImageService)
	admin := new(serviceMocks.MockAdminService)
	stats := new(serviceMocks.MockStatsService)

	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})
	app.Use(middleware.RequestID())

	RegisterRoutes(app, Deps{
		Pages:  pages,
		Images: images,
		Admin:  admin,
		Stats:  stats,
		Verifier: stubVerifier{
			"owner-token": owner(),
			"admin-token": {UserID: "admin-1"},
		},
	})

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent/deeper", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		// Health endpoint only allows GET
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})

	t.Run("swagger doc ignores request host", func(t *testing.T) {
		for _, host := range []string{"a.example.com", "b.example.com"} {
			req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
			req.Host = host
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			var doc struct {
				Host string `json:"host"`
				Info struct {
					Title string `json:"title"`
				} `json:"info"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
			assert.Empty(t, doc.Host)
			assert.Equal(t, "Landing Page Builder API", doc.Info.Title)
		}
	})

	t.Run("section catalog is public", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/sections", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "no-store", resp.Header.Get(fiber.HeaderCacheControl))
	})

	t.Run("editor api requires a token", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/pages", nil))

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp).Error.Code)
		assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
	})

	t.Run("editor api with a token", func(t *testing.T) {
		pages.On("ListMine", mock.Anything, ownerID).Return([]model.PageSummary{}, nil).Once()
		req := httptest.NewRequest(http.MethodGet, "/api/pages", nil)
		req.Header.Set("Authorization", "Bearer owner-token")

		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("defaults route is not taken for an id", func(t *testing.T) {
		pages.On("Defaults").Return(model.NewDefaultPage()).Once()
		req := httptest.NewRequest(http.MethodGet, "/api/pages/defaults", nil)
		req.Header.Set("Authorization", "Bearer owner-token")

		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("admin api rejects owners", func(t *testing.T) {
		admin.On("IsAdmin", mock.Anything, ownerID).Return(false, nil).Once()
		req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
		req.Header.Set("Authorization", "Bearer owner-token")

		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "FORBIDDEN", decodeError(t, resp).Error.Code)
	})

	t.Run("admin api for admins", func(t *testing.T) {
		admin.On("IsAdmin", mock.Anything, "admin-1").Return(true, nil).Once()
		admin.On("Dashboard", mock.Anything, mock.Anything).Return(&model.Dashboard{}, nil).Once()
		req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
		req.Header.Set("Authorization", "Bearer admin-token")

		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("public counter needs no token", func(t *testing.T) {
		stats.On("CustomersCount", mock.Anything).Return(1500, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/stats/customers", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]int
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, 1500, body["customers_count"])
	})

	t.Run("single segment falls through to the public page", func(t *testing.T) {
		pages.On("PublicPage", mock.Anything, "non-existent").Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/non-existent", nil))

		assert.Equal(t, http.StatusFound, resp.StatusCode)
	})

	pages.AssertExpectations(t)
	admin.AssertExpectations(t)
	stats.AssertExpectations(t)
}
