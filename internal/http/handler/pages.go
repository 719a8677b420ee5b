package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"salespage/internal/http/middleware"
	"salespage/internal/model"
	"salespage/internal/sections"
	"salespage/internal/service"
)

type pageList struct {
	Items []model.PageSummary `json:"items"`
}

type sectionOrderResponse struct {
	SectionOrder sections.Order `json:"section_order"`
}

type sectionChangeRequest struct {
	Op      string         `json:"op" validate:"required,oneof=replace move shift toggle"`
	Order   sections.Order `json:"order"`
	From    int            `json:"from" validate:"gte=0"`
	To      int            `json:"to" validate:"gte=0"`
	ID      sections.ID    `json:"id"`
	Delta   int            `json:"delta"`
	Enabled bool           `json:"enabled"`
}

type sectionInfo struct {
	ID    sections.ID `json:"id"`
	Label string      `json:"label"`
}

type sectionCatalog struct {
	Items []sectionInfo `json:"items"`
}

type slugCheckResponse struct {
	Slug      string `json:"slug"`
	Available bool   `json:"available"`
}

// session returns the user id stored by middleware.Auth.
func session(c *fiber.Ctx) (string, bool) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		return "", false
	}
	return s.UserID, true
}

func unauthorized(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
}

// SectionCatalog godoc
// @Summary  Orderable sections with their editor labels, in default order
// @Tags     pages
// @Produce  json
// @Success  200 {object} sectionCatalog
// @Router   /api/sections [get]
func SectionCatalog() fiber.Handler {
	ids := sections.IDs()
	catalog := sectionCatalog{Items: make([]sectionInfo, 0, len(ids))}
	for _, id := range ids {
		catalog.Items = append(catalog.Items, sectionInfo{ID: id, Label: sections.Label(id)})
	}
	return func(c *fiber.Ctx) error {
		return c.JSON(catalog)
	}
}

// PageDefaults godoc
// @Summary  Default content of a new landing page
// @Tags     pages
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} model.LandingPage
// @Router   /api/pages/defaults [get]
func PageDefaults(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Defaults())
	}
}

// ListMyPages godoc
// @Summary  List the caller's landing pages
// @Tags     pages
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} pageList
// @Failure  401 {object} errorPayload
// @Router   /api/pages [get]
func ListMyPages(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := session(c)
		if !ok {
			return unauthorized(c)
		}
		items, err := svc.ListMine(c.UserContext(), userID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(pageList{Items: items})
	}
}

// CreatePage godoc
// @Summary  Create a landing page
// @Description A taken slug is replaced by a timestamped variant; the response carries the final slug.
// @Tags     pages
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    page body model.LandingPage true "page content"
// @Success  201 {object} model.LandingPage
// @Failure  400 {object} errorPayload
// @Router   /api/pages [post]
func CreatePage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, ok := middleware.SessionFrom(c)
		if !ok {
			return unauthorized(c)
		}
		var in model.LandingPage
		if !parseBody(c, &in) {
			return nil
		}
		page, err := svc.Create(c.UserContext(), s, &in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(page)
	}
}

// GetPage godoc
// @Summary  Get one of the caller's landing pages
// @Tags     pages
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "page id"
// @Success  200 {object} model.LandingPage
// @Failure  404 {object} errorPayload
// @Router   /api/pages/{id} [get]
func GetPage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := session(c)
		if !ok {
			return unauthorized(c)
		}
		page, err := svc.Get(c.UserContext(), userID, param(c, "id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(page)
	}
}

// UpdatePage godoc
// @Summary  Overwrite a landing page
// @Tags     pages
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id   path string            true "page id"
// @Param    page body model.LandingPage true "page content"
// @Success  200 {object} model.LandingPage
// @Failure  409 {object} errorPayload
// @Router   /api/pages/{id} [put]
func UpdatePage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := session(c)
		if !ok {
			return unauthorized(c)
		}
		var in model.LandingPage
		if !parseBody(c, &in) {
			return nil
		}
		page, err := svc.Update(c.UserContext(), userID, param(c, "id"), &in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(page)
	}
}

// DeletePage godoc
// @Summary  Delete one of the caller's landing pages
// @Tags     pages
// @Security BearerAuth
// @Param    id path string true "page id"
// @Success  204
// @Failure  404 {object} errorPayload
// @Router   /api/pages/{id} [delete]
func DeletePage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := session(c)
		if !ok {
			return unauthorized(c)
		}
		if err := svc.Delete(c.UserContext(), userID, param(c, "id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UpdateSections godoc
// @Summary  Reorder, show or hide page sections
// @Tags     pages
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id     path string               true "page id"
// @Param    change body sectionChangeRequest true "section edit"
// @Success  200 {object} sectionOrderResponse
// @Router   /api/pages/{id}/sections [patch]
func UpdateSections(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := session(c)
		if !ok {
			return unauthorized(c)
		}
		var req sectionChangeRequest
		if !parseBody(c, &req) {
			return nil
		}
		order, err := svc.UpdateSections(c.UserContext(), userID, param(c, "id"), service.SectionChange(req))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(sectionOrderResponse{SectionOrder: order})
	}
}

// SuggestSlug godoc
// @Summary  Propose a free slug for a title
// @Tags     slugs
// @Produce  json
// @Security BearerAuth
// @Param    title      query string true  "hero title"
// @Param    exclude_id query string false "page being edited"
// @Success  200 {object} slug.Suggestion
// @Router   /api/slugs/suggest [get]
func SuggestSlug(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		title := query(c, "title")
		if title == "" {
			return writeError(c, fiber.StatusBadRequest, "TITLE_REQUIRED", "title is required")
		}
		sug, err := svc.SuggestSlug(c.UserContext(), title, query(c, "exclude_id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(sug)
	}
}

// CheckSlug godoc
// @Summary  Check whether a slug can be used
// @Tags     slugs
// @Produce  json
// @Security BearerAuth
// @Param    slug       query string true  "candidate slug"
// @Param    exclude_id query string false "page being edited"
// @Success  200 {object} slugCheckResponse
// @Failure  400 {object} errorPayload
// @Router   /api/slugs/check [get]
func CheckSlug(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		value := query(c, "slug")
		ok, err := svc.CheckSlug(c.UserContext(), value, query(c, "exclude_id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(slugCheckResponse{Slug: value, Available: ok})
	}
}

// PublicPage godoc
// @Summary  Render a published landing page
// @Description Unknown or unpublished slugs redirect to the site root.
// @Tags     public
// @Produce  html
// @Param    slug path string true "page slug"
// @Success  200 {string} string "HTML document"
// @Success  302
// @Router   /{slug} [get]
func PublicPage(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		html, err := svc.PublicPage(c.UserContext(), param(c, "slug"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return c.Redirect("/", fiber.StatusFound)
			}
			return err
		}
		c.Set(fiber.HeaderCacheControl, "public, max-age=60")
		c.Type("html", "utf-8")
		return c.Send(html)
	}
}
