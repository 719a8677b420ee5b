package handler

import (
	"github.com/gofiber/fiber/v2"

	"salespage/internal/http/middleware"
	"salespage/internal/service"
)

type publishRequest struct {
	IsPublished *bool `json:"is_published" validate:"required"`
}

type customersCount struct {
	CustomersCount *int `json:"customers_count" validate:"required,gte=0"`
}

type meResponse struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	IsAdmin  bool   `json:"is_admin"`
}

// Me godoc
// @Summary  Current user and role
// @Tags     auth
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} meResponse
// @Router   /api/me [get]
func Me(svc service.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, ok := middleware.SessionFrom(c)
		if !ok {
			return unauthorized(c)
		}
		admin, err := svc.IsAdmin(c.UserContext(), s.UserID)
		if err != nil {
			return err
		}
		return c.JSON(meResponse{UserID: s.UserID, Email: s.Email, FullName: s.FullName, IsAdmin: admin})
	}
}

// AdminDashboard godoc
// @Summary  Totals, pages and users for administrators
// @Tags     admin
// @Produce  json
// @Security BearerAuth
// @Param    limit  query int false "pages per response" default(100)
// @Param    offset query int false "pages to skip"      default(0)
// @Success  200 {object} model.Dashboard
// @Failure  403 {object} errorPayload
// @Router   /api/admin/dashboard [get]
func AdminDashboard(svc service.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pq, ok := pageQuery(c, 100)
		if !ok {
			return nil
		}
		d, err := svc.Dashboard(c.UserContext(), pq)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(d)
	}
}

// SetPublished godoc
// @Summary  Publish or unpublish any landing page
// @Tags     admin
// @Accept   json
// @Security BearerAuth
// @Param    id   path string         true "page id"
// @Param    body body publishRequest true "publish flag"
// @Success  204
// @Failure  404 {object} errorPayload
// @Router   /api/admin/pages/{id}/publish [put]
func SetPublished(svc service.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req publishRequest
		if !parseBody(c, &req) {
			return nil
		}
		if err := svc.SetPublished(c.UserContext(), param(c, "id"), *req.IsPublished); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// AdminDeletePage godoc
// @Summary  Delete any landing page
// @Tags     admin
// @Security BearerAuth
// @Param    id path string true "page id"
// @Success  204
// @Failure  404 {object} errorPayload
// @Router   /api/admin/pages/{id} [delete]
func AdminDeletePage(svc service.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeletePage(c.UserContext(), param(c, "id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GetCustomersCount godoc
// @Summary  Public customer counter shown on the home page
// @Tags     stats
// @Produce  json
// @Success  200 {object} customersCount
// @Router   /api/stats/customers [get]
func GetCustomersCount(svc service.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.CustomersCount(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(customersCount{CustomersCount: &n})
	}
}

// SetCustomersCount godoc
// @Summary  Set the public customer counter
// @Tags     admin
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body customersCount true "new value"
// @Success  200 {object} customersCount
// @Failure  400 {object} errorPayload
// @Router   /api/admin/stats/customers [put]
func SetCustomersCount(svc service.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req customersCount
		if !parseBody(c, &req) {
			return nil
		}
		if err := svc.SetCustomersCount(c.UserContext(), *req.CustomersCount); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(req)
	}
}
