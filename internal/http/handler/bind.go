package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"salespage/internal/repository"
)

var validate = validator.New()

// param and query copy the value out of the request buffer, which fasthttp
// reuses once the handler returns. Services keep these strings in spans.
func param(c *fiber.Ctx, name string) string { return utils.CopyString(c.Params(name)) }

func query(c *fiber.Ctx, name string) string { return utils.CopyString(c.Query(name)) }

// parseBody decodes the JSON body into dst and validates its struct tags.
// The bool result is false when the 400 response has already been written.
func parseBody(c *fiber.Ctx, dst any) bool {
	if err := c.BodyParser(dst); err != nil {
		_ = writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed JSON body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		_ = writeError(c, fiber.StatusBadRequest, "INVALID_BODY", validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid body"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s: failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}

// pageQuery reads limit & offset query parameters. The bool result is false
// when an error response has already been written.
func pageQuery(c *fiber.Ctx, defaultLimit int) (repository.PageQuery, bool) {
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 0 {
		_ = writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		return repository.PageQuery{}, false
	}
	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil || offset < 0 {
		_ = writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		return repository.PageQuery{}, false
	}
	return repository.PageQuery{Limit: limit, Offset: offset}, true
}
