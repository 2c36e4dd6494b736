package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"inventory-api/internal/apperr"
	"inventory-api/internal/middleware"
	"inventory-api/internal/policy"
)

// fail maps the error taxonomy to a protocol response. Internal errors are
// logged but never echoed to the client.
func fail(c *fiber.Ctx, err error) error {
	var status int
	switch apperr.KindOf(err) {
	case apperr.KindUnauthorized:
		status = fiber.StatusUnauthorized
	case apperr.KindForbidden:
		status = fiber.StatusForbidden
	case apperr.KindNotFound:
		status = fiber.StatusNotFound
	case apperr.KindConflict:
		status = fiber.StatusConflict
	case apperr.KindValidation:
		status = fiber.StatusUnprocessableEntity
	default:
		logrus.WithField("path", c.Path()).Error("request failed: ", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// claims pulls the authenticated identity; RequireAuth upstream guarantees
// it is present on every protected route.
func claims(c *fiber.Ctx) (policy.Claims, error) {
	cl, ok := middleware.ClaimsFrom(c)
	if !ok {
		return policy.Claims{}, apperr.Unauthorized("invalid or expired token")
	}
	return cl, nil
}
