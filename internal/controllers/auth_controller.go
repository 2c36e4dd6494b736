package controllers

import (
	"github.com/gofiber/fiber/v2"

	"inventory-api/dto"
	"inventory-api/internal/services"
	"inventory-api/internal/token"
)

// AdminLogin godoc
// @Summary      Admin login
// @Description  Authenticates the admin account and returns a bearer token
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        body body dto.AdminLoginRequest true "Admin password"
// @Success      200 {object} dto.LoginResponse
// @Failure      401 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Router       /login/admin [post]
func AdminLogin(tm *token.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.AdminLoginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := dto.Validate(&req); err != nil {
			return fail(c, err)
		}

		resp, err := services.AdminLogin(c.Context(), tm, req.Password)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(resp)
	}
}

// StaffLogin godoc
// @Summary      Staff / project associate login
// @Description  Authenticates by staff id and returns a bearer token carrying the stored role
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        body body dto.StaffLoginRequest true "Credentials"
// @Success      200 {object} dto.LoginResponse
// @Failure      401 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Router       /login/staff [post]
func StaffLogin(tm *token.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.StaffLoginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := dto.Validate(&req); err != nil {
			return fail(c, err)
		}

		resp, err := services.StaffLogin(c.Context(), tm, req.StaffID, req.Password)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(resp)
	}
}
