package controllers

import (
	"github.com/gofiber/fiber/v2"

	"inventory-api/dto"
	"inventory-api/internal/services"
)

// CreateStaff godoc
// @Summary      Create a staff account (admin only)
// @Tags         Staff Management
// @Accept       json
// @Produce      json
// @Param        body body dto.StaffCreateRequest true "Staff"
// @Success      201 {object} map[string]interface{}
// @Failure      409 {object} map[string]interface{}
// @Router       /admin/staff [post]
func CreateStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		var req dto.StaffCreateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := dto.Validate(&req); err != nil {
			return fail(c, err)
		}

		staff, err := services.CreateStaff(c.Context(), cl, &req)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":  "Staff created successfully",
			"staff_id": staff.StaffID,
		})
	}
}

// GetStaff godoc
// @Summary      List active staff accounts (admin only)
// @Tags         Staff Management
// @Produce      json
// @Success      200 {array} models.User
// @Router       /admin/staff [get]
func GetStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		staff, err := services.ListStaff(c.Context(), cl)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(staff)
	}
}

// UpdateStaff godoc
// @Summary      Update a staff account's name or password (admin only)
// @Tags         Staff Management
// @Accept       json
// @Produce      json
// @Param        staffId path string true "Staff ID"
// @Param        body body dto.StaffUpdateRequest true "Patch"
// @Success      200 {object} map[string]interface{}
// @Router       /admin/staff/{staffId} [put]
func UpdateStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		var req dto.StaffUpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := dto.Validate(&req); err != nil {
			return fail(c, err)
		}
		if err := services.UpdateStaff(c.Context(), cl, c.Params("staffId"), &req); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "Staff updated"})
	}
}

// DeleteStaff godoc
// @Summary      Soft delete a staff account (admin only, restorable for 5 days)
// @Tags         Staff Management
// @Produce      json
// @Param        staffId path string true "Staff ID"
// @Success      200 {object} map[string]interface{}
// @Router       /admin/staff/{staffId} [delete]
func DeleteStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		if err := services.DeleteStaff(c.Context(), cl, c.Params("staffId")); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "Staff deleted"})
	}
}

// GetDeletedStaff godoc
// @Summary      List soft-deleted staff accounts (admin only)
// @Tags         Staff Management
// @Produce      json
// @Success      200 {array} models.User
// @Router       /admin/staff/deleted [get]
func GetDeletedStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		staff, err := services.ListDeletedStaff(c.Context(), cl)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(staff)
	}
}

// RestoreStaff godoc
// @Summary      Restore a soft-deleted staff account (admin only)
// @Tags         Staff Management
// @Produce      json
// @Param        staffId path string true "Staff ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Router       /admin/staff/deleted/{staffId}/restore [post]
func RestoreStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		staff, err := services.RestoreStaff(c.Context(), cl, c.Params("staffId"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "Staff restored", "staff": staff})
	}
}
