package controllers

import (
	"github.com/gofiber/fiber/v2"

	"inventory-api/dto"
	"inventory-api/internal/services"
)

// CreateAssociate godoc
// @Summary      Create a project associate account (admin only)
// @Tags         Project Associate Management
// @Accept       json
// @Produce      json
// @Param        body body dto.AssociateCreateRequest true "Associate"
// @Success      201 {object} map[string]interface{}
// @Failure      409 {object} map[string]interface{}
// @Router       /admin/associates [post]
func CreateAssociate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		var req dto.AssociateCreateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := dto.Validate(&req); err != nil {
			return fail(c, err)
		}

		assoc, err := services.CreateAssociate(c.Context(), cl, &req)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":  "Project associate created successfully",
			"staff_id": assoc.StaffID,
		})
	}
}

// GetAssociates godoc
// @Summary      List project associates (admin: all, staff: assigned only)
// @Tags         Project Associate Management
// @Produce      json
// @Success      200 {array} models.User
// @Router       /associates [get]
func GetAssociates() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		associates, err := services.ListAssociates(c.Context(), cl)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(associates)
	}
}

// GetAssociate godoc
// @Summary      Get one project associate
// @Tags         Project Associate Management
// @Produce      json
// @Param        staffId path string true "Associate staff ID"
// @Success      200 {object} models.User
// @Failure      404 {object} map[string]interface{}
// @Router       /associates/{staffId} [get]
func GetAssociate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		assoc, err := services.GetAssociate(c.Context(), cl, c.Params("staffId"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(assoc)
	}
}

// UpdateAssociate godoc
// @Summary      Update a project associate (supervising staff or admin; reassignment admin only)
// @Tags         Project Associate Management
// @Accept       json
// @Produce      json
// @Param        staffId path string true "Associate staff ID"
// @Param        body body dto.AssociateUpdateRequest true "Patch"
// @Success      200 {object} map[string]interface{}
// @Router       /associates/{staffId} [put]
func UpdateAssociate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		var req dto.AssociateUpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := dto.Validate(&req); err != nil {
			return fail(c, err)
		}
		if err := services.UpdateAssociate(c.Context(), cl, c.Params("staffId"), &req); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "Project associate updated"})
	}
}

// DeleteAssociate godoc
// @Summary      Soft delete a project associate (admin only, restorable for 5 days)
// @Tags         Project Associate Management
// @Produce      json
// @Param        staffId path string true "Associate staff ID"
// @Success      200 {object} map[string]interface{}
// @Router       /admin/associates/{staffId} [delete]
func DeleteAssociate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		if err := services.DeleteAssociate(c.Context(), cl, c.Params("staffId")); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "Project associate deleted"})
	}
}

// GetDeletedAssociates godoc
// @Summary      List soft-deleted project associates (admin only)
// @Tags         Project Associate Management
// @Produce      json
// @Success      200 {array} models.User
// @Router       /admin/associates/deleted [get]
func GetDeletedAssociates() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		associates, err := services.ListDeletedAssociates(c.Context(), cl)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(associates)
	}
}

// RestoreAssociate godoc
// @Summary      Restore a soft-deleted project associate (admin only)
// @Tags         Project Associate Management
// @Produce      json
// @Param        staffId path string true "Associate staff ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Router       /admin/associates/deleted/{staffId}/restore [post]
func RestoreAssociate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		assoc, err := services.RestoreAssociate(c.Context(), cl, c.Params("staffId"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "Project associate restored", "associate": assoc})
	}
}
