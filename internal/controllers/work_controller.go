package controllers

import (
	"github.com/gofiber/fiber/v2"

	"inventory-api/dto"
	"inventory-api/internal/services"
)

// CreateWork godoc
// @Summary      Create a work item for a project associate
// @Tags         Work
// @Accept       json
// @Produce      json
// @Param        body body dto.WorkCreateRequest true "Work item"
// @Success      201 {object} models.WorkItem
// @Failure      403 {object} map[string]interface{}
// @Router       /work [post]
func CreateWork() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		var req dto.WorkCreateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := dto.Validate(&req); err != nil {
			return fail(c, err)
		}

		w, err := services.CreateWork(c.Context(), cl, &req)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(w)
	}
}

// GetWorkItems godoc
// @Summary      List work items visible to the caller, with derived status
// @Tags         Work
// @Produce      json
// @Success      200 {array} models.WorkItem
// @Router       /work [get]
func GetWorkItems() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		items, err := services.ListWork(c.Context(), cl)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(items)
	}
}

// GetWork godoc
// @Summary      Get one work item with derived status
// @Tags         Work
// @Produce      json
// @Param        workId path string true "Work ID"
// @Success      200 {object} models.WorkItem
// @Failure      404 {object} map[string]interface{}
// @Router       /work/{workId} [get]
func GetWork() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		w, err := services.GetWork(c.Context(), cl, c.Params("workId"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(w)
	}
}

// UpdateWork godoc
// @Summary      Update a work item's task definition (supervising staff or admin)
// @Tags         Work
// @Accept       json
// @Produce      json
// @Param        workId path string true "Work ID"
// @Param        body body dto.WorkUpdateRequest true "Patch"
// @Success      200 {object} map[string]interface{}
// @Router       /work/{workId} [put]
func UpdateWork() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		var req dto.WorkUpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := services.UpdateWork(c.Context(), cl, c.Params("workId"), &req); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "Work updated"})
	}
}

// UpdateWorkProgress godoc
// @Summary      Update progress (owning associate, supervising staff or admin)
// @Tags         Work
// @Accept       json
// @Produce      json
// @Param        workId path string true "Work ID"
// @Param        body body dto.WorkProgressRequest true "Progress"
// @Success      200 {object} map[string]interface{}
// @Router       /work/{workId}/progress [put]
func UpdateWorkProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		var req dto.WorkProgressRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := dto.Validate(&req); err != nil {
			return fail(c, err)
		}
		if err := services.UpdateWorkProgress(c.Context(), cl, c.Params("workId"), &req); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "Progress updated"})
	}
}

// SetWorkDelayReason godoc
// @Summary      Record the reason a work item slipped (only after the deadline)
// @Tags         Work
// @Accept       json
// @Produce      json
// @Param        workId path string true "Work ID"
// @Param        body body dto.WorkDelayRequest true "Reason"
// @Success      200 {object} map[string]interface{}
// @Failure      422 {object} map[string]interface{}
// @Router       /work/{workId}/delay [put]
func SetWorkDelayReason() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		var req dto.WorkDelayRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := dto.Validate(&req); err != nil {
			return fail(c, err)
		}
		if err := services.SetWorkDelayReason(c.Context(), cl, c.Params("workId"), &req); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "Reason for delay recorded"})
	}
}

// DeleteWork godoc
// @Summary      Soft delete a work item in place (supervising staff or admin)
// @Tags         Work
// @Produce      json
// @Param        workId path string true "Work ID"
// @Success      200 {object} map[string]interface{}
// @Router       /work/{workId} [delete]
func DeleteWork() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		if err := services.DeleteWork(c.Context(), cl, c.Params("workId")); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "Work deleted"})
	}
}

// GetDeletedWorkItems godoc
// @Summary      List soft-deleted work items (supervising staff or admin)
// @Tags         Work
// @Produce      json
// @Success      200 {array} models.WorkItem
// @Router       /work/deleted [get]
func GetDeletedWorkItems() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		items, err := services.ListDeletedWork(c.Context(), cl)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(items)
	}
}

// RestoreWork godoc
// @Summary      Restore a soft-deleted work item
// @Tags         Work
// @Produce      json
// @Param        workId path string true "Work ID"
// @Success      200 {object} models.WorkItem
// @Failure      404 {object} map[string]interface{}
// @Router       /work/deleted/{workId}/restore [post]
func RestoreWork() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		w, err := services.RestoreWork(c.Context(), cl, c.Params("workId"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "Work restored", "work": w})
	}
}
