package controllers

import (
	"github.com/gofiber/fiber/v2"

	"inventory-api/dto"
	"inventory-api/internal/services"
)

// CreateRecord godoc
// @Summary      Create a PR/PO record
// @Tags         Records
// @Accept       json
// @Produce      json
// @Param        body body dto.RecordRequest true "Record"
// @Success      201 {object} models.Record
// @Failure      403 {object} map[string]interface{}
// @Failure      422 {object} map[string]interface{}
// @Router       /records [post]
func CreateRecord() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		var req dto.RecordRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := dto.Validate(&req); err != nil {
			return fail(c, err)
		}

		rec, err := services.CreateRecord(c.Context(), cl, &req)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":   "Record created",
			"record_id": rec.ID.Hex(),
			"remaining": rec.Remaining,
		})
	}
}

// GetRecords godoc
// @Summary      List records visible to the caller
// @Tags         Records
// @Produce      json
// @Success      200 {array} models.Record
// @Router       /records [get]
func GetRecords() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		records, err := services.ListRecords(c.Context(), cl)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(records)
	}
}

// GetRecord godoc
// @Summary      Get one record
// @Tags         Records
// @Produce      json
// @Param        id path string true "Record ID"
// @Success      200 {object} models.Record
// @Failure      404 {object} map[string]interface{}
// @Router       /records/{id} [get]
func GetRecord() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		rec, err := services.GetRecord(c.Context(), cl, c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(rec)
	}
}

// UpdateRecord godoc
// @Summary      Update a record (derived totals are recomputed)
// @Tags         Records
// @Accept       json
// @Produce      json
// @Param        id path string true "Record ID"
// @Param        body body dto.RecordRequest true "Record"
// @Success      200 {object} map[string]interface{}
// @Router       /records/{id} [put]
func UpdateRecord() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		var req dto.RecordRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := dto.Validate(&req); err != nil {
			return fail(c, err)
		}

		rec, err := services.UpdateRecord(c.Context(), cl, c.Params("id"), &req)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "Record updated", "remaining": rec.Remaining})
	}
}

// DeleteRecord godoc
// @Summary      Soft delete a record (restorable for 5 days)
// @Tags         Records
// @Produce      json
// @Param        id path string true "Record ID"
// @Success      200 {object} map[string]interface{}
// @Router       /records/{id} [delete]
func DeleteRecord() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		if err := services.DeleteRecord(c.Context(), cl, c.Params("id")); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "Record deleted"})
	}
}

// GetDeletedRecords godoc
// @Summary      List soft-deleted records still inside the restore window
// @Tags         Records - Deleted
// @Produce      json
// @Success      200 {array} models.Record
// @Router       /records/deleted [get]
func GetDeletedRecords() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		records, err := services.ListDeletedRecords(c.Context(), cl)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(records)
	}
}

// RestoreRecord godoc
// @Summary      Restore a soft-deleted record under its original identity
// @Tags         Records - Deleted
// @Produce      json
// @Param        id path string true "Original record ID"
// @Success      200 {object} models.Record
// @Failure      404 {object} map[string]interface{}
// @Router       /records/deleted/{id}/restore [post]
func RestoreRecord() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		rec, err := services.RestoreRecord(c.Context(), cl, c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "Record restored", "record": rec})
	}
}
