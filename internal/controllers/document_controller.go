package controllers

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"inventory-api/internal/services"
	"inventory-api/internal/storage"
)

// readUpload pulls the multipart file and the document name out of the
// request.
func readUpload(c *fiber.Ctx) (documentName, filename string, data []byte, err error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", "", nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return "", "", nil, err
	}
	defer f.Close()

	data, err = io.ReadAll(f)
	if err != nil {
		return "", "", nil, err
	}
	return c.FormValue("document_name"), fh.Filename, data, nil
}

// UploadRecordDocument godoc
// @Summary      Upload a document for a record (pdf, jpg, jpeg, png)
// @Tags         Documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path string true "Record ID"
// @Param        document_name formData string true "Document name"
// @Param        file formData file true "File"
// @Success      201 {object} models.DocumentLink
// @Failure      409 {object} map[string]interface{}
// @Router       /records/{id}/documents [post]
func UploadRecordDocument(store *storage.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		name, filename, data, err := readUpload(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
		}

		doc, err := services.UploadRecordDocument(c.Context(), cl, store, c.Params("id"), name, filename, data)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":     "Document uploaded",
			"document_id": doc.DocumentID,
			"url":         doc.PublicURL,
		})
	}
}

// GetRecordDocuments godoc
// @Summary      List a record's active documents
// @Tags         Documents
// @Produce      json
// @Param        id path string true "Record ID"
// @Success      200 {array} models.DocumentLink
// @Router       /records/{id}/documents [get]
func GetRecordDocuments() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		docs, err := services.ListRecordDocuments(c.Context(), cl, c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(docs)
	}
}

// DeleteRecordDocument godoc
// @Summary      Soft delete a record document (its name becomes reusable)
// @Tags         Documents
// @Produce      json
// @Param        documentId path string true "Document ID"
// @Success      200 {object} map[string]interface{}
// @Router       /documents/{documentId} [delete]
func DeleteRecordDocument() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		if err := services.DeleteRecordDocument(c.Context(), cl, c.Params("documentId")); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "Document deleted"})
	}
}

// UploadWorkDocument godoc
// @Summary      Upload a document for a work item (pdf, jpg, jpeg, png)
// @Tags         Documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        workId path string true "Work ID"
// @Param        document_name formData string true "Document name"
// @Param        file formData file true "File"
// @Success      201 {object} models.DocumentLink
// @Failure      409 {object} map[string]interface{}
// @Router       /work/{workId}/documents [post]
func UploadWorkDocument(store *storage.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		name, filename, data, err := readUpload(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
		}

		doc, err := services.UploadWorkDocument(c.Context(), cl, store, c.Params("workId"), name, filename, data)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":     "Document uploaded",
			"document_id": doc.DocumentID,
			"url":         doc.PublicURL,
		})
	}
}

// GetWorkDocuments godoc
// @Summary      List a work item's active documents
// @Tags         Documents
// @Produce      json
// @Param        workId path string true "Work ID"
// @Success      200 {array} models.DocumentLink
// @Router       /work/{workId}/documents [get]
func GetWorkDocuments() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		docs, err := services.ListWorkDocuments(c.Context(), cl, c.Params("workId"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(docs)
	}
}

// DeleteWorkDocument godoc
// @Summary      Soft delete a work document
// @Tags         Documents
// @Produce      json
// @Param        documentId path string true "Document ID"
// @Success      200 {object} map[string]interface{}
// @Router       /work-documents/{documentId} [delete]
func DeleteWorkDocument() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cl, err := claims(c)
		if err != nil {
			return fail(c, err)
		}
		if err := services.DeleteWorkDocument(c.Context(), cl, c.Params("documentId")); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "Document deleted"})
	}
}
