package http

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-ingest/internal/application/dto"
	"github.com/jhoicas/retail-ingest/internal/application/upload"
	"github.com/jhoicas/retail-ingest/internal/domain"
)

// UploadHandler maneja las peticiones HTTP de cargas de libros (protegido).
type UploadHandler struct {
	uc *upload.UseCase
}

// NewUploadHandler construye el handler.
func NewUploadHandler(uc *upload.UseCase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// Create godoc
// @Summary      Subir libro de ventas, productos y traspasos
// @Tags         uploads
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file     formData  file  true   "Libro .xlsx"
// @Param        dry_run  query     bool  false  "Normalizar sin persistir"
// @Success      201  {object}  dto.UploadResponse
// @Success      200  {object}  ingest.Result
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ValidationErrorResponse
// @Router       /api/uploads [post]
func (h *UploadHandler) Create(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "el campo 'file' es requerido"})
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".xlsx") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "solo se aceptan archivos .xlsx"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()

	dryRun := c.QueryBool("dry_run", false)
	out, err := h.uc.Ingest(c.UserContext(), upload.Input{
		UserID:    GetUserID(c),
		CompanyID: GetCompanyID(c),
		FileName:  fh.Filename,
		File:      f,
		DryRun:    dryRun,
	})
	if err != nil {
		return writeUploadError(c, err)
	}
	if dryRun {
		return c.JSON(out.Result)
	}
	return c.Status(fiber.StatusCreated).JSON(upload.ToUploadResponse(out))
}

// List godoc
// @Summary      Listar cargas del usuario
// @Tags         uploads
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.UploadListResponse
// @Router       /api/uploads [get]
func (h *UploadHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	out, err := h.uc.List(c.UserContext(), GetUserID(c), page)
	if err != nil {
		return writeUploadError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener una carga
// @Tags         uploads
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la carga"
// @Success      200  {object}  dto.UploadSummary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/uploads/{id} [get]
func (h *UploadHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return writeUploadError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una carga y sus filas
// @Tags         uploads
// @Security     Bearer
// @Param        id   path  string  true  "ID de la carga"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/uploads/{id} [delete]
func (h *UploadHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return writeUploadError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteAll godoc
// @Summary      Eliminar todas las cargas del usuario
// @Tags         uploads
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DeleteUploadsResponse
// @Router       /api/uploads [delete]
func (h *UploadHandler) DeleteAll(c *fiber.Ctx) error {
	n, err := h.uc.DeleteAll(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeUploadError(c, err)
	}
	return c.JSON(dto.DeleteUploadsResponse{Deleted: n})
}

func writeUploadError(c *fiber.Ctx, err error) error {
	var verr *upload.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Code:    "VALIDATION_FAILED",
			Message: "el archivo tiene filas inválidas; corríjalas y vuelva a subirlo",
			Details: verr.Details,
			Total:   verr.Total,
		})
	case errors.Is(err, domain.ErrUnsupportedFile):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "el archivo no es un libro .xlsx válido"})
	case errors.Is(err, domain.ErrEmptyUpload):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_FILE", Message: "el archivo no contiene filas"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no identificado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "carga no encontrada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
