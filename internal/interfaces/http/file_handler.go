package http

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/catalogo"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/dto"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/infrastructure/storage"
)

// FileHandler sube imágenes de producto y sirve los archivos guardados.
type FileHandler struct {
	storage *storage.LocalStorage
	uc      *catalogo.UseCase
	baseURL string
}

// NewFileHandler construye el handler. baseURL es el prefijo público con el
// que se exponen los archivos (p.ej. /api/files/uploads).
func NewFileHandler(st *storage.LocalStorage, uc *catalogo.UseCase, baseURL string) *FileHandler {
	return &FileHandler{storage: st, uc: uc, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (h *FileHandler) guardarArchivo(c *fiber.Ctx) (string, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "se requiere un archivo en el campo 'file'"})
	}
	contentType := fh.Header.Get(fiber.HeaderContentType)
	if !storage.ContentTypePermitido(contentType) {
		return "", c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "solo se aceptan imágenes JPEG, PNG o GIF"})
	}
	f, err := fh.Open()
	if err != nil {
		return "", c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()
	contenido, err := io.ReadAll(f)
	if err != nil {
		return "", c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo leer el archivo"})
	}
	nombre, err := h.storage.Guardar(contentType, contenido)
	if err != nil {
		return "", c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo guardar el archivo"})
	}
	return h.baseURL + "/" + nombre, nil
}

// UploadPrincipal godoc
// @Summary      Subir imagen principal de un producto
// @Tags         archivos
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "ID del producto"
// @Param        file  formData  file    true  "Imagen JPEG, PNG o GIF"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/productos/{id}/imagen [post]
func (h *FileHandler) UploadPrincipal(c *fiber.Ctx) error {
	url, err := h.guardarArchivo(c)
	if err != nil || url == "" {
		return err
	}
	if err := h.uc.SetImagenPrincipal(c.Params("id"), url); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: url})
}

// UploadGaleria godoc
// @Summary      Subir imagen a la galería de un producto
// @Tags         archivos
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "ID del producto"
// @Param        file  formData  file    true  "Imagen JPEG, PNG o GIF"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/productos/{id}/galeria [post]
func (h *FileHandler) UploadGaleria(c *fiber.Ctx) error {
	url, err := h.guardarArchivo(c)
	if err != nil || url == "" {
		return err
	}
	if _, err := h.uc.AddImagenGaleria(c.Params("id"), url); err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: url})
}

// DeleteGaleria godoc
// @Summary      Eliminar imagen de galería
// @Tags         archivos
// @Security     Bearer
// @Param        id  path  string  true  "ID de la imagen"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/imagenes/{id} [delete]
func (h *FileHandler) DeleteGaleria(c *fiber.Ctx) error {
	if err := h.uc.DeleteImagenGaleria(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "imagen eliminada"})
}

// Serve godoc
// @Summary      Servir un archivo subido
// @Tags         archivos
// @Produce      image/jpeg
// @Param        nombre  path  string  true  "Nombre del archivo"
// @Success      200     {file}  file
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/files/uploads/{nombre} [get]
func (h *FileHandler) Serve(c *fiber.Ctx) error {
	ruta, err := h.storage.Ruta(c.Params("nombre"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "archivo no encontrado"})
	}
	return c.SendFile(ruta)
}
