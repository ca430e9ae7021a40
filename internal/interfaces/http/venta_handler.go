package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
)

// VentaHandler maneja las peticiones HTTP de ventas (protegido).
type VentaHandler struct {
	uc *usecase.VentaUseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *usecase.VentaUseCase) *VentaHandler {
	return &VentaHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Registra la venta con sus detalles; el precio de cada línea se copia del catálogo al momento de la venta.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVentaRequest  true  "idCliente, idEmpleado, metodoPago, detalles"
// @Success      201   {object}  dto.VentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/ventas [post]
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	venta, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(venta)
}

// List godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Produce      json
// @Success      200  {array}  dto.VentaResponse
// @Security     BearerAuth
// @Router       /api/ventas [get]
func (h *VentaHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener venta por ID con sus detalles
// @Tags         ventas
// @Produce      json
// @Param        id   path      int  true  "ID de la venta"
// @Success      200  {object}  dto.VentaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/ventas/{id} [get]
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return respondInvalidID(c)
	}
	venta, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(venta)
}

// Recibo godoc
// @Summary      Descargar comprobante de venta en PDF
// @Tags         ventas
// @Produce      application/pdf
// @Param        id   path      int  true  "ID de la venta"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/ventas/{id}/recibo [get]
func (h *VentaHandler) Recibo(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return respondInvalidID(c)
	}
	pdf, err := h.uc.Recibo(id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="venta-%d.pdf"`, id))
	return c.Send(pdf)
}

// Delete godoc
// @Summary      Eliminar venta (borrado lógico)
// @Tags         ventas
// @Produce      json
// @Param        id   path      int  true  "ID de la venta"
// @Success      200  {object}  dto.VentaDeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/ventas/{id} [delete]
func (h *VentaHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return respondInvalidID(c)
	}
	out, err := h.uc.Delete(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
