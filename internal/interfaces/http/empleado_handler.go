package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
)

// EmpleadoHandler maneja las peticiones HTTP de empleados (protegido).
type EmpleadoHandler struct {
	uc *usecase.EmpleadoUseCase
}

// NewEmpleadoHandler construye el handler.
func NewEmpleadoHandler(uc *usecase.EmpleadoUseCase) *EmpleadoHandler {
	return &EmpleadoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empleado con cuenta autoprovisionada
// @Description  Crea el empleado y su cuenta de usuario empleadoN en una sola operación atómica.
// @Tags         empleados
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmpleadoRequest  true  "nombres, apellidos, cargo, fechaContratacion (YYYY-MM-DD)"
// @Success      201   {object}  dto.EmpleadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/empleados [post]
func (h *EmpleadoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmpleadoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	empleado, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(empleado)
}

// List godoc
// @Summary      Listar empleados
// @Tags         empleados
// @Produce      json
// @Success      200  {array}  dto.EmpleadoResponse
// @Security     BearerAuth
// @Router       /api/empleados [get]
func (h *EmpleadoHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener empleado por ID
// @Tags         empleados
// @Produce      json
// @Param        id   path      int  true  "ID del empleado"
// @Success      200  {object}  dto.EmpleadoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/empleados/{id} [get]
func (h *EmpleadoHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return respondInvalidID(c)
	}
	empleado, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(empleado)
}

// GetByUsuarioID godoc
// @Summary      Obtener empleado por ID de su cuenta
// @Description  Un usuarioId no numérico responde 404, no 400: la ruta identifica un recurso por cuenta y una cuenta imposible simplemente no existe.
// @Tags         empleados
// @Produce      json
// @Param        usuarioId  path      int  true  "ID de la cuenta de usuario"
// @Success      200        {object}  dto.EmpleadoResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/empleados/usuario/{usuarioId} [get]
func (h *EmpleadoHandler) GetByUsuarioID(c *fiber.Ctx) error {
	usuarioID, err := strconv.ParseInt(c.Params("usuarioId"), 10, 64)
	if err != nil || usuarioID <= 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "no se encontró empleado para el usuario indicado",
		})
	}
	empleado, err := h.uc.GetByUsuarioID(usuarioID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(empleado)
}

// Update godoc
// @Summary      Actualizar empleado (parcial)
// @Tags         empleados
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del empleado"
// @Param        body  body  dto.UpdateEmpleadoRequest  true  "campos a modificar; idUsuario revincula la cuenta"
// @Success      200   {object}  dto.EmpleadoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/empleados/{id} [patch]
func (h *EmpleadoHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return respondInvalidID(c)
	}
	var in dto.UpdateEmpleadoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	empleado, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(empleado)
}

// Delete godoc
// @Summary      Eliminar empleado (borrado lógico)
// @Description  La cuenta vinculada no se elimina; su login sigue ocupado para el asignador.
// @Tags         empleados
// @Produce      json
// @Param        id   path      int  true  "ID del empleado"
// @Success      200  {object}  dto.EmpleadoDeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/empleados/{id} [delete]
func (h *EmpleadoHandler) Delete(c *fiber.Ctx) error {
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
