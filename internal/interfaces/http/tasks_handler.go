package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/dto"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/tasks"
)

// TasksHandler dispara manualmente los trabajos de mantenimiento (admin).
type TasksHandler struct {
	uc *tasks.UseCase
}

// NewTasksHandler construye el handler.
func NewTasksHandler(uc *tasks.UseCase) *TasksHandler {
	return &TasksHandler{uc: uc}
}

func (h *TasksHandler) responder(c *fiber.Ctx, task, report string, err error) error {
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.TaskReportResponse{Task: task, Report: report})
}

// CleanupCodes godoc
// @Summary      Limpiar códigos de recuperación vencidos
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TaskReportResponse
// @Failure      409  {object}  dto.ErrorResponse  "Ya hay una ejecución en curso"
// @Router       /api/admin/tasks/cleanup-codes [post]
func (h *TasksHandler) CleanupCodes(c *fiber.Ctx) error {
	report, err := h.uc.CleanupCodes()
	return h.responder(c, "cleanup_codes", report, err)
}

// CancelOrders godoc
// @Summary      Cancelar pedidos pendientes antiguos
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TaskReportResponse
// @Failure      409  {object}  dto.ErrorResponse  "Ya hay una ejecución en curso"
// @Router       /api/admin/tasks/cancel-orders [post]
func (h *TasksHandler) CancelOrders(c *fiber.Ctx) error {
	report, err := h.uc.CancelOrders()
	return h.responder(c, "cancel_orders", report, err)
}

// SalesReport godoc
// @Summary      Generar reporte de ventas del día anterior
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TaskReportResponse
// @Failure      409  {object}  dto.ErrorResponse  "Ya hay una ejecución en curso"
// @Router       /api/admin/tasks/sales-report [post]
func (h *TasksHandler) SalesReport(c *fiber.Ctx) error {
	report, err := h.uc.SalesReport()
	return h.responder(c, "sales_report", report, err)
}

// Backup godoc
// @Summary      Ejecutar respaldo de la base de datos
// @Tags         tasks
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TaskReportResponse
// @Failure      409  {object}  dto.ErrorResponse  "Ya hay una ejecución en curso"
// @Router       /api/admin/tasks/backup [post]
func (h *TasksHandler) Backup(c *fiber.Ctx) error {
	report, err := h.uc.Backup()
	return h.responder(c, "backup", report, err)
}
