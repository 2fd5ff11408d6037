package dto

// TaskReportResponse resultado de una tarea de mantenimiento.
type TaskReportResponse struct {
	Task   string `json:"task"`
	Report string `json:"report"`
}
