// Package tasks implementa los trabajos de mantenimiento: limpieza de códigos
// de desbloqueo vencidos, cancelación de pedidos pendientes, reporte diario de
// ventas y respaldo de base de datos. Cada trabajo reporta inicio y resultado
// a healthchecks, está protegido contra ejecuciones solapadas y devuelve los
// fallos como texto de reporte, nunca como error de la operación.
package tasks

import (
	"fmt"
	"os/exec"
	"sync"
	"time"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/repository"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/pkg/config"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/pkg/logger"
)

// Antigüedad a partir de la cual un pedido PENDIENTE se cancela.
const antiguedadPendiente = 24 * time.Hour

// Pinger notifica inicio, éxito y fallo de un trabajo a healthchecks.
type Pinger interface {
	Start(uuid string)
	Success(uuid string)
	Fail(uuid string)
}

// UseCase trabajos de mantenimiento.
type UseCase struct {
	usuarios repository.UsuarioRepository
	pedidos  repository.PedidoRepository
	pinger   Pinger
	health   config.HealthConfig
	backup   config.BackupConfig
	log      *logger.Logger

	muCleanup sync.Mutex
	muCancel  sync.Mutex
	muReport  sync.Mutex
	muBackup  sync.Mutex
}

// NewUseCase construye el caso de uso de mantenimiento.
func NewUseCase(
	usuarios repository.UsuarioRepository,
	pedidos repository.PedidoRepository,
	pinger Pinger,
	health config.HealthConfig,
	backup config.BackupConfig,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		usuarios: usuarios,
		pedidos:  pedidos,
		pinger:   pinger,
		health:   health,
		backup:   backup,
		log:      log,
	}
}

// CleanupCodes borra los códigos de desbloqueo vencidos. Un fallo del
// repositorio se informa en el reporte, no como error de la operación.
func (uc *UseCase) CleanupCodes() (string, error) {
	if !uc.muCleanup.TryLock() {
		return "", domain.ErrConflict
	}
	defer uc.muCleanup.Unlock()

	uc.pinger.Start(uc.health.CleanupUUID)

	limpiados, err := uc.usuarios.LimpiarCodigosVencidos(time.Now())
	if err != nil {
		uc.pinger.Fail(uc.health.CleanupUUID)
		uc.log.Error().Err(err).Msg("limpieza de códigos fallida")
		return fmt.Sprintf("Limpieza de códigos. Estado: FALLO - %v", err), nil
	}

	uc.pinger.Success(uc.health.CleanupUUID)
	reporte := fmt.Sprintf("Limpieza completada: %d código(s) de desbloqueo vencido(s) eliminado(s)", limpiados)
	uc.log.Info().Int64("limpiados", limpiados).Msg("limpieza de códigos completada")
	return reporte, nil
}

// CancelOrders cancela los pedidos PENDIENTE con más de 24 horas.
func (uc *UseCase) CancelOrders() (string, error) {
	if !uc.muCancel.TryLock() {
		return "", domain.ErrConflict
	}
	defer uc.muCancel.Unlock()

	uc.pinger.Start(uc.health.CancelOrdersUUID)

	// TODO: reponer el stock de los pedidos cancelados; hoy se cancelan sin
	// devolver inventario.
	cancelados, err := uc.pedidos.CancelarPendientesAnteriores(time.Now().Add(-antiguedadPendiente))
	if err != nil {
		uc.pinger.Fail(uc.health.CancelOrdersUUID)
		uc.log.Error().Err(err).Msg("cancelación de pedidos pendientes fallida")
		return fmt.Sprintf("Cancelación de pedidos. Estado: FALLO - %v", err), nil
	}

	uc.pinger.Success(uc.health.CancelOrdersUUID)
	reporte := fmt.Sprintf("Cancelación completada: %d pedido(s) pendiente(s) con más de 24h cancelado(s)", cancelados)
	uc.log.Info().Int64("cancelados", cancelados).Msg("cancelación de pedidos completada")
	return reporte, nil
}

// SalesReport arma el reporte de ventas del día anterior (pedidos pagados,
// enviados o entregados).
func (uc *UseCase) SalesReport() (string, error) {
	if !uc.muReport.TryLock() {
		return "", domain.ErrConflict
	}
	defer uc.muReport.Unlock()

	uc.pinger.Start(uc.health.SalesReportUUID)

	ahora := time.Now()
	hoy := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())
	ayer := hoy.Add(-24 * time.Hour)

	total, cantidad, err := uc.pedidos.TotalVentasEnRango(ayer, hoy)
	if err != nil {
		uc.pinger.Fail(uc.health.SalesReportUUID)
		uc.log.Error().Err(err).Msg("reporte de ventas fallido")
		return fmt.Sprintf("Reporte de ventas. Estado: FALLO - %v", err), nil
	}

	uc.pinger.Success(uc.health.SalesReportUUID)
	reporte := fmt.Sprintf("Ventas del %s: %d pedido(s) por un total de S/ %s",
		ayer.Format("02/01/2006"), cantidad, total.StringFixed(2))
	uc.log.Info().
		Int64("pedidos", cantidad).
		Str("total", total.StringFixed(2)).
		Msg("reporte de ventas generado")
	return reporte, nil
}

// Backup ejecuta el script de respaldo de base de datos y devuelve su salida.
// El fallo del script se informa en el reporte, no como error de la operación.
func (uc *UseCase) Backup() (string, error) {
	if !uc.muBackup.TryLock() {
		return "", domain.ErrConflict
	}
	defer uc.muBackup.Unlock()

	uc.pinger.Start(uc.health.BackupUUID)

	salida, err := exec.Command("/bin/sh", uc.backup.ScriptPath).CombinedOutput()
	if err != nil {
		uc.pinger.Fail(uc.health.BackupUUID)
		uc.log.Error().Err(err).Str("script", uc.backup.ScriptPath).Msg("respaldo fallido")
		return fmt.Sprintf("Respaldo fallido: %v\n%s", err, salida), nil
	}

	uc.pinger.Success(uc.health.BackupUUID)
	uc.log.Info().Str("script", uc.backup.ScriptPath).Msg("respaldo completado")
	return fmt.Sprintf("Respaldo completado\n%s", salida), nil
}

// usada por el scheduler para loguear sin cortar los demás jobs
func (uc *UseCase) ejecutar(nombre string, job func() (string, error)) {
	if _, err := job(); err != nil && err != domain.ErrConflict {
		uc.log.Error().Err(err).Str("job", nombre).Msg("job de mantenimiento fallido")
	}
}
