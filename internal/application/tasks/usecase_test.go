package tasks

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/repository"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/pkg/config"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/pkg/logger"
)

type stubUsuarioRepo struct {
	repository.UsuarioRepository
	limpiados int64
	fallo     error
	bloquear  chan struct{} // si no es nil, LimpiarCodigosVencidos espera aquí
}

func (r *stubUsuarioRepo) LimpiarCodigosVencidos(limite time.Time) (int64, error) {
	if r.bloquear != nil {
		<-r.bloquear
	}
	if r.fallo != nil {
		return 0, r.fallo
	}
	return r.limpiados, nil
}

type stubPedidoRepo struct {
	repository.PedidoRepository
	cancelados int64
	limite     time.Time
	total      decimal.Decimal
	ventas     int64
	fallo      error
}

func (r *stubPedidoRepo) CancelarPendientesAnteriores(limite time.Time) (int64, error) {
	if r.fallo != nil {
		return 0, r.fallo
	}
	r.limite = limite
	return r.cancelados, nil
}

func (r *stubPedidoRepo) TotalVentasEnRango(desde, hasta time.Time) (decimal.Decimal, int64, error) {
	if r.fallo != nil {
		return decimal.Zero, 0, r.fallo
	}
	return r.total, r.ventas, nil
}

// recordingPinger acumula las notificaciones por tipo.
type recordingPinger struct {
	mu       sync.Mutex
	starts   []string
	oks      []string
	failures []string
}

func (p *recordingPinger) Start(uuid string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.starts = append(p.starts, uuid)
}

func (p *recordingPinger) Success(uuid string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.oks = append(p.oks, uuid)
}

func (p *recordingPinger) Fail(uuid string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures = append(p.failures, uuid)
}

func newTestUseCase(usuarios *stubUsuarioRepo, pedidos *stubPedidoRepo, scriptPath string) (*UseCase, *recordingPinger) {
	pinger := &recordingPinger{}
	health := config.HealthConfig{
		CleanupUUID:      "uuid-cleanup",
		CancelOrdersUUID: "uuid-cancel",
		SalesReportUUID:  "uuid-report",
		BackupUUID:       "uuid-backup",
	}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := NewUseCase(usuarios, pedidos, pinger, health, config.BackupConfig{ScriptPath: scriptPath}, log)
	return uc, pinger
}

func TestCleanupCodes_ReportaCantidadYPing(t *testing.T) {
	uc, pinger := newTestUseCase(&stubUsuarioRepo{limpiados: 3}, &stubPedidoRepo{}, "")

	reporte, err := uc.CleanupCodes()
	require.NoError(t, err)

	assert.Contains(t, reporte, "3 código(s)")
	assert.Equal(t, []string{"uuid-cleanup"}, pinger.starts)
	assert.Equal(t, []string{"uuid-cleanup"}, pinger.oks)
	assert.Empty(t, pinger.failures)
}

func TestCleanupCodes_FalloNoEsErrorDeOperacion(t *testing.T) {
	usuarios := &stubUsuarioRepo{fallo: errors.New("conexión perdida")}
	uc, pinger := newTestUseCase(usuarios, &stubPedidoRepo{}, "")

	reporte, err := uc.CleanupCodes()
	require.NoError(t, err)

	assert.Contains(t, reporte, "FALLO")
	assert.Contains(t, reporte, "conexión perdida")
	assert.Equal(t, []string{"uuid-cleanup"}, pinger.failures)
	assert.Empty(t, pinger.oks)
}

func TestCleanupCodes_RechazaEjecucionSolapada(t *testing.T) {
	usuarios := &stubUsuarioRepo{bloquear: make(chan struct{})}
	uc, _ := newTestUseCase(usuarios, &stubPedidoRepo{}, "")

	done := make(chan struct{})
	go func() {
		_, _ = uc.CleanupCodes()
		close(done)
	}()

	// Esperar a que la primera ejecución tome el lock.
	require.Eventually(t, func() bool {
		_, err := uc.CleanupCodes()
		return err != nil
	}, time.Second, 5*time.Millisecond)

	close(usuarios.bloquear)
	<-done

	// Con el lock libre vuelve a ejecutar.
	_, err := uc.CleanupCodes()
	assert.NoError(t, err)
}

func TestCancelOrders_UsaCorte24h(t *testing.T) {
	pedidos := &stubPedidoRepo{cancelados: 2}
	uc, pinger := newTestUseCase(&stubUsuarioRepo{}, pedidos, "")

	reporte, err := uc.CancelOrders()
	require.NoError(t, err)

	assert.Contains(t, reporte, "2 pedido(s)")
	assert.WithinDuration(t, time.Now().Add(-24*time.Hour), pedidos.limite, time.Second)
	assert.Equal(t, []string{"uuid-cancel"}, pinger.oks)
}

func TestCancelOrders_FalloNoEsErrorDeOperacion(t *testing.T) {
	pedidos := &stubPedidoRepo{fallo: errors.New("tabla bloqueada")}
	uc, pinger := newTestUseCase(&stubUsuarioRepo{}, pedidos, "")

	reporte, err := uc.CancelOrders()
	require.NoError(t, err)

	assert.Contains(t, reporte, "FALLO")
	assert.Contains(t, reporte, "tabla bloqueada")
	assert.Equal(t, []string{"uuid-cancel"}, pinger.failures)
	assert.Empty(t, pinger.oks)
}

func TestSalesReport_FormateaTotales(t *testing.T) {
	pedidos := &stubPedidoRepo{total: decimal.RequireFromString("1234.5"), ventas: 7}
	uc, pinger := newTestUseCase(&stubUsuarioRepo{}, pedidos, "")

	reporte, err := uc.SalesReport()
	require.NoError(t, err)

	assert.Contains(t, reporte, "7 pedido(s)")
	assert.Contains(t, reporte, "S/ 1234.50")
	assert.Equal(t, []string{"uuid-report"}, pinger.oks)
}

func TestSalesReport_FalloNoEsErrorDeOperacion(t *testing.T) {
	pedidos := &stubPedidoRepo{fallo: errors.New("timeout de consulta")}
	uc, pinger := newTestUseCase(&stubUsuarioRepo{}, pedidos, "")

	reporte, err := uc.SalesReport()
	require.NoError(t, err)

	assert.Contains(t, reporte, "FALLO")
	assert.Contains(t, reporte, "timeout de consulta")
	assert.Equal(t, []string{"uuid-report"}, pinger.failures)
	assert.Empty(t, pinger.oks)
}

func TestBackup_ScriptExitoso(t *testing.T) {
	script := filepath.Join(t.TempDir(), "backup.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho respaldo ok\n"), 0o755))

	uc, pinger := newTestUseCase(&stubUsuarioRepo{}, &stubPedidoRepo{}, script)

	reporte, err := uc.Backup()
	require.NoError(t, err)

	assert.Contains(t, reporte, "Respaldo completado")
	assert.Contains(t, reporte, "respaldo ok")
	assert.Equal(t, []string{"uuid-backup"}, pinger.oks)
}

func TestBackup_ScriptFallidoNoEsErrorDeOperacion(t *testing.T) {
	script := filepath.Join(t.TempDir(), "backup.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho sin espacio >&2\nexit 1\n"), 0o755))

	uc, pinger := newTestUseCase(&stubUsuarioRepo{}, &stubPedidoRepo{}, script)

	reporte, err := uc.Backup()
	require.NoError(t, err)

	assert.Contains(t, reporte, "Respaldo fallido")
	assert.Contains(t, reporte, "sin espacio")
	assert.Equal(t, []string{"uuid-backup"}, pinger.failures)
	assert.Empty(t, pinger.oks)
}

func TestScheduler_ProgramaLosTresJobs(t *testing.T) {
	uc, _ := newTestUseCase(&stubUsuarioRepo{}, &stubPedidoRepo{}, "")
	cfg := config.SchedulerConfig{
		Enabled:          true,
		CleanupCron:      "0 4 * * *",
		CancelOrdersCron: "0 * * * *",
		SalesReportCron:  "0 8 * * *",
	}
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	s := NewScheduler(uc, cfg, log)
	require.NoError(t, s.Start())
	s.Stop()
}

func TestScheduler_ExpresionInvalida(t *testing.T) {
	uc, _ := newTestUseCase(&stubUsuarioRepo{}, &stubPedidoRepo{}, "")
	cfg := config.SchedulerConfig{CleanupCron: "no-es-cron"}
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	s := NewScheduler(uc, cfg, log)
	assert.Error(t, s.Start())
}
