package tasks

import (
	"github.com/robfig/cron/v3"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/pkg/config"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/pkg/logger"
)

// Scheduler programa los trabajos de mantenimiento con expresiones cron.
// El respaldo no se programa: se dispara solo manualmente.
type Scheduler struct {
	cron *cron.Cron
	uc   *UseCase
	cfg  config.SchedulerConfig
	log  *logger.Logger
}

// NewScheduler construye el scheduler sin arrancarlo.
func NewScheduler(uc *UseCase, cfg config.SchedulerConfig, log *logger.Logger) *Scheduler {
	return &Scheduler{cron: cron.New(), uc: uc, cfg: cfg, log: log}
}

// Start registra los jobs y arranca el cron en su propia goroutine.
func (s *Scheduler) Start() error {
	jobs := []struct {
		nombre string
		spec   string
		run    func() (string, error)
	}{
		{"cleanup_codes", s.cfg.CleanupCron, s.uc.CleanupCodes},
		{"cancel_orders", s.cfg.CancelOrdersCron, s.uc.CancelOrders},
		{"sales_report", s.cfg.SalesReportCron, s.uc.SalesReport},
	}

	for _, j := range jobs {
		nombre, run := j.nombre, j.run
		if _, err := s.cron.AddFunc(j.spec, func() { s.uc.ejecutar(nombre, run) }); err != nil {
			return err
		}
		s.log.Info().Str("job", nombre).Str("cron", j.spec).Msg("job programado")
	}

	s.cron.Start()
	return nil
}

// Stop detiene el cron y espera a que terminen los jobs en curso.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("scheduler detenido")
}
