// Package healthcheck emite pings best-effort a un servicio tipo hc-ping.com
// para monitorear los jobs programados. Los errores se registran y se descartan:
// un monitoreo caído nunca debe afectar al job.
package healthcheck

import (
	"net/http"
	"time"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/pkg/logger"
)

// Pinger cliente HTTP de pings a healthchecks.
type Pinger struct {
	baseURL string
	client  *http.Client
	log     *logger.Logger
}

// NewPinger construye el pinger. baseURL vacío deshabilita todos los pings.
func NewPinger(baseURL string, log *logger.Logger) *Pinger {
	return &Pinger{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// Start notifica el inicio del job.
func (p *Pinger) Start(uuid string) { p.ping(uuid, "/start") }

// Success notifica que el job terminó bien.
func (p *Pinger) Success(uuid string) { p.ping(uuid, "") }

// Fail notifica que el job falló.
func (p *Pinger) Fail(uuid string) { p.ping(uuid, "/fail") }

func (p *Pinger) ping(uuid, sufijo string) {
	if p.baseURL == "" || uuid == "" {
		return
	}
	url := p.baseURL + "/" + uuid + sufijo
	resp, err := p.client.Get(url)
	if err != nil {
		p.log.Warn().Err(err).Str("url", url).Msg("ping de healthcheck falló")
		return
	}
	_ = resp.Body.Close()
}
