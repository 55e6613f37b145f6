package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/invite-cards/internal/config"
	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/MKhiriev/invite-cards/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the server's background workers. Disabled workers are
// left out.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.SettingsRefreshInterval > 0 {
		w.workers = append(w.workers, NewSettingsRefresher(services.SettingsService, cfg.SettingsRefreshInterval, logger))
	}
	return w
}

// NewWorkersOf groups already built workers.
func NewWorkersOf(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Len reports how many workers are enabled.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and blocks until all of them
// returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
