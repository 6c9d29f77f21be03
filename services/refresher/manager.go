// Package refresher keeps the shared reference cache warm during
// long-running console sessions.
package refresher

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/edusphere/admin-client/services/refdata"
	"github.com/edusphere/admin-client/utils"
)

// DefaultSpec re-warms every 10 minutes, with seconds precision.
const DefaultSpec = "0 */10 * * * *"

// Manager schedules the periodic cache warm.
type Manager struct {
	cron    *cron.Cron
	refdata *refdata.Service
	logger  *utils.Logger
	spec    string
}

// NewManager creates a manager around the reference-data service.
func NewManager(ref *refdata.Service, spec string) *Manager {
	if spec == "" {
		spec = DefaultSpec
	}
	return &Manager{
		cron:    cron.New(cron.WithSeconds()),
		refdata: ref,
		logger:  utils.NewLogger(),
		spec:    spec,
	}
}

// Start registers the warm job and starts the scheduler.
func (m *Manager) Start() error {
	m.logger.Log("Starting reference cache refresher...")

	_, err := m.cron.AddFunc(m.spec, m.warm)
	if err != nil {
		return err
	}

	m.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (m *Manager) Stop() {
	m.logger.Log("Stopping reference cache refresher...")
	ctx := m.cron.Stop()
	<-ctx.Done()
}

func (m *Manager) warm() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := m.refdata.Warm(ctx); err != nil {
		m.logger.Logf("reference cache warm failed: %v", err)
		return
	}
	m.logger.Log("reference cache warmed")
}
