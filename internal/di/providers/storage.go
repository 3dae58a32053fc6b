package providers

import (
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/feedbackboardapp/feedback-board/internal/config"
	"github.com/feedbackboardapp/feedback-board/internal/snapshot"
	"github.com/feedbackboardapp/feedback-board/internal/snapshot/sqlite"
)

// SnapshotStoreHandle wraps the snapshot store with shutdown capability.
type SnapshotStoreHandle struct {
	snapshot.Store
}

// Shutdown implements do.Shutdownable.
func (h *SnapshotStoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideSnapshotStore provides the snapshot store selected by the
// configured backend.
func ProvideSnapshotStore(i do.Injector) (*SnapshotStoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*slog.Logger](i)

	path := cfg.SnapshotPath()

	var (
		store snapshot.Store
		err   error
	)
	switch cfg.Data.Backend {
	case config.BackendSQLite:
		store, err = sqlite.Open(path, log)
	case config.BackendBadger:
		store, err = snapshot.OpenBadger(path, log)
	default:
		return nil, fmt.Errorf("unknown snapshot backend %q", cfg.Data.Backend)
	}
	if err != nil {
		return nil, err
	}

	log.Info("Snapshot store initialized", "backend", cfg.Data.Backend, "path", path)

	return &SnapshotStoreHandle{Store: store}, nil
}
