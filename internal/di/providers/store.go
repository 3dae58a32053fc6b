package providers

import (
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/feedbackboardapp/feedback-board/internal/notify"
	"github.com/feedbackboardapp/feedback-board/internal/store"
)

// ProvideBroadcaster provides the state change broadcaster.
func ProvideBroadcaster(i do.Injector) (*notify.Broadcaster, error) {
	log := do.MustInvoke[*slog.Logger](i)
	return notify.NewBroadcaster(log), nil
}

// ProvideStore provides the application state store.
func ProvideStore(i do.Injector) (*store.Store, error) {
	log := do.MustInvoke[*slog.Logger](i)
	snapshots := do.MustInvoke[*SnapshotStoreHandle](i)
	broadcaster := do.MustInvoke[*notify.Broadcaster](i)

	return store.New(snapshots, log, broadcaster), nil
}
