// Package di provides dependency injection configuration for the feedback board engine.
package di

import (
	"context"
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/feedbackboardapp/feedback-board/internal/config"
	"github.com/feedbackboardapp/feedback-board/internal/di/providers"
	"github.com/feedbackboardapp/feedback-board/internal/notify"
	"github.com/feedbackboardapp/feedback-board/internal/store"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Storage layer
	do.Provide(injector, providers.ProvideSnapshotStore)

	// State layer
	do.Provide(injector, providers.ProvideBroadcaster)
	do.Provide(injector, providers.ProvideStore)

	// Search layer
	do.Provide(injector, providers.ProvideSearchIndex)

	return injector
}

// Bootstrap initializes all services and loads the persisted state.
// The search index is wired before the load so the warm pass can
// populate it.
func Bootstrap(ctx context.Context, injector *do.RootScope) (*store.Store, error) {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*slog.Logger](injector)
	_ = do.MustInvoke[*providers.SnapshotStoreHandle](injector)
	_ = do.MustInvoke[*notify.Broadcaster](injector)

	st := do.MustInvoke[*store.Store](injector)
	_ = do.MustInvoke[*providers.SearchIndexHandle](injector)

	st.Load(ctx)

	return st, nil
}
