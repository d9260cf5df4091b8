package cli

import (
	"context"
	"fmt"

	"quantor/config"
	"quantor/repository"
	"quantor/service"
	"quantor/view"
)

// app bundles the components every command wires the same way.
type app struct {
	page  *view.Page
	form  *service.FormController
	theme *service.ThemeService
	store repository.KeyValueStore
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	store, err := repository.Open(ctx, cfg.StoreOptions())
	if err != nil {
		return nil, fmt.Errorf("open theme store: %w", err)
	}

	page := view.NewPage(cfg.Notification.Delay)
	log := service.NewSessionLog(repository.NewBehaviorLogMemory(), page)

	return &app{
		page:  page,
		form:  service.NewFormController(page, log),
		theme: service.NewThemeService(store, page),
		store: store,
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}
