package http

import (
	"testing"
	"time"

	"quantor/repository"
	"quantor/service"
	"quantor/view"
)

type testApp struct {
	page    *view.Page
	form    *service.FormController
	theme   *service.ThemeService
	store   *repository.MemoryStore
	pages   *PageHandler
	api     *EOQHandler
	limiter *RateLimiter
}

func newTestApp(t *testing.T, capacity int) *testApp {
	t.Helper()

	page := view.NewPage(time.Hour)
	log := service.NewSessionLog(repository.NewBehaviorLogMemory(), page)
	form := service.NewFormController(page, log)
	store := repository.NewMemoryStore()
	theme := service.NewThemeService(store, page)

	limiter := NewRateLimiter(capacity, time.Minute)
	t.Cleanup(limiter.Stop)

	return &testApp{
		page:    page,
		form:    form,
		theme:   theme,
		store:   store,
		pages:   NewPageHandler(page, form, theme, 3),
		api:     NewEOQHandler(form, theme),
		limiter: limiter,
	}
}
