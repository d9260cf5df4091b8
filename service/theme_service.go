package service

import (
	"context"
	"fmt"
	"sync"

	"quantor/domain"
	"quantor/logger"
	"quantor/repository"
)

// ThemeService switches between the dark and light themes and persists the
// choice under ThemeStorageKey. Load and Toggle are serialized so each
// read-flip-write sees the previous write.
type ThemeService struct {
	mu      sync.Mutex
	store   repository.KeyValueStore
	display ThemeDisplay
}

func NewThemeService(store repository.KeyValueStore, display ThemeDisplay) *ThemeService {
	return &ThemeService{store: store, display: display}
}

// Current returns the persisted theme, dark when nothing is stored.
func (s *ThemeService) Current(ctx context.Context) (domain.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current(ctx)
}

func (s *ThemeService) current(ctx context.Context) (domain.Theme, error) {
	val, ok, err := s.store.Get(ctx, ThemeStorageKey)
	if err != nil {
		return domain.ThemeDark, fmt.Errorf("read theme: %w", err)
	}
	if !ok {
		return domain.ThemeDark, nil
	}
	return domain.ParseTheme(val), nil
}

// Load applies the persisted theme without toggling it.
func (s *ThemeService) Load(ctx context.Context) (domain.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	theme, err := s.current(ctx)
	if err != nil {
		return theme, err
	}
	return theme, s.apply(ctx, theme)
}

// Toggle flips the persisted theme, applies it and stores the new value.
func (s *ThemeService) Toggle(ctx context.Context) (domain.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.current(ctx)
	if err != nil {
		return current, err
	}
	next := current.Toggle()
	if err := s.apply(ctx, next); err != nil {
		return current, err
	}
	logger.Info(ctx, "theme toggled", "from", current, "to", next)
	return next, nil
}

func (s *ThemeService) apply(ctx context.Context, theme domain.Theme) error {
	s.display.ApplyTheme(theme.Appearance())
	if err := s.store.Set(ctx, ThemeStorageKey, string(theme)); err != nil {
		logger.ErrorWithErr(ctx, "failed to persist theme", err, "theme", theme)
		return fmt.Errorf("persist theme: %w", err)
	}
	return nil
}
