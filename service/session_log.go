package service

import (
	"encoding/json"
	"fmt"

	"quantor/domain"
	"quantor/repository"
)

// SessionLog keeps the ordered behavior log and its rendered blocks in sync.
type SessionLog struct {
	repo    repository.BehaviorLogRepository
	display Display
}

func NewSessionLog(repo repository.BehaviorLogRepository, display Display) *SessionLog {
	return &SessionLog{repo: repo, display: display}
}

// Record appends the entry and renders it as a dismissible block.
func (l *SessionLog) Record(entry domain.BehaviorLogEntry) error {
	block, err := RenderBlock(entry)
	if err != nil {
		return err
	}
	if err := l.repo.Append(entry); err != nil {
		return fmt.Errorf("append log entry: %w", err)
	}
	l.display.AppendLogBlock(entry.ID, block)
	return nil
}

// Dismiss hides one rendered block. The entry itself stays in the log.
func (l *SessionLog) Dismiss(id string) {
	l.display.RemoveLogBlock(id)
}

func (l *SessionLog) Clear() error {
	if err := l.repo.Clear(); err != nil {
		return fmt.Errorf("clear log: %w", err)
	}
	l.display.RemoveLogBlocks()
	return nil
}

func (l *SessionLog) Snapshot() []domain.BehaviorLogEntry {
	return l.repo.Snapshot()
}

// RenderBlock formats an entry as indented JSON text.
func RenderBlock(entry domain.BehaviorLogEntry) (string, error) {
	b, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render log entry: %w", err)
	}
	return string(b), nil
}
