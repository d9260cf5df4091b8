package repository

import "quantor/domain"

// BehaviorLogRepository holds the ordered session log.
type BehaviorLogRepository interface {
	Append(entry domain.BehaviorLogEntry) error
	Clear() error
	Snapshot() []domain.BehaviorLogEntry
}
