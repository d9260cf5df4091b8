// Package view holds the state of the single Quantor page. It implements
// the display interfaces the form and theme controllers render to.
package view

import (
	"sync"
	"time"

	"quantor/domain"
	"quantor/service"
)

var (
	_ service.Display      = (*Page)(nil)
	_ service.ThemeDisplay = (*Page)(nil)
)

// Notification is a transient message shown to the user.
type Notification struct {
	ID      uint64
	Message string
}

// LogBlock is one rendered behavior log entry.
type LogBlock struct {
	ID   string
	Text string
}

// Snapshot is an immutable copy of the page state.
type Snapshot struct {
	Values        map[domain.Field]string
	Invalid       map[domain.Field]bool
	EOQText       string
	TotalCostText string
	Notifications []Notification
	LogBlocks     []LogBlock
	Appearance    domain.Appearance
}

// Page is safe for concurrent use.
type Page struct {
	mu            sync.RWMutex
	values        map[domain.Field]string
	invalid       map[domain.Field]bool
	eoqText       string
	totalCostText string
	notifications []Notification
	nextNoticeID  uint64
	blocks        []LogBlock
	appearance    domain.Appearance

	notificationDelay time.Duration
	afterFunc         func(time.Duration, func())
}

// NewPage returns an empty page whose notifications disappear after delay.
func NewPage(delay time.Duration) *Page {
	return &Page{
		values:            make(map[domain.Field]string),
		invalid:           make(map[domain.Field]bool),
		appearance:        domain.ThemeDark.Appearance(),
		notificationDelay: delay,
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

func (p *Page) SetFieldValue(field domain.Field, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[field] = value
}

func (p *Page) MarkInvalid(field domain.Field, invalid bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if invalid {
		p.invalid[field] = true
		return
	}
	delete(p.invalid, field)
}

func (p *Page) ShowResult(eoqText, totalCostText string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.eoqText = eoqText
	p.totalCostText = totalCostText
}

func (p *Page) ClearResult() {
	p.ShowResult("", "")
}

// Notify appends a notification and schedules its removal. The removal is
// fire-and-forget and cannot be cancelled.
func (p *Page) Notify(message string) {
	p.mu.Lock()
	p.nextNoticeID++
	id := p.nextNoticeID
	p.notifications = append(p.notifications, Notification{ID: id, Message: message})
	p.mu.Unlock()

	p.afterFunc(p.notificationDelay, func() { p.removeNotification(id) })
}

func (p *Page) removeNotification(id uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, n := range p.notifications {
		if n.ID == id {
			p.notifications = append(p.notifications[:i], p.notifications[i+1:]...)
			return
		}
	}
}

func (p *Page) AppendLogBlock(id, block string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.blocks = append(p.blocks, LogBlock{ID: id, Text: block})
}

func (p *Page) RemoveLogBlock(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, b := range p.blocks {
		if b.ID == id {
			p.blocks = append(p.blocks[:i], p.blocks[i+1:]...)
			return
		}
	}
}

func (p *Page) RemoveLogBlocks() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.blocks = nil
}

func (p *Page) ApplyTheme(appearance domain.Appearance) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.appearance = appearance
}

func (p *Page) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	s := Snapshot{
		Values:        make(map[domain.Field]string, len(p.values)),
		Invalid:       make(map[domain.Field]bool, len(p.invalid)),
		EOQText:       p.eoqText,
		TotalCostText: p.totalCostText,
		Notifications: append([]Notification(nil), p.notifications...),
		LogBlocks:     append([]LogBlock(nil), p.blocks...),
		Appearance:    p.appearance,
	}
	for k, v := range p.values {
		s.Values[k] = v
	}
	for k, v := range p.invalid {
		s.Invalid[k] = v
	}
	return s
}
