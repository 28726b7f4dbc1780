package domain

import (
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSourceOpen  EventType = "source_open"
	EventSourceClose EventType = "source_close"
	EventSourceError EventType = "source_error"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// SourceEvent describes one input source of a run.
// Counters are zero on open and final on close.
type SourceEvent struct {
	EventBase
	Path          string `json:"path"`
	FastPath      bool   `json:"fast_path"`
	BytesRead     int64  `json:"bytes_read"`
	LinesEmitted  int64  `json:"lines_emitted"`
	LinesSqueezed int64  `json:"lines_squeezed"`
	Err           error  `json:"-"`
}

// LifecycleHooks defines callbacks for run observability.
// Every hook is optional. Hooks never influence the bytes written.
type LifecycleHooks struct {
	OnSourceOpen  func(*SourceEvent)
	OnSourceClose func(*SourceEvent)
	OnSourceError func(*SourceEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnSourceOpen:  chain(h.OnSourceOpen, other.OnSourceOpen),
		OnSourceClose: chain(h.OnSourceClose, other.OnSourceClose),
		OnSourceError: chain(h.OnSourceError, other.OnSourceError),
	}
}

func chain(a, b func(*SourceEvent)) func(*SourceEvent) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(e *SourceEvent) {
		a(e)
		b(e)
	}
}
