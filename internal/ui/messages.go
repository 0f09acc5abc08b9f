package ui

import (
	"time"

	"steamgrip/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer for animations
type tickMsg time.Time

// browserOpenedMsg contains the result of opening a store page
type browserOpenedMsg struct {
	url string
	err error
}

// pagerClosedMsg contains the result of a library pager session
type pagerClosedMsg struct {
	err error
}

// clearStatusMsg clears the status line after a delay
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
