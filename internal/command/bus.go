// Package command decouples panes that need to cause effects in other panes.
//
// A pane never holds a reference to a sibling. It emits a named command on the
// Bus, and a handler registered at startup, closed over exactly the state it
// needs, carries out the effect.
package command

import (
	"fmt"

	"github.com/muurk/paddyterm/internal/content"
)

// Command names.
const (
	LoadPageName = "LOAD_PAGE"
	LoadTabName  = "LOAD_TAB"
)

// Command is a named notification carried on the bus.
type Command interface {
	Name() string
}

// LoadPage asks for a page to be fetched and shown.
type LoadPage struct {
	Page string
}

// Name implements Command.
func (LoadPage) Name() string { return LoadPageName }

// LoadTab asks for a tab of the current page to be shown.
type LoadTab struct {
	TabID    int
	PageInfo content.PageInfo
}

// Name implements Command.
func (LoadTab) Name() string { return LoadTabName }

// Handler carries out one command.
type Handler func(cmd Command) error

// Dispatcher is what panes hold to emit commands.
type Dispatcher interface {
	Dispatch(cmd Command) error
}

// Bus maps command names to handlers.
type Bus struct {
	handlers map[string]Handler
	observer func(cmd Command, err error)
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[string]Handler)}
}

// Register installs the handler for name, replacing any previous one.
func (b *Bus) Register(name string, h Handler) {
	if h == nil {
		panic(fmt.Sprintf("command: nil handler for %s", name))
	}
	b.handlers[name] = h
}

// Observe installs a function called after every handled command.
func (b *Bus) Observe(fn func(cmd Command, err error)) {
	b.observer = fn
}

// Dispatch runs the handler registered for cmd. Commands nobody registered
// for are dropped.
func (b *Bus) Dispatch(cmd Command) error {
	h, ok := b.handlers[cmd.Name()]
	if !ok {
		return nil
	}
	err := h(cmd)
	if b.observer != nil {
		b.observer(cmd, err)
	}
	return err
}
