package pane

import (
	"fmt"

	"github.com/muurk/paddyterm/internal/surface"
)

// Pane names.
const (
	HeaderName      = "header"
	FooterName      = "footer"
	NavMenuName     = "nav"
	TabStripName    = "tabs"
	ContentListName = "content"
)

// Key is a navigation key delivered to the focused pane.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyConfirm
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyConfirm:
		return "confirm"
	default:
		return fmt.Sprintf("Key(%d)", int(k))
	}
}

// Pane is one independently rendered region of the screen.
type Pane interface {
	// Name identifies the pane in the registry and the focus ring.
	Name() string

	// FullRender redraws everything unconditionally onto scr and returns the
	// number of surfaces blitted.
	FullRender(scr *surface.Screen, size surface.Size, focused bool) int

	// UpdateRender stages only what changed since the last render and returns
	// the number of surfaces blitted.
	UpdateRender(scr *surface.Screen, size surface.Size) int

	// ChangeFocus tells the pane whether it holds focus. Only an actual
	// transition causes a redraw.
	ChangeFocus(focused bool)

	// Resize recomputes geometry for a new terminal size. On error nothing is
	// changed.
	Resize(size surface.Size, focused bool) error

	// HandleKey acts on a navigation key while the pane is focused.
	HandleKey(k Key) error
}

// ResizeChecker is implemented by panes whose geometry can be impossible at
// some terminal sizes. CheckResize reports the error Resize would return
// without changing anything.
type ResizeChecker interface {
	CheckResize(size surface.Size) error
}

// Registry owns every pane, in render order.
type Registry struct {
	panes  []Pane
	byName map[string]Pane
}

// NewRegistry creates a registry. Names must be unique.
func NewRegistry(panes ...Pane) *Registry {
	r := &Registry{byName: make(map[string]Pane, len(panes))}
	for _, p := range panes {
		if _, dup := r.byName[p.Name()]; dup {
			panic(fmt.Sprintf("pane: duplicate pane %q", p.Name()))
		}
		r.panes = append(r.panes, p)
		r.byName[p.Name()] = p
	}
	return r
}

// All returns the panes in render order.
func (r *Registry) All() []Pane {
	return r.panes
}

// Get returns the pane registered under name.
func (r *Registry) Get(name string) (Pane, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// TabStrip returns the registered tab strip. Its absence is a wiring bug.
func (r *Registry) TabStrip() *TabStrip {
	return mustGet[*TabStrip](r, TabStripName)
}

// ContentList returns the registered content list.
func (r *Registry) ContentList() *ContentList {
	return mustGet[*ContentList](r, ContentListName)
}

// NavMenu returns the registered navigation menu.
func (r *Registry) NavMenu() *NavMenu {
	return mustGet[*NavMenu](r, NavMenuName)
}

// Footer returns the registered footer.
func (r *Registry) Footer() *Footer {
	return mustGet[*Footer](r, FooterName)
}

func mustGet[T Pane](r *Registry, name string) T {
	p, ok := r.byName[name]
	if !ok {
		panic(fmt.Sprintf("pane: %q not registered", name))
	}
	t, ok := p.(T)
	if !ok {
		panic(fmt.Sprintf("pane: %q has type %T", name, p))
	}
	return t
}
