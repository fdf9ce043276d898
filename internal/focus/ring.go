// Package focus sequences keyboard focus between panes.
package focus

// Ring is a fixed, cyclic order of pane names with one current member. It
// knows only names; notifying panes of a change is the caller's job.
type Ring struct {
	members []string
	current int
}

// NewRing creates a ring over members with the first one focused. It panics
// when members is empty, since exactly one pane must always hold focus.
func NewRing(members ...string) *Ring {
	if len(members) == 0 {
		panic("focus: ring needs at least one member")
	}
	m := make([]string, len(members))
	copy(m, members)
	return &Ring{members: m}
}

// Current returns the focused member.
func (r *Ring) Current() string {
	return r.members[r.current]
}

// Advance moves focus to the next member, wrapping after the last, and
// returns it.
func (r *Ring) Advance() string {
	r.current = (r.current + 1) % len(r.members)
	return r.Current()
}

// IsFocused reports whether name is the focused member.
func (r *Ring) IsFocused(name string) bool {
	return r.Current() == name
}

// Focus moves focus directly to name. It reports false, leaving focus
// unchanged, when name is not a member.
func (r *Ring) Focus(name string) bool {
	for i, m := range r.members {
		if m == name {
			r.current = i
			return true
		}
	}
	return false
}

// Members returns the ring order.
func (r *Ring) Members() []string {
	out := make([]string, len(r.members))
	copy(out, r.members)
	return out
}
