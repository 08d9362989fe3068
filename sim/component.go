package sim

// A Named object is an object that has a name.
type Named interface {
	Name() string
}

// A Component is an element that is being simulated. It carries state and
// exposes its activity through hooks. Components that schedule their own
// events also implement Handler. Clock-driven components implement Clocked
// instead and leave event handling to their clock.
type Component interface {
	Named
	Hookable
}

// ComponentBase provides some functions that other component can use.
type ComponentBase struct {
	HookableBase
	name string
}

// NewComponentBase creates a new ComponentBase
func NewComponentBase(name string) *ComponentBase {
	c := new(ComponentBase)
	c.name = name
	return c
}

// Name returns the name of the component
func (c *ComponentBase) Name() string {
	return c.name
}
