package sim

// HookPos names a position in the simulation where hooks are invoked, such
// as before an event runs or when a counter steps.
type HookPos struct {
	Name string
}

// HookPosBeforeEvent is a hook position that triggers before handling an event
var HookPosBeforeEvent = &HookPos{Name: "BeforeEvent"}

// HookPosAfterEvent is a hook position that triggers after handling an event
var HookPosAfterEvent = &HookPos{Name: "AfterEvent"}

// HookCtx carries the information about the site that invoked a hook. Domain
// is the hookable the hook is attached to, Item is the object the position
// is about, and Detail holds position-specific data, such as the old and new
// levels of a wire.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
	Detail interface{}
}

// Hook is a short piece of program that can be invoked by a hookable object.
type Hook interface {
	// Func determines what to do if hook is invoked.
	Func(ctx HookCtx)
}

// Hookable defines an object that accepts Hooks
type Hookable interface {
	// AcceptHook registers a hook
	AcceptHook(hook Hook)
}

// A HookableBase provides the hook registry for types that implement the
// Hookable interface. The zero value is ready to use.
type HookableBase struct {
	Hooks []Hook
}

// AcceptHook registers a hook
func (h *HookableBase) AcceptHook(hook Hook) {
	h.Hooks = append(h.Hooks, hook)
}

// InvokeHook calls the registered hooks in registration order.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.Hooks {
		hook.Func(ctx)
	}
}
