package ksoft

import (
	"reflect"
	"runtime"

	"github.com/rs/zerolog/log"
)

// hookRegistry holds the registered ban hooks in registration order.
//
// Hooks are identified by their function pointer, so registering the
// same named function or the same stored closure twice collapses into a
// single registration.
type hookRegistry struct {
	hooks OrderedSyncMap[uintptr, Hook]
}

// newHookRegistry creates an empty hookRegistry.
func newHookRegistry() *hookRegistry {
	return &hookRegistry{hooks: NewOrderedSyncMap[uintptr, Hook]()}
}

// Register adds a hook to the registry.
// Registering an already present hook is a no-op.
func (hr *hookRegistry) Register(hook Hook) {
	if hook == nil {
		return
	}

	hr.hooks.Set(hookKey(hook), hook)

	log.Debug().Str("Hook", hookName(hook)).Msg("Registered ban hook.")
}

// Unregister removes a hook from the registry.
// Removing an absent hook is a no-op.
func (hr *hookRegistry) Unregister(hook Hook) {
	if hook == nil {
		return
	}

	hr.hooks.Del(hookKey(hook))

	log.Debug().Str("Hook", hookName(hook)).Msg("Unregistered ban hook.")
}

// Len returns the number of registered hooks.
func (hr *hookRegistry) Len() int {
	return hr.hooks.Len()
}

// Dispatch delivers the event to every registered hook, sequentially and
// in registration order.
//
// The hook set is snapshotted up front, so hooks added or removed while
// a dispatch is in flight take effect from the next event on. A
// panicking hook is logged and skipped; Dispatch never propagates a
// failure to its caller.
func (hr *hookRegistry) Dispatch(event *Event) {
	hooks := hr.hooks.Values()

	log.Debug().
		Str("Event", event.Type.String()).
		Int("Hooks", len(hooks)).
		Msg("Dispatching ban event.")

	for _, hook := range hooks {
		hr.invoke(hook, event)
	}
}

// invoke runs a single hook, containing any panic it raises.
func (hr *hookRegistry) invoke(hook Hook, event *Event) {
	defer func() {
		if err := recover(); err != nil {
			log.Warn().
				Str("Hook", hookName(hook)).
				Str("Event", event.Type.String()).
				Interface("Panic", err).
				Msg("Ban hook panicked.")
		}
	}()

	hook(event)
}

// hookKey returns the identity key of a hook function.
func hookKey(hook Hook) uintptr {
	return reflect.ValueOf(hook).Pointer()
}

// hookName returns the symbol name of a hook function, for logging.
func hookName(hook Hook) string {
	if fn := runtime.FuncForPC(hookKey(hook)); fn != nil {
		return fn.Name()
	}
	return "unknown"
}
