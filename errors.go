package sdecs

import "github.com/rotisserie/eris"

var (
	// ErrStaleHandle is returned when an operation references an entity that
	// was destroyed, recycled or never created.
	ErrStaleHandle = eris.New("stale entity handle")
	// ErrDuplicateComponent is returned when adding a component type the
	// entity already holds. The stored value is left untouched.
	ErrDuplicateComponent = eris.New("entity already has component")
	// ErrUnknownComponentType is returned when a component type was never
	// registered.
	ErrUnknownComponentType = eris.New("unknown component type")
	// ErrComponentNotFound reports an alive entity that does not hold the
	// requested component. It is the "absent" result, not a failure.
	ErrComponentNotFound = eris.New("component not found on entity")
)
