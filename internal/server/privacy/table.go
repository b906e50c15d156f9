package privacy

import "fmt"

// Table binds one value of type T to each privacy level. Components keep
// per-level state (clients, policies, metrics labels) in a Table instead of
// branching on the level themselves.
type Table[T any] struct {
	ZeroKnowledge T
	ServerManaged T
}

// Resolve returns the value bound to l. It fails only for unknown levels.
func (t Table[T]) Resolve(l Level) (T, error) {
	switch l {
	case ZeroKnowledge:
		return t.ZeroKnowledge, nil
	case ServerManaged:
		return t.ServerManaged, nil
	default:
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrUnknownLevel, string(l))
	}
}

// MapTable builds a Table[U] by applying fn to every entry of t.
func MapTable[T, U any](t Table[T], fn func(Level, T) (U, error)) (Table[U], error) {
	var out Table[U]
	var err error
	if out.ZeroKnowledge, err = fn(ZeroKnowledge, t.ZeroKnowledge); err != nil {
		return Table[U]{}, err
	}
	if out.ServerManaged, err = fn(ServerManaged, t.ServerManaged); err != nil {
		return Table[U]{}, err
	}
	return out, nil
}
