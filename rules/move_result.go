package rules

import "fmt"

// MoveResult tells which branch a snake move took.
type MoveResult int

const (
	// Advanced means the head moved onto a free cell.
	Advanced MoveResult = iota
	// CollidedAndReset means the head ran into the body and the snake
	// was put back at its starting state.
	CollidedAndReset
)

func (r MoveResult) String() string {
	switch r {
	case Advanced:
		return "advanced"
	case CollidedAndReset:
		return "collided-and-reset"
	}
	return fmt.Sprintf("move-result(%d)", int(r))
}

// MarshalText encodes the result by name.
func (r MoveResult) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a result name.
func (r *MoveResult) UnmarshalText(text []byte) error {
	switch string(text) {
	case "advanced":
		*r = Advanced
	case "collided-and-reset":
		*r = CollidedAndReset
	default:
		return fmt.Errorf("rules: unknown move result %q", text)
	}
	return nil
}

// CollisionPolicy decides whether the tail cell that is about to be vacated
// counts as an obstacle for the new head.
type CollisionPolicy string

const (
	// TailVacates ignores the tail when it will be trimmed this tick, so a
	// snake can follow its own tail around a tight loop.
	TailVacates CollisionPolicy = "tail-vacates"
	// TailBlocks treats every current segment as an obstacle.
	TailBlocks CollisionPolicy = "tail-blocks"
)

// DefaultCollisionPolicy is used when none is configured.
const DefaultCollisionPolicy = TailVacates

// ParseCollisionPolicy validates a policy name. An empty name selects the default.
func ParseCollisionPolicy(name string) (CollisionPolicy, error) {
	switch CollisionPolicy(name) {
	case "":
		return DefaultCollisionPolicy, nil
	case TailVacates, TailBlocks:
		return CollisionPolicy(name), nil
	}
	return "", fmt.Errorf("rules: unknown collision policy %q", name)
}
