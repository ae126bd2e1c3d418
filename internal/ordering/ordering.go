// Package ordering maintains strict, contiguous, zero-based orderings for
// lists of entities carrying an integer sequence index. Moving an element
// one step swaps it with its immediate neighbor; exactly two indices change,
// never a full renumbering.
package ordering

// Direction is the direction an element moves within its list
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// IsValid checks if the Direction is valid
func (d Direction) IsValid() bool {
	return d == DirectionUp || d == DirectionDown
}

// Move plans the neighbor swap for moving the element at index one step in
// the given direction within a list of length elements. It returns the two
// positions whose sequence indices must be reassigned: the element at
// `index` takes position `neighbor` and vice versa. Moving the first
// element up or the last element down is a no-op and returns ok=false.
func Move(length, index int, dir Direction) (neighbor int, ok bool) {
	if index < 0 || index >= length {
		return 0, false
	}
	switch dir {
	case DirectionUp:
		if index == 0 {
			return 0, false
		}
		return index - 1, true
	case DirectionDown:
		if index == length-1 {
			return 0, false
		}
		return index + 1, true
	}
	return 0, false
}

// NextIndex returns the sequence index for a new entity appended to a list
// of siblings: max(existing)+1, or 0 for an empty list. Gaps in the
// existing indices are tolerated.
func NextIndex(existing []int) int {
	next := 0
	for _, idx := range existing {
		if idx >= next {
			next = idx + 1
		}
	}
	return next
}
