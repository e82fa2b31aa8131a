package booking

import "encoding/json"

// Selection models one equipment checkbox and its count as a single value:
// either deselected, or selected with a count of zero or more. A count can
// never exist without the selection, which rules out the inconsistent state
// of a hidden non-zero count.
type Selection struct {
	selected bool
	count    int
}

// Select returns a selected Selection with the given count (floored at 0).
func Select(count int) Selection {
	if count < 0 {
		count = 0
	}
	return Selection{selected: true, count: count}
}

// Selected reports whether the kind is ticked.
func (s Selection) Selected() bool {
	return s.selected
}

// Count returns the requested quantity. A deselected kind always counts 0.
func (s Selection) Count() int {
	if !s.selected {
		return 0
	}
	return s.count
}

// Toggle flips the selection. Deselecting zeroes the count.
func (s Selection) Toggle() Selection {
	if s.selected {
		return Selection{}
	}
	return Selection{selected: true}
}

// Increment raises the count by one. It is a no-op while deselected.
func (s Selection) Increment() Selection {
	if !s.selected {
		return s
	}
	s.count++
	return s
}

// Decrement lowers the count by one, clamped at zero.
func (s Selection) Decrement() Selection {
	if !s.selected || s.count == 0 {
		return s
	}
	s.count--
	return s
}

type selectionJSON struct {
	Selected bool `json:"selected"`
	Count    int  `json:"count"`
}

func (s Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(selectionJSON{Selected: s.selected, Count: s.count})
}

func (s *Selection) UnmarshalJSON(data []byte) error {
	var v selectionJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if !v.Selected {
		*s = Selection{}
		return nil
	}
	*s = Select(v.Count)
	return nil
}

// Equipment aggregates the rentable kinds for one booking. Counts are a
// single aggregate for the whole booking, attached to the acting user's
// payload entry, not tracked per player.
type Equipment struct {
	Rackets Selection
	Balls   Selection
}

// Counts returns the racket and ball quantities to submit.
func (e Equipment) Counts() (rackets, balls int) {
	return e.Rackets.Count(), e.Balls.Count()
}
