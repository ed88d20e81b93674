package domain

import "fmt"

// PartyRoom is one requested physical room: how many adults and the
// ages of the children staying in it.
type PartyRoom struct {
	Adults       int   `json:"adults"`
	ChildrenAges []int `json:"children_ages,omitempty"`
}

// PartyConfiguration is the ordered, non-empty set of rooms a guest
// asks for. Ephemeral: built per request, never persisted.
type PartyConfiguration struct {
	Rooms []PartyRoom `json:"rooms"`
}

func (p PartyConfiguration) Validate() error {
	if len(p.Rooms) == 0 {
		return fmt.Errorf("%w: party must contain at least one room", ErrValidation)
	}
	for i, r := range p.Rooms {
		if r.Adults < 1 {
			return fmt.Errorf("%w: room %d must have at least one adult", ErrValidation, i+1)
		}
		for _, age := range r.ChildrenAges {
			if age < 0 {
				return fmt.Errorf("%w: room %d has a negative child age", ErrValidation, i+1)
			}
		}
	}
	return nil
}

// TotalRooms is the number of physical rooms requested, one per entry.
func (p PartyConfiguration) TotalRooms() int { return len(p.Rooms) }

func (p PartyConfiguration) TotalAdults() int {
	var n int
	for _, r := range p.Rooms {
		n += r.Adults
	}
	return n
}

func (p PartyConfiguration) TotalChildren() int {
	var n int
	for _, r := range p.Rooms {
		n += len(r.ChildrenAges)
	}
	return n
}
