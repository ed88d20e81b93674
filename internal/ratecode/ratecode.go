// Package ratecode encodes one room occupancy into the compact rate
// identifier that travels through search, availability and booking.
//
// Wire format: "rt_{roomTypeID}-{adults}" with no children, otherwise
// "rt_{roomTypeID}-{adults}_{age1}_{age2}...". The format is persisted
// and re-parsed during booking confirmation, so both directions must
// stay byte-compatible.
package ratecode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/achilleaskar/TravelBridge-sub001/internal/domain"
)

const prefix = "rt_"

// Encode builds the rate identifier for one room type and one room's
// occupancy.
func Encode(roomTypeID int64, room domain.PartyRoom) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(strconv.FormatInt(roomTypeID, 10))
	b.WriteByte('-')
	b.WriteString(strconv.Itoa(room.Adults))
	for _, age := range room.ChildrenAges {
		b.WriteByte('_')
		b.WriteString(strconv.Itoa(age))
	}
	return b.String()
}

// Decode parses a rate identifier back into the room type id and the
// occupancy it was built from. The suffix after the last '-' is the
// adults count followed by '_'-separated child ages.
func Decode(id string) (int64, domain.PartyRoom, error) {
	if !strings.HasPrefix(id, prefix) {
		return 0, domain.PartyRoom{}, fmt.Errorf("%w: rate id %q lacks %q prefix", domain.ErrValidation, id, prefix)
	}
	sep := strings.LastIndexByte(id, '-')
	if sep < len(prefix) || sep == len(id)-1 {
		return 0, domain.PartyRoom{}, fmt.Errorf("%w: malformed rate id %q", domain.ErrValidation, id)
	}

	roomTypeID, err := strconv.ParseInt(id[len(prefix):sep], 10, 64)
	if err != nil {
		return 0, domain.PartyRoom{}, fmt.Errorf("%w: bad room type in rate id %q", domain.ErrValidation, id)
	}

	tokens := strings.Split(id[sep+1:], "_")
	adults, err := strconv.Atoi(tokens[0])
	if err != nil || adults < 1 {
		return 0, domain.PartyRoom{}, fmt.Errorf("%w: bad adults count in rate id %q", domain.ErrValidation, id)
	}

	room := domain.PartyRoom{Adults: adults}
	for _, tok := range tokens[1:] {
		age, err := strconv.Atoi(tok)
		if err != nil || age < 0 {
			return 0, domain.PartyRoom{}, fmt.Errorf("%w: bad child age in rate id %q", domain.ErrValidation, id)
		}
		room.ChildrenAges = append(room.ChildrenAges, age)
	}

	return roomTypeID, room, nil
}
