package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHotelRef(t *testing.T) {
	tests := []struct {
		in   string
		want HotelRef
	}{
		{"own_ATH001", HotelRef{Source: SourceOwned, Code: "ATH001"}},
		{"OWN_ATH001", HotelRef{Source: SourceOwned, Code: "ATH001"}},
		{"ext_88123", HotelRef{Source: SourceExternal, Code: "88123"}},
		// A code may itself contain underscores.
		{"own_ATH_CENTER_1", HotelRef{Source: SourceOwned, Code: "ATH_CENTER_1"}},
	}

	for _, tt := range tests {
		ref, err := ParseHotelRef(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, ref, tt.in)
	}
}

func TestParseHotelRef_Malformed(t *testing.T) {
	for _, in := range []string{"", "ATH001", "own_", "xyz_ATH001", "_ATH001"} {
		_, err := ParseHotelRef(in)
		assert.ErrorIs(t, err, ErrValidation, in)
	}
}

func TestHotelRef_String_RoundTrip(t *testing.T) {
	ref := HotelRef{Source: SourceOwned, Code: "ATH001"}
	parsed, err := ParseHotelRef(ref.String())
	require.NoError(t, err)
	assert.Equal(t, ref, parsed)
}
