package ebitenaudio

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeStereoS16(t *testing.T) {
	buf := encodeStereoS16([]float64{1, -2, 0})
	require.Len(t, buf, 12)
	assert.Equal(t, int16(math.MaxInt16), int16(binary.LittleEndian.Uint16(buf[0:])))
	assert.Equal(t, int16(-math.MaxInt16), int16(binary.LittleEndian.Uint16(buf[4:])))
	assert.Equal(t, int16(-math.MaxInt16), int16(binary.LittleEndian.Uint16(buf[6:])))
	assert.Zero(t, binary.LittleEndian.Uint16(buf[8:]))
}
