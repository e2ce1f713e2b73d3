package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestPresentValueSchedule(t *testing.T) {
	schedule := PresentValueSchedule(1000.0, 0.05, 0.1, 10)
	require.Len(t, schedule, 10)

	// First term: 1000 * 1.05 / 1.1
	assert.InDelta(t, 1000.0*1.05/1.1, schedule[0], 1e-9)

	// Growth below discount: each successive term shrinks
	for i := 1; i < len(schedule); i++ {
		assert.Less(t, schedule[i], schedule[i-1], "term %d should be below term %d", i, i-1)
	}

	// A plain ascending accumulation over the schedule reproduces the
	// accumulator bit-for-bit.
	sum := 0.0
	for _, term := range schedule {
		sum += term
	}
	assert.Equal(t, IntrinsicValue(1000.0, 0.05, 0.1, 10), sum)

	// floats.Sum unrolls its accumulation, so it is only guaranteed to agree
	// up to rounding of the final bit.
	assert.InDelta(t, IntrinsicValue(1000.0, 0.05, 0.1, 10), floats.Sum(schedule), 1e-9)
}

func TestPresentValueScheduleEmpty(t *testing.T) {
	assert.Nil(t, PresentValueSchedule(1000.0, 0.05, 0.1, 0))
	assert.Nil(t, PresentValueSchedule(1000.0, 0.05, 0.1, -1))
}
