package bowling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSplit(t *testing.T) {
	tcs := []struct {
		name     string
		standing Pins
		want     bool
	}{
		{"seven ten", NewPins(7, 10), true},
		{"seven nine", NewPins(7, 9), true},
		{"baby split three ten", NewPins(3, 10), true},
		{"baby split two seven", NewPins(2, 7), true},
		{"five six", NewPins(5, 6), true},
		{"big four", NewPins(4, 6, 7, 10), true},
		{"six seven", NewPins(6, 7), true},
		{"head pin standing", NewPins(1, 7, 10), false},
		{"single pin", NewPins(10), false},
		{"six ten", NewPins(6, 10), false},
		{"bucket", NewPins(2, 4, 5, 8), false},
		{"four seven", NewPins(4, 7), false},
		{"nothing standing", 0, false},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsSplit(tc.standing))
		})
	}
}
