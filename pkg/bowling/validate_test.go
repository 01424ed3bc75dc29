package bowling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidNumber0to10(t *testing.T) {
	assert.False(t, IsValidNumber0to10(-1))
	assert.True(t, IsValidNumber0to10(0))
	assert.True(t, IsValidNumber0to10(10))
	assert.False(t, IsValidNumber0to10(11))
}

func TestIsValidFrameScore(t *testing.T) {
	tcs := []struct {
		name   string
		value  int
		frame  int
		throw  int
		frames []Frame
		want   bool
	}{
		{"first throw", 7, 0, 0, EmptyFrames(), true},
		{"out of range", 11, 0, 0, EmptyFrames(), false},
		{"negative", -1, 0, 0, EmptyFrames(), false},
		{"second without first", 3, 0, 1, EmptyFrames(), false},
		{"second completes spare", 3, 0, 1, game([]int{7}), true},
		{"second exceeds rack", 4, 0, 1, game([]int{7}), false},
		{"second after strike", 0, 0, 1, game([]int{10}), false},
		{"third throw in regular frame", 1, 4, 2, game(nil, nil, nil, nil, []int{3, 4}), false},
		{"frame out of range", 1, 10, 0, EmptyFrames(), false},
		{"negative frame", 1, -1, 0, EmptyFrames(), false},

		{"tenth first", 10, 9, 0, tenth(), true},
		{"tenth second without first", 5, 9, 1, tenth(), false},
		{"tenth second after strike", 10, 9, 1, tenth(10), true},
		{"tenth second completes spare", 3, 9, 1, tenth(7), true},
		{"tenth second exceeds rack", 4, 9, 1, tenth(7), false},
		{"tenth bonus after two strikes", 10, 9, 2, tenth(10, 10), true},
		{"tenth bonus after strike capped", 6, 9, 2, tenth(10, 4), true},
		{"tenth bonus after strike exceeds", 7, 9, 2, tenth(10, 4), false},
		{"tenth bonus after spare", 10, 9, 2, tenth(6, 4), true},
		{"tenth bonus after open", 0, 9, 2, tenth(6, 3), false},
		{"tenth bonus without second", 5, 9, 2, tenth(10), false},
		{"tenth fourth throw", 0, 9, 3, tenth(10, 10, 10), false},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidFrameScore(tc.value, tc.frame, tc.throw, tc.frames))
		})
	}
}

func TestIsGameValid(t *testing.T) {
	assert.True(t, IsGameValid(perfectGame()))
	assert.True(t, IsGameValid(mixedGame()))
	assert.True(t, IsGameValid(NewFrames(repeat(10, 3, 4)...)))
	assert.True(t, IsGameValid(NewFrames(append(repeat(9, 5, 5), []int{5, 5, 5})...)))

	assert.False(t, IsGameValid(EmptyFrames()))
	assert.False(t, IsGameValid(mixedGame()[:9]))
	assert.False(t, IsGameValid(nil))
}

func TestInvalidFrames(t *testing.T) {
	withFrame := func(index int, values ...int) []Frame {
		all := repeat(10, 3, 4)
		all[index] = values
		return NewFrames(all...)
	}

	tcs := []struct {
		name   string
		frames []Frame
		want   []int
	}{
		{"valid", NewFrames(repeat(10, 3, 4)...), nil},
		{"strike with second throw", withFrame(0, 10, 0), []int{0}},
		{"frame exceeds rack", withFrame(3, 6, 5), []int{3}},
		{"missing frame", withFrame(5), []int{5}},
		{"value out of range", withFrame(2, 11), []int{2}},
		{"tenth spare without bonus", withFrame(9, 7, 3), []int{9}},
		{"tenth strike without bonus", withFrame(9, 10, 5), []int{9}},
		{"tenth open with third throw", withFrame(9, 3, 4, 5), []int{9}},
		{"tenth bonus exceeds rack", withFrame(9, 10, 5, 6), []int{9}},
		{"tenth strike spare", withFrame(9, 10, 5, 5), nil},
		{"tenth spare strike", withFrame(9, 0, 10, 10), nil},
		{"short slice", mixedGame()[:8], []int{8, 9}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, InvalidFrames(tc.frames))
		})
	}
}

func TestCanRecordStrikeAndSpare(t *testing.T) {
	tcs := []struct {
		name   string
		frame  int
		throw  int
		frames []Frame
		strike bool
		spare  bool
	}{
		{"fresh frame", 0, 0, EmptyFrames(), true, false},
		{"second throw", 0, 1, game([]int{6}), false, true},
		{"second throw after gutter", 0, 1, game([]int{0}), false, true},
		{"tenth first", 9, 0, tenth(), true, false},
		{"tenth second after strike", 9, 1, tenth(10), true, false},
		{"tenth second after seven", 9, 1, tenth(7), false, true},
		{"tenth bonus after two strikes", 9, 2, tenth(10, 10), true, false},
		{"tenth bonus after strike and four", 9, 2, tenth(10, 4), false, true},
		{"tenth bonus after spare", 9, 2, tenth(7, 3), true, false},
		{"tenth bonus after open", 9, 2, tenth(7, 2), false, false},
		{"out of range", 10, 0, EmptyFrames(), false, false},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.strike, CanRecordStrike(tc.frame, tc.throw, tc.frames))
			assert.Equal(t, tc.spare, CanRecordSpare(tc.frame, tc.throw, tc.frames))
		})
	}

	v, ok := SpareValue(9, 2, tenth(10, 4))
	assert.True(t, ok)
	assert.Equal(t, 6, v)
}
