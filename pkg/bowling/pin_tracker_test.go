package bowling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pinThrow(t *testing.T, tracker *PinTracker, frames []Frame, knocked Pins) []Frame {
	t.Helper()
	res, err := tracker.HandlePinThrow(frames, knocked)
	require.NoError(t, err)
	return res
}

func position(tracker *PinTracker) [2]int {
	f, k := tracker.Position()
	return [2]int{f, k}
}

func TestPinTrackerRegularFrames(t *testing.T) {
	tracker := NewPinTracker()
	frames := EmptyFrames()

	assert.Equal(t, [2]int{0, 0}, position(tracker))
	assert.Equal(t, FullRack, tracker.PinsLeftStanding())

	frames = pinThrow(t, tracker, frames, FullRack)
	assert.Equal(t, []int{10}, frames[0].Values())
	assert.Equal(t, [2]int{1, 0}, position(tracker))

	frames = pinThrow(t, tracker, frames, NewPins(1, 2, 3, 4, 5, 6, 7))
	assert.Equal(t, [2]int{1, 1}, position(tracker))
	assert.Equal(t, NewPins(8, 9, 10), tracker.PinsLeftStanding())

	frames = pinThrow(t, tracker, frames, NewPins(8, 9, 10))
	assert.Equal(t, []int{7, 3}, frames[1].Values())
	assert.Equal(t, [2]int{2, 0}, position(tracker))

	assert.Equal(t, 20+10, CalculateScore(frames).TotalScore)
}

func TestPinTrackerRejectsPinsNotStanding(t *testing.T) {
	tracker := NewPinTracker()
	frames := pinThrow(t, tracker, EmptyFrames(), NewPins(1, 2, 3, 4, 5, 6, 7))
	before := *tracker

	res, err := tracker.HandlePinThrow(frames, NewPins(1, 8))
	assert.ErrorIs(t, err, ErrPinNotStanding)
	assert.Nil(t, res)
	assert.Equal(t, before, *tracker)

	_, err = tracker.HandlePinThrow(frames, Pins(1<<12))
	assert.ErrorIs(t, err, ErrInvalidPin)
	assert.Equal(t, before, *tracker)
}

func TestPinTrackerTenthFrameResets(t *testing.T) {
	tracker := RestorePinTracker(NewFrames(strikes(9)...))
	frames := NewFrames(strikes(9)...)
	require.Equal(t, [2]int{9, 0}, position(tracker))

	frames = pinThrow(t, tracker, frames, FullRack)
	assert.Equal(t, [2]int{9, 1}, position(tracker))
	assert.Equal(t, FullRack, tracker.PinsLeftStanding())

	frames = pinThrow(t, tracker, frames, FullRack)
	assert.Equal(t, [2]int{9, 2}, position(tracker))
	assert.Equal(t, FullRack, tracker.PinsLeftStanding())

	frames = pinThrow(t, tracker, frames, NewPins(1, 2, 3, 4, 5, 6, 7))
	assert.Equal(t, []int{10, 10, 7}, frames[9].Values())
	assert.True(t, tracker.IsComplete())
	assert.True(t, IsComplete(frames))
	assert.Equal(t, Pins(0), tracker.PinsLeftStanding())
	assert.Equal(t, 297, CalculateScore(frames).TotalScore)

	_, err := tracker.HandlePinThrow(frames, NewPins(8))
	assert.ErrorIs(t, err, ErrGameComplete)
}

func TestPinTrackerTenthFrameLeaves(t *testing.T) {
	t.Run("spare earns full rack", func(t *testing.T) {
		tracker := RestorePinTracker(NewFrames(strikes(9)...))
		frames := pinThrow(t, tracker, NewFrames(strikes(9)...), NewPins(1, 2, 3, 4, 5, 6, 7))
		assert.Equal(t, NewPins(8, 9, 10), tracker.PinsLeftStanding())

		frames = pinThrow(t, tracker, frames, NewPins(8, 9, 10))
		assert.Equal(t, [2]int{9, 2}, position(tracker))
		assert.Equal(t, FullRack, tracker.PinsLeftStanding())
		assert.False(t, IsComplete(frames))
	})

	t.Run("strike then leave", func(t *testing.T) {
		tracker := RestorePinTracker(NewFrames(strikes(9)...))
		frames := pinThrow(t, tracker, NewFrames(strikes(9)...), FullRack)
		frames = pinThrow(t, tracker, frames, NewPins(1, 2, 3, 4, 5, 6))
		assert.Equal(t, [2]int{9, 2}, position(tracker))
		assert.Equal(t, NewPins(7, 8, 9, 10), tracker.PinsLeftStanding())

		_, err := tracker.HandlePinThrow(frames, NewPins(1))
		assert.ErrorIs(t, err, ErrPinNotStanding)
	})

	t.Run("open tenth ends game", func(t *testing.T) {
		tracker := RestorePinTracker(NewFrames(strikes(9)...))
		frames := pinThrow(t, tracker, NewFrames(strikes(9)...), NewPins(1, 2, 3, 4, 5, 6, 7))
		frames = pinThrow(t, tracker, frames, NewPins(8, 9))
		assert.Equal(t, [2]int{9, 1}, position(tracker))
		assert.True(t, tracker.IsComplete())
		assert.True(t, IsComplete(frames))
	})
}

func TestPinTrackerSplit(t *testing.T) {
	tracker := NewPinTracker()
	frames := pinThrow(t, tracker, EmptyFrames(), FullRack.Without(NewPins(7, 10)))
	assert.True(t, frames[0].Throws[0].IsSplit)
	assert.Equal(t, NewPins(7, 10), frames[0].Throws[0].PinsLeftStanding)

	frames = pinThrow(t, tracker, frames, NewPins(7))
	assert.False(t, frames[0].Throws[1].IsSplit)

	frames = pinThrow(t, tracker, frames, FullRack.Without(NewPins(10)))
	assert.False(t, frames[1].Throws[0].IsSplit)
}

func TestPinTrackerUndoAtStartIsNoop(t *testing.T) {
	tracker := NewPinTracker()
	before := *tracker

	frames := tracker.UndoPinThrow(EmptyFrames())
	assert.Equal(t, before, *tracker)
	assert.Equal(t, EmptyFrames(), frames)
}

func TestPinTrackerUndo(t *testing.T) {
	tracker := NewPinTracker()
	frames := pinThrow(t, tracker, EmptyFrames(), NewPins(1, 2, 3, 4, 5, 6, 7))
	frames = pinThrow(t, tracker, frames, NewPins(8, 9))
	require.Equal(t, [2]int{1, 0}, position(tracker))

	frames = tracker.UndoPinThrow(frames)
	assert.Equal(t, [2]int{0, 1}, position(tracker))
	assert.Equal(t, []int{7}, frames[0].Values())
	assert.Equal(t, NewPins(8, 9, 10), tracker.PinsLeftStanding())

	frames = tracker.UndoPinThrow(frames)
	assert.Equal(t, [2]int{0, 0}, position(tracker))
	assert.Empty(t, frames[0].Throws)

	frames = pinThrow(t, tracker, frames, FullRack)
	frames = tracker.UndoPinThrow(frames)
	assert.Equal(t, [2]int{0, 0}, position(tracker))
	assert.Empty(t, frames[0].Throws)
}

func TestPinTrackerUndoCompleteGame(t *testing.T) {
	tracker := RestorePinTracker(NewFrames(strikes(9)...))
	frames := pinThrow(t, tracker, NewFrames(strikes(9)...), NewPins(1, 2, 3, 4, 5, 6, 7))
	frames = pinThrow(t, tracker, frames, NewPins(8, 9))
	require.True(t, tracker.IsComplete())

	frames = tracker.UndoPinThrow(frames)
	assert.Equal(t, [2]int{9, 1}, position(tracker))
	assert.False(t, tracker.IsComplete())
	assert.Equal(t, []int{7}, frames[9].Values())
	assert.Equal(t, NewPins(8, 9, 10), tracker.PinsLeftStanding())

	frames = tracker.UndoPinThrow(frames)
	assert.Equal(t, [2]int{9, 0}, position(tracker))
	assert.Empty(t, frames[9].Throws)

	frames = tracker.UndoPinThrow(frames)
	assert.Equal(t, [2]int{8, 0}, position(tracker))
	assert.Empty(t, frames[8].Throws)
}

func TestRestorePinTrackerFromNumericFrames(t *testing.T) {
	tracker := RestorePinTracker(game([]int{10}, []int{7}))
	assert.Equal(t, [2]int{1, 1}, position(tracker))
	assert.Equal(t, NewPins(8, 9, 10), tracker.PinsLeftStanding())

	state := tracker.State()
	assert.Equal(t, PinModeState{FrameIndex: 1, ThrowIndex: 1, PinsLeftStanding: NewPins(8, 9, 10)}, state)

	tracker.Reset()
	assert.Equal(t, [2]int{0, 0}, position(tracker))
}

func TestPinTrackerSplitOnlyOnFreshRack(t *testing.T) {
	t.Run("second ball after gutter", func(t *testing.T) {
		tracker := NewPinTracker()
		frames := pinThrow(t, tracker, EmptyFrames(), 0)
		assert.Equal(t, FullRack, tracker.PinsLeftStanding())

		frames = pinThrow(t, tracker, frames, FullRack.Without(NewPins(7, 10)))
		assert.Equal(t, NewPins(7, 10), frames[0].Throws[1].PinsLeftStanding)
		assert.False(t, frames[0].Throws[1].IsSplit)
	})

	t.Run("tenth frame bonus after strike and gutter", func(t *testing.T) {
		tracker := RestorePinTracker(NewFrames(strikes(9)...))
		frames := pinThrow(t, tracker, NewFrames(strikes(9)...), FullRack)
		frames = pinThrow(t, tracker, frames, 0)
		frames = pinThrow(t, tracker, frames, FullRack.Without(NewPins(7, 10)))
		assert.False(t, frames[9].Throws[2].IsSplit)
	})

	t.Run("tenth frame rack resets", func(t *testing.T) {
		tracker := RestorePinTracker(NewFrames(strikes(9)...))
		frames := pinThrow(t, tracker, NewFrames(strikes(9)...), FullRack)
		frames = pinThrow(t, tracker, frames, FullRack.Without(NewPins(7, 10)))
		assert.True(t, frames[9].Throws[1].IsSplit)

		tracker = RestorePinTracker(NewFrames(strikes(9)...))
		frames = pinThrow(t, tracker, NewFrames(strikes(9)...), NewPins(1, 2, 3))
		frames = pinThrow(t, tracker, frames, NewPins(4, 5, 6, 7, 8, 9, 10))
		frames = pinThrow(t, tracker, frames, FullRack.Without(NewPins(4, 6)))
		assert.True(t, frames[9].Throws[2].IsSplit)
	})
}
