package bowling

import (
	"errors"
	"fmt"
)

var (
	// ErrPinNotStanding сбитая кегля не стоит в текущей расстановке
	ErrPinNotStanding = errors.New("pin is not standing")
	// ErrGameComplete игра уже закончена
	ErrGameComplete = errors.New("game is already complete")
)

// PinModeState позиция ввода по кеглям для отображения
type PinModeState struct {
	FrameIndex       int  `json:"frame_index"`
	ThrowIndex       int  `json:"throw_index"`
	PinsLeftStanding Pins `json:"pins_left_standing"`
	Complete         bool `json:"complete"`
}

// PinTracker конечный автомат ввода по кеглям для одной игры.
//
// Хранит курсор (фрейм 0..9, бросок 0..2) и историю бросков по фреймам с
// расстановками, которых нет в значениях фрейма. Бросок 2 бывает только в
// десятом фрейме. После последнего броска курсор остаётся на нём: игра
// закончена, если в истории уже есть бросок в позиции курсора.
type PinTracker struct {
	frameIndex int
	throwIndex int
	throwsData [FrameCount][]Throw
}

// NewPinTracker трекер для новой игры, курсор (0, 0)
func NewPinTracker() *PinTracker {
	return &PinTracker{}
}

// RestorePinTracker восстанавливает трекер по сохранённым фреймам
func RestorePinTracker(frames []Frame) *PinTracker {
	t := NewPinTracker()
	for i := 0; i < FrameCount; i++ {
		t.throwsData[i] = append([]Throw(nil), frameAt(frames, i).Throws...)
	}
	t.frameIndex, t.throwIndex = NextPosition(frames)
	return t
}

// Reset очистка игры
func (t *PinTracker) Reset() {
	*t = PinTracker{}
}

// Position текущий курсор
func (t *PinTracker) Position() (frameIndex, throwIndex int) {
	return t.frameIndex, t.throwIndex
}

// IsComplete десятый фрейм закрыт
func (t *PinTracker) IsComplete() bool {
	return t.frameIndex == LastFrame && len(t.throwsData[LastFrame]) > t.throwIndex
}

// State снимок состояния для клиента
func (t *PinTracker) State() PinModeState {
	return PinModeState{
		FrameIndex:       t.frameIndex,
		ThrowIndex:       t.throwIndex,
		PinsLeftStanding: t.PinsLeftStanding(),
		Complete:         t.IsComplete(),
	}
}

// PinsLeftStanding кегли, доступные для текущего броска
func (t *PinTracker) PinsLeftStanding() Pins {
	if t.IsComplete() {
		return 0
	}
	return t.availableAt(t.frameIndex, t.throwIndex)
}

func (t *PinTracker) availableAt(frame, throw int) Pins {
	if throw == firstThrow {
		return FullRack
	}
	throws := t.throwsData[frame]
	if len(throws) < throw {
		return 0
	}
	prev := throws[throw-1]

	if frame < LastFrame {
		return leftAfter(prev, t.availableAt(frame, throw-1))
	}

	// Десятый фрейм: после страйка или спэра расстановка снова полная
	switch throw {
	case secondThrow:
		if prev.Value == PinCount {
			return FullRack
		}
		return leftAfter(prev, FullRack)
	case bonusThrow:
		first := throws[firstThrow]
		switch {
		case first.Value == PinCount && prev.Value == PinCount:
			return FullRack
		case first.Value < PinCount && first.Value+prev.Value == PinCount:
			return FullRack
		case first.Value == PinCount:
			return leftAfter(prev, FullRack)
		}
	}
	return 0
}

// freshRack бросок начинает новую расстановку: первый бросок фрейма или
// бросок десятого фрейма после страйка или спэра. Полная расстановка после
// броска мимо свежей не считается
func (t *PinTracker) freshRack(frame, throw int) bool {
	if throw == firstThrow {
		return true
	}
	if frame < LastFrame {
		return false
	}
	throws := t.throwsData[frame]
	switch throw {
	case secondThrow:
		return len(throws) > firstThrow && throws[firstThrow].Value == PinCount
	case bonusThrow:
		if len(throws) <= secondThrow {
			return false
		}
		first, second := throws[firstThrow].Value, throws[secondThrow].Value
		return (first == PinCount && second == PinCount) ||
			(first < PinCount && first+second == PinCount)
	}
	return false
}

// leftAfter кегли, оставшиеся после броска. Для бросков, введённых числом,
// расстановка неизвестна: считаем, что сбиты кегли с наименьшими номерами
func leftAfter(t Throw, available Pins) Pins {
	if t.PinMode {
		return t.PinsLeftStanding
	}
	left := available
	for pin := 1; pin <= PinCount && available.Count()-left.Count() < t.Value; pin++ {
		left = left.Without(NewPins(pin))
	}
	return left
}

// HandlePinThrow записывает бросок по сбитым кеглям и двигает курсор.
// Возвращает копию фреймов с записанным броском. Кегли вне расстановки
// считаются ошибкой вызывающего кода: трекер и фреймы в этом случае не меняются.
func (t *PinTracker) HandlePinThrow(frames []Frame, knocked Pins) ([]Frame, error) {
	if t.IsComplete() {
		return nil, ErrGameComplete
	}
	if !knocked.Valid() {
		return nil, ErrInvalidPin
	}

	available := t.PinsLeftStanding()
	if stray := knocked.Without(available); !stray.IsEmpty() {
		return nil, fmt.Errorf("%w: %v", ErrPinNotStanding, stray)
	}

	standing := available.Without(knocked)
	throw := Throw{
		Value:            knocked.Count(),
		ThrowIndex:       t.throwIndex + 1,
		PinMode:          true,
		PinsLeftStanding: standing,
		PinsKnockedDown:  knocked,
	}
	// Сплит определяется только на свежей расстановке
	if t.freshRack(t.frameIndex, t.throwIndex) {
		throw.IsSplit = IsSplit(standing)
	}

	f, k := t.frameIndex, t.throwIndex
	t.throwsData[f] = append(t.throwsData[f][:k:k], throw)

	res := CloneFrames(frames)
	res[f].Throws = append([]Throw(nil), t.throwsData[f]...)

	t.advance(throw.Value)
	return res, nil
}

// advance переход к следующей позиции после броска value
func (t *PinTracker) advance(value int) {
	f, k := t.frameIndex, t.throwIndex
	if f < LastFrame {
		if k == firstThrow && value < PinCount {
			t.throwIndex = secondThrow
			return
		}
		t.frameIndex, t.throwIndex = f+1, firstThrow
		return
	}

	switch k {
	case firstThrow:
		t.throwIndex = secondThrow
	case secondThrow:
		// Без отметки курсор остаётся на (9, 1) как признак конца игры
		if hasMark(t.throwsData[f][firstThrow].Value, value) {
			t.throwIndex = bonusThrow
		}
	}
}

// UndoPinThrow отменяет последний бросок. В законченной игре бросок под курсором
// стирается на месте, иначе курсор сначала отходит на одну позицию назад.
// В начале игры ничего не делает.
func (t *PinTracker) UndoPinThrow(frames []Frame) []Frame {
	res := CloneFrames(frames)

	f, k := t.frameIndex, t.throwIndex
	if !t.IsComplete() {
		if f == 0 && k == firstThrow {
			return res
		}
		f, k = t.previousPosition()
	}

	if len(t.throwsData[f]) > k {
		t.throwsData[f] = t.throwsData[f][:k:k]
	}
	if len(res[f].Throws) > k {
		res[f].Throws = res[f].Throws[:k]
	}
	t.frameIndex, t.throwIndex = f, k
	return res
}

func (t *PinTracker) previousPosition() (frameIndex, throwIndex int) {
	if t.throwIndex > firstThrow {
		return t.frameIndex, t.throwIndex - 1
	}
	prev := len(t.throwsData[t.frameIndex-1]) - 1
	if prev < firstThrow {
		prev = firstThrow
	}
	return t.frameIndex - 1, prev
}
