package bowling

// Индексы бросков во фрейме (с нуля) в валидаторе и при пошаговом вводе
const (
	firstThrow  = 0
	secondThrow = 1
	bonusThrow  = 2
)

// IsValidNumber0to10 значение броска в диапазоне 0..10
func IsValidNumber0to10(value int) bool {
	return value >= 0 && value <= PinCount
}

// IsValidFrameScore можно ли записать inputValue в позицию (frameIndex, throwIndex)
// с учётом уже записанных бросков этого фрейма. throwIndex считается с нуля.
func IsValidFrameScore(inputValue, frameIndex, throwIndex int, frames []Frame) bool {
	if !IsValidNumber0to10(inputValue) || frameIndex < 0 || frameIndex > LastFrame {
		return false
	}

	f := frameAt(frames, frameIndex)
	first, second := f.value(firstThrow), f.value(secondThrow)

	if frameIndex < LastFrame {
		switch throwIndex {
		case firstThrow:
			return true
		case secondThrow:
			// После страйка второго броска во фрейме нет
			return first >= 0 && first < PinCount && first+inputValue <= PinCount
		default:
			return false
		}
	}

	switch throwIndex {
	case firstThrow:
		return true
	case secondThrow:
		if first < 0 {
			return false
		}
		return first == PinCount || first+inputValue <= PinCount
	case bonusThrow:
		if first < 0 || second < 0 {
			return false
		}
		switch {
		case first == PinCount && second == PinCount:
			return true
		case first == PinCount:
			return inputValue <= PinCount-second
		case first+second == PinCount:
			return true
		default:
			return false
		}
	default:
		return false
	}
}

// CanRecordStrike доступна ли кнопка страйка в текущей позиции
func CanRecordStrike(frameIndex, throwIndex int, frames []Frame) bool {
	if frameIndex < 0 || frameIndex > LastFrame {
		return false
	}
	if frameIndex < LastFrame {
		return throwIndex == firstThrow
	}

	f := frameAt(frames, frameIndex)
	first, second := f.value(firstThrow), f.value(secondThrow)
	switch throwIndex {
	case firstThrow:
		return true
	case secondThrow:
		return first == PinCount
	case bonusThrow:
		return (first == PinCount && second == PinCount) ||
			(first >= 0 && first < PinCount && first+second == PinCount)
	default:
		return false
	}
}

// CanRecordSpare доступна ли кнопка спэра в текущей позиции
func CanRecordSpare(frameIndex, throwIndex int, frames []Frame) bool {
	_, ok := SpareValue(frameIndex, throwIndex, frames)
	return ok
}

// SpareValue сколько кеглей нужно сбить для спэра в текущей позиции
func SpareValue(frameIndex, throwIndex int, frames []Frame) (int, bool) {
	if frameIndex < 0 || frameIndex > LastFrame {
		return 0, false
	}

	f := frameAt(frames, frameIndex)
	first, second := f.value(firstThrow), f.value(secondThrow)
	switch {
	case throwIndex == secondThrow && first >= 0 && first < PinCount:
		return PinCount - first, true
	case frameIndex == LastFrame && throwIndex == bonusThrow && first == PinCount && second >= 0 && second < PinCount:
		return PinCount - second, true
	default:
		return 0, false
	}
}

// IsGameValid все десять фреймов заполнены корректно
func IsGameValid(frames []Frame) bool {
	return len(frames) == FrameCount && len(InvalidFrames(frames)) == 0
}

// InvalidFrames индексы некорректных или отсутствующих фреймов.
// Фреймы не помечаются: отображение ошибок остаётся за вызывающим кодом
func InvalidFrames(frames []Frame) []int {
	var invalid []int
	for i := 0; i < FrameCount; i++ {
		if i >= len(frames) || !isFrameValid(i, frames[i]) {
			invalid = append(invalid, i)
		}
	}
	return invalid
}

func isFrameValid(index int, f Frame) bool {
	for _, t := range f.Throws {
		if !IsValidNumber0to10(t.Value) {
			return false
		}
	}
	first, second, third := f.value(firstThrow), f.value(secondThrow), f.value(bonusThrow)

	if index < LastFrame {
		switch len(f.Throws) {
		case 1:
			return first == PinCount
		case 2:
			return first < PinCount && first+second <= PinCount
		default:
			return false
		}
	}

	switch len(f.Throws) {
	case 2:
		return first+second < PinCount
	case 3:
		switch {
		case first == PinCount && second == PinCount:
			return true
		case first == PinCount:
			return second+third <= PinCount
		default:
			return first+second == PinCount
		}
	default:
		return false
	}
}
