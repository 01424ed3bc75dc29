package bowling

// CalculateMaxScore максимальный счёт, который ещё можно набрать в игре.
//
// Записанные фреймы дополняются лучшим допустимым продолжением: на свежей
// расстановке страйк, на оставшихся кеглях спэр. Фреймы после первого пустого
// считаются несыгранными. Результат всегда в пределах [currentTotalScore, 300];
// для законченной игры возвращается ровно currentTotalScore.
func CalculateMaxScore(frames []Frame, currentTotalScore int) int {
	if IsComplete(frames) {
		return currentTotalScore
	}

	best := CalculateScore(bestContinuation(frames)).TotalScore
	if best > PerfectScore {
		best = PerfectScore
	}
	if best < currentTotalScore {
		best = currentTotalScore
	}
	return best
}

// bestContinuation копия фреймов, достроенная наилучшими бросками до конца игры
func bestContinuation(frames []Frame) []Frame {
	res := EmptyFrames()
	played := true
	for i := 0; i < FrameCount; i++ {
		var values []int
		if played {
			values = frameAt(frames, i).Values()
			if len(values) == 0 {
				played = false
			}
		}

		if i < LastFrame {
			values = completeFrame(values)
		} else {
			values = completeLastFrame(values)
		}

		for j, v := range values {
			res[i].Throws = append(res[i].Throws, Throw{Value: v, ThrowIndex: j + 1})
		}
	}
	return res
}

// completeFrame дополняет фрейм 0..8
func completeFrame(values []int) []int {
	switch {
	case len(values) == 0:
		return []int{PinCount}
	case len(values) == 1 && values[0] < PinCount:
		return []int{values[0], PinCount - values[0]}
	default:
		return values
	}
}

// completeLastFrame дополняет десятый фрейм
func completeLastFrame(values []int) []int {
	res := append([]int(nil), values...)
	switch len(res) {
	case 0:
		return []int{PinCount, PinCount, PinCount}
	case 1:
		if res[0] == PinCount {
			return append(res, PinCount, PinCount)
		}
		return append(res, PinCount-res[0], PinCount)
	case 2:
		switch {
		case res[0] == PinCount && res[1] == PinCount:
			return append(res, PinCount)
		case res[0] == PinCount:
			return append(res, PinCount-res[1])
		case res[0]+res[1] == PinCount:
			return append(res, PinCount)
		}
	}
	return res
}

// IsComplete десятый фрейм закрыт: три броска или два без отметки
func IsComplete(frames []Frame) bool {
	last := frameAt(frames, LastFrame)
	switch len(last.Throws) {
	case 0, 1:
		return false
	case 2:
		return !hasMark(last.value(0), last.value(1))
	default:
		return true
	}
}

// hasMark страйк или спэр в первых двух бросках десятого фрейма
func hasMark(first, second int) bool {
	return first == PinCount || first+second == PinCount
}

// NextPosition позиция следующего броска (фрейм, бросок с нуля).
// Для законченной игры возвращается позиция последнего броска десятого фрейма,
// как курсор пошагового ввода после завершения.
func NextPosition(frames []Frame) (frameIndex, throwIndex int) {
	for i := 0; i < LastFrame; i++ {
		f := frameAt(frames, i)
		switch {
		case len(f.Throws) == 0:
			return i, 0
		case len(f.Throws) == 1 && !f.IsStrike():
			return i, 1
		}
	}

	last := frameAt(frames, LastFrame)
	switch len(last.Throws) {
	case 0:
		return LastFrame, 0
	case 1:
		return LastFrame, 1
	case 2:
		if hasMark(last.value(0), last.value(1)) {
			return LastFrame, 2
		}
		return LastFrame, 1
	default:
		return LastFrame, 2
	}
}
