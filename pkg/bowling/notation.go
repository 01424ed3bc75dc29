package bowling

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidThrow значение нельзя записать в эту позицию
var ErrInvalidThrow = errors.New("invalid throw")

// Обозначения в протоколе игры
const (
	markStrike = "X"
	markSpare  = "/"
	markMiss   = "-"
	markFoul   = "F"
)

// ParseThrow разбирает ввод быстрой панели (X, /, -, F или число)
// и проверяет, что значение можно записать в позицию (frameIndex, throwIndex)
func ParseThrow(input string, frameIndex, throwIndex int, frames []Frame) (int, error) {
	token := strings.ToUpper(strings.TrimSpace(input))

	var value int
	switch token {
	case markStrike:
		if !CanRecordStrike(frameIndex, throwIndex, frames) {
			return 0, fmt.Errorf("%w: strike not allowed at frame %d throw %d", ErrInvalidThrow, frameIndex+1, throwIndex+1)
		}
		return PinCount, nil
	case markSpare:
		spare, ok := SpareValue(frameIndex, throwIndex, frames)
		if !ok {
			return 0, fmt.Errorf("%w: spare not allowed at frame %d throw %d", ErrInvalidThrow, frameIndex+1, throwIndex+1)
		}
		return spare, nil
	case markMiss, markFoul:
		value = 0
	default:
		n, err := strconv.Atoi(token)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidThrow, input)
		}
		value = n
	}

	if !IsValidFrameScore(value, frameIndex, throwIndex, frames) {
		return 0, fmt.Errorf("%w: %d at frame %d throw %d", ErrInvalidThrow, value, frameIndex+1, throwIndex+1)
	}
	return value, nil
}

// Marks фрейм в обозначениях протокола: X, 7/, 9-
func Marks(f Frame) []string {
	marks := make([]string, 0, len(f.Throws))
	for _, rack := range racks(f) {
		first := rack[0].Value
		if first == PinCount {
			marks = append(marks, markStrike)
			continue
		}
		marks = append(marks, pinMark(first))
		if len(rack) > 1 {
			if first+rack[1].Value == PinCount {
				marks = append(marks, markSpare)
			} else {
				marks = append(marks, pinMark(rack[1].Value))
			}
		}
	}
	return marks
}

func pinMark(value int) string {
	if value == 0 {
		return markMiss
	}
	return strconv.Itoa(value)
}

// racks делит броски фрейма по расстановкам: страйк закрывает расстановку сразу,
// иначе расстановка длится два броска
func racks(f Frame) [][]Throw {
	var (
		res      [][]Throw
		cur      []Throw
		standing = PinCount
	)
	for _, t := range f.Throws {
		cur = append(cur, t)
		standing -= t.Value
		if standing <= 0 || len(cur) == 2 {
			res = append(res, cur)
			cur = nil
			standing = PinCount
		}
	}
	if len(cur) > 0 {
		res = append(res, cur)
	}
	return res
}
