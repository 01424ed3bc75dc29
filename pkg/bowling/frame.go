// Package bowling реализует правила подсчёта очков в боулинге (десять кеглей):
// подсчёт очков по фреймам, максимально достижимый счёт, проверку бросков
// и пошаговый ввод сбитых кеглей.
//
// Пакет не выполняет ввода-вывода и не хранит общего состояния: все функции
// работают над переданными фреймами, сохранение остаётся за вызывающим кодом.
package bowling

const (
	// FrameCount Фреймов в игре
	FrameCount = 10
	// LastFrame Индекс десятого фрейма
	LastFrame = FrameCount - 1
	// PerfectScore Идеальная игра
	PerfectScore = 300
)

// Throw один бросок. После записи не изменяется: правка заменяет бросок целиком
type Throw struct {
	Value      int `json:"value"`       // Сбито кеглей, 0..10
	ThrowIndex int `json:"throw_index"` // Номер броска во фрейме, 1..3

	// Заполняются только при вводе по кеглям
	PinMode          bool `json:"pin_mode,omitempty"`
	PinsLeftStanding Pins `json:"pins_left_standing,omitempty"`
	PinsKnockedDown  Pins `json:"pins_knocked_down,omitempty"`
	IsSplit          bool `json:"is_split,omitempty"`
}

// Frame фрейм игры: 0..8 содержат 1-2 броска, десятый 2-3
type Frame struct {
	FrameIndex int     `json:"frame_index"`
	Throws     []Throw `json:"throws"`
}

// Values значения бросков фрейма
func (f Frame) Values() []int {
	values := make([]int, len(f.Throws))
	for i, t := range f.Throws {
		values[i] = t.Value
	}
	return values
}

// IsStrike первый бросок сбил все кегли
func (f Frame) IsStrike() bool {
	return len(f.Throws) > 0 && f.Throws[0].Value == PinCount
}

// IsSpare первые два броска (без страйка) сбили все кегли
func (f Frame) IsSpare() bool {
	return len(f.Throws) > 1 && f.Throws[0].Value < PinCount &&
		f.Throws[0].Value+f.Throws[1].Value == PinCount
}

// value значение броска i или -1, если его нет
func (f Frame) value(i int) int {
	if i < 0 || i >= len(f.Throws) {
		return -1
	}
	return f.Throws[i].Value
}

// EmptyFrames пустая игра из десяти фреймов
func EmptyFrames() []Frame {
	frames := make([]Frame, FrameCount)
	for i := range frames {
		frames[i] = Frame{FrameIndex: i, Throws: []Throw{}}
	}
	return frames
}

// NewFrames строит фреймы из значений бросков. Недостающие фреймы остаются пустыми,
// лишние отбрасываются
func NewFrames(values ...[]int) []Frame {
	frames := EmptyFrames()
	for i, vals := range values {
		if i >= FrameCount {
			break
		}
		for j, v := range vals {
			frames[i].Throws = append(frames[i].Throws, Throw{Value: v, ThrowIndex: j + 1})
		}
	}
	return frames
}

// CloneFrames глубокая копия, всегда ровно десять фреймов
func CloneFrames(frames []Frame) []Frame {
	res := EmptyFrames()
	for i := 0; i < len(frames) && i < FrameCount; i++ {
		res[i].Throws = append(res[i].Throws, frames[i].Throws...)
	}
	return res
}

// frameAt фрейм по индексу или пустой фрейм, если его нет
func frameAt(frames []Frame, i int) Frame {
	if i < 0 || i >= len(frames) {
		return Frame{FrameIndex: i}
	}
	return frames[i]
}
