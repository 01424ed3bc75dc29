package bowling

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/bits"
)

// PinCount Количество кеглей в расстановке
const PinCount = 10

// Pins набор кеглей 1..10, бит i-1 соответствует кегле i
type Pins uint16

// FullRack полная расстановка
const FullRack Pins = 1<<PinCount - 1

var (
	// ErrInvalidPin номер кегли вне диапазона 1..10
	ErrInvalidPin = errors.New("pin number must be between 1 and 10")
	// ErrDuplicatePin кегля указана дважды
	ErrDuplicatePin = errors.New("pin listed more than once")
)

// NewPins собирает набор из номеров кеглей. Номера вне 1..10 игнорируются,
// для проверки входных данных используется ParsePins
func NewPins(pins ...int) Pins {
	var p Pins
	for _, pin := range pins {
		if pin < 1 || pin > PinCount {
			continue
		}
		p |= 1 << (pin - 1)
	}
	return p
}

// ParsePins строго разбирает список кеглей из запроса
func ParsePins(pins []int) (Pins, error) {
	var p Pins
	for _, pin := range pins {
		if pin < 1 || pin > PinCount {
			return 0, fmt.Errorf("%w: %d", ErrInvalidPin, pin)
		}
		bit := Pins(1) << (pin - 1)
		if p&bit != 0 {
			return 0, fmt.Errorf("%w: %d", ErrDuplicatePin, pin)
		}
		p |= bit
	}
	return p, nil
}

func (p Pins) Has(pin int) bool {
	if pin < 1 || pin > PinCount {
		return false
	}
	return p&(1<<(pin-1)) != 0
}

func (p Pins) Count() int {
	return bits.OnesCount16(uint16(p & FullRack))
}

// Without возвращает набор без кеглей o
func (p Pins) Without(o Pins) Pins {
	return p &^ o
}

// Valid нет битов за пределами расстановки
func (p Pins) Valid() bool {
	return p&^FullRack == 0
}

func (p Pins) IsEmpty() bool {
	return p&FullRack == 0
}

// Slice номера кеглей по возрастанию
func (p Pins) Slice() []int {
	res := make([]int, 0, p.Count())
	for pin := 1; pin <= PinCount; pin++ {
		if p.Has(pin) {
			res = append(res, pin)
		}
	}
	return res
}

func (p Pins) String() string {
	return fmt.Sprint(p.Slice())
}

// MarshalJSON кодирует набор массивом номеров
func (p Pins) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Slice())
}

func (p *Pins) UnmarshalJSON(data []byte) error {
	var list []int
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	parsed, err := ParsePins(list)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
