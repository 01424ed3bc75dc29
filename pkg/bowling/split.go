package bowling

// headPin передняя кегля
const headPin = 1

// Соседние кегли в расстановке (касаются друг друга в треугольнике)
var pinNeighbours = [PinCount + 1][]int{
	1:  {2, 3},
	2:  {1, 3, 4, 5},
	3:  {1, 2, 5, 6},
	4:  {2, 5, 7, 8},
	5:  {2, 3, 4, 6, 8, 9},
	6:  {3, 5, 9, 10},
	7:  {4, 8},
	8:  {4, 5, 7, 9},
	9:  {5, 6, 8, 10},
	10: {6, 9},
}

// Кегли непосредственно за данной
var pinsBehind = [PinCount + 1][2]int{
	1: {2, 3},
	2: {4, 5},
	3: {5, 6},
	4: {7, 8},
	5: {8, 9},
	6: {9, 10},
}

// IsSplit сплит: передняя кегля сбита, стоят минимум две кегли и
// либо между стоящими кеглями есть сбитая (стоящие не образуют одну группу),
// либо сбитая кегля стояла прямо перед двумя оставшимися (например 5-6)
func IsSplit(standing Pins) bool {
	standing &= FullRack
	if standing.Has(headPin) || standing.Count() < 2 {
		return false
	}

	for pin := 1; pin <= PinCount; pin++ {
		behind := pinsBehind[pin]
		if behind[0] == 0 || standing.Has(pin) {
			continue
		}
		if standing.Has(behind[0]) && standing.Has(behind[1]) {
			return true
		}
	}

	return groups(standing) > 1
}

// groups количество связных групп стоящих кеглей
func groups(standing Pins) int {
	var seen Pins
	count := 0
	for _, start := range standing.Slice() {
		if seen.Has(start) {
			continue
		}
		count++

		stack := []int{start}
		seen |= NewPins(start)
		for len(stack) > 0 {
			pin := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, n := range pinNeighbours[pin] {
				if standing.Has(n) && !seen.Has(n) {
					seen |= NewPins(n)
					stack = append(stack, n)
				}
			}
		}
	}
	return count
}
