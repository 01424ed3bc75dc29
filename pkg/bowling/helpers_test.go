package bowling

func strikes(n int) [][]int {
	res := make([][]int, n)
	for i := range res {
		res[i] = []int{10}
	}
	return res
}

func repeat(n int, values ...int) [][]int {
	res := make([][]int, n)
	for i := range res {
		res[i] = append([]int(nil), values...)
	}
	return res
}

// tenth игра, в которой записан только десятый фрейм
func tenth(values ...int) []Frame {
	all := make([][]int, FrameCount)
	all[LastFrame] = values
	return NewFrames(all...)
}

func game(frames ...[]int) []Frame {
	return NewFrames(frames...)
}

func mixedGame() []Frame {
	return game(
		[]int{10}, []int{5, 5}, []int{3, 4}, []int{10}, []int{7, 2},
		[]int{3, 7}, []int{10}, []int{10}, []int{9, 1}, []int{10, 10, 10},
	)
}

func perfectGame() []Frame {
	return NewFrames(append(strikes(9), []int{10, 10, 10})...)
}
