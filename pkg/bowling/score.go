package bowling

// ScoreResult накопленный счёт по фреймам и итог
type ScoreResult struct {
	TotalScore  int             `json:"total_score"`
	FrameScores [FrameCount]int `json:"frame_scores"`
}

// CalculateScore считает очки по записанным броскам.
//
// Броски всех фреймов выкладываются в одну последовательность до первого пустого
// фрейма. Страйк получает бонус двух следующих бросков, спэр одного. Десятый фрейм
// отдельно не обрабатывается: его бонусные броски просто идут следом в
// последовательности. Недостающие бонусные броски считаются нулём, поэтому
// функция годится и для незаконченной игры; FrameScores несыгранных фреймов равны нулю.
func CalculateScore(frames []Frame) ScoreResult {
	var res ScoreResult

	rolls := flatten(frames)
	roll := func(i int) int {
		if i < len(rolls) {
			return rolls[i]
		}
		return 0
	}

	total := 0
	cursor := 0
	for frame := 0; frame < FrameCount; frame++ {
		if cursor >= len(rolls) {
			break
		}

		switch {
		case rolls[cursor] == PinCount:
			total += PinCount + roll(cursor+1) + roll(cursor+2)
			cursor++
		case roll(cursor)+roll(cursor+1) == PinCount:
			total += PinCount + roll(cursor+2)
			cursor += 2
		default:
			total += roll(cursor) + roll(cursor+1)
			cursor += 2
		}

		res.FrameScores[frame] = total
	}

	res.TotalScore = total
	return res
}

// flatten значения бросков подряд до первого пустого фрейма
func flatten(frames []Frame) []int {
	rolls := make([]int, 0, 21)
	for i := 0; i < len(frames) && i < FrameCount; i++ {
		if len(frames[i].Throws) == 0 {
			break
		}
		rolls = append(rolls, frames[i].Values()...)
	}
	return rolls
}
