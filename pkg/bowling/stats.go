package bowling

// MaxSeriesGames предел игр в серии
const MaxSeriesGames = 19

// Stats статистика одной игры
type Stats struct {
	Strikes            int  `json:"strikes"`
	Spares             int  `json:"spares"`
	OpenFrames         int  `json:"open_frames"`
	SpareOpportunities int  `json:"spare_opportunities"`
	Splits             int  `json:"splits"`
	SplitsConverted    int  `json:"splits_converted"`
	FirstBallCount     int  `json:"first_ball_count"`
	FirstBallPins      int  `json:"first_ball_pins"`
	CleanGame          bool `json:"clean_game"` // Законченная игра без открытых фреймов
}

// FirstBallAverage среднее сбитых первым броском
func (s Stats) FirstBallAverage() float64 {
	if s.FirstBallCount == 0 {
		return 0
	}
	return float64(s.FirstBallPins) / float64(s.FirstBallCount)
}

// SparePercent процент закрытых спэров
func (s Stats) SparePercent() float64 {
	if s.SpareOpportunities == 0 {
		return 0
	}
	return float64(s.Spares) / float64(s.SpareOpportunities) * 100
}

// CalculateStats собирает статистику по записанным броскам
func CalculateStats(frames []Frame) Stats {
	var s Stats
	for i := 0; i < FrameCount; i++ {
		f := frameAt(frames, i)
		if len(f.Throws) == 0 {
			break
		}

		open := false
		for _, rack := range racks(f) {
			first := rack[0]
			s.FirstBallCount++
			s.FirstBallPins += first.Value
			if first.Value == PinCount {
				s.Strikes++
				continue
			}
			if first.IsSplit {
				s.Splits++
			}
			if len(rack) < 2 {
				continue
			}
			s.SpareOpportunities++
			if first.Value+rack[1].Value == PinCount {
				s.Spares++
				if first.IsSplit {
					s.SplitsConverted++
				}
			} else {
				open = true
			}
		}

		// Десятый фрейм открыт и тогда, когда открытой осталась расстановка бонусных бросков (X 3 4)
		if open {
			s.OpenFrames++
		}
	}

	s.CleanGame = IsComplete(frames) && s.OpenFrames == 0
	return s
}

// SeriesSummary итоги серии игр
type SeriesSummary struct {
	Games   int     `json:"games"`
	Total   int     `json:"total"`
	Average float64 `json:"average"`
	High    int     `json:"high"`
	Low     int     `json:"low"`
}

// SummarizeSeries итоги по счетам игр серии
func SummarizeSeries(totals []int) SeriesSummary {
	var s SeriesSummary
	for i, total := range totals {
		s.Games++
		s.Total += total
		if i == 0 || total > s.High {
			s.High = total
		}
		if i == 0 || total < s.Low {
			s.Low = total
		}
	}
	if s.Games > 0 {
		s.Average = float64(s.Total) / float64(s.Games)
	}
	return s
}
