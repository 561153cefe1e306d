package domain

// Statistics counts known and unknown words of one render pass
type Statistics struct {
	Known   int
	Unknown int
}

// Total returns the number of counted words
func (s Statistics) Total() int {
	return s.Known + s.Unknown
}

// KnownPercent returns the share of known words, 0 for an empty document
func (s Statistics) KnownPercent() float64 {
	return percent(s.Known, s.Total())
}

// UnknownPercent returns the share of unknown words, 0 for an empty document
func (s Statistics) UnknownPercent() float64 {
	return percent(s.Unknown, s.Total())
}

func percent(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(count) * 100 / float64(total)
}
