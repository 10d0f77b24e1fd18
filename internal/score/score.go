package score

// DotPoints is what a dot is worth.
const DotPoints = 1

type Score struct {
	value int
	dots  int
}

func NewScore() *Score {
	return &Score{}
}

// Add adds points. Negative points are ignored so the score never drops.
func (s *Score) Add(points int) {
	if points > 0 {
		s.value += points
	}
}

// EatDot counts one eaten dot and scores it.
func (s *Score) EatDot() {
	s.dots++
	s.Add(DotPoints)
}

func (s *Score) Get() int {
	return s.value
}

// Dots returns how many dots were eaten.
func (s *Score) Dots() int {
	return s.dots
}

func (s *Score) Reset() {
	s.value = 0
	s.dots = 0
}
