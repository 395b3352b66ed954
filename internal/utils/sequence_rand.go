// internal/utils/sequence_rand.go
package utils

// SequenceRand replays a fixed list of floats; Intn derives from the same stream.
// Once exhausted it repeats the last value. Zero values yield 0.
type SequenceRand struct {
	Values []float64
	pos    int
}

// NewSequenceRand creates a scripted Rand.
func NewSequenceRand(values ...float64) *SequenceRand {
	return &SequenceRand{Values: values}
}

func (s *SequenceRand) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos]
	if s.pos < len(s.Values)-1 {
		s.pos++
	}
	return v
}

func (s *SequenceRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(s.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}
