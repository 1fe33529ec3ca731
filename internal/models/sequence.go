package models

// Sequence hands out transaction ids. It is owned by one collection, so two
// collections never share a counter.
type Sequence struct {
	last int
}

// NewSequence returns a sequence whose first id is 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next advances the sequence and returns the new id.
func (s *Sequence) Next() int {
	s.last++
	return s.last
}

// Observe records an id that was assigned elsewhere, such as one restored
// from disk, so that Next never hands it out again.
func (s *Sequence) Observe(id int) {
	if id > s.last {
		s.last = id
	}
}

// Current returns the last id handed out or observed.
func (s *Sequence) Current() int {
	return s.last
}

// Reset rewinds the sequence so the next id is 1.
func (s *Sequence) Reset() {
	s.last = 0
}
