package score

import "testing"

func TestScore(t *testing.T) {
	s := NewScore()
	s.EatDot()
	s.EatDot()
	if s.Get() != 2 || s.Dots() != 2 {
		t.Fatalf("score=%d dots=%d, want 2/2", s.Get(), s.Dots())
	}
	s.Add(-5)
	if s.Get() != 2 {
		t.Fatalf("negative points changed the score to %d", s.Get())
	}
	s.Add(3)
	if s.Get() != 5 || s.Dots() != 2 {
		t.Fatalf("score=%d dots=%d, want 5/2", s.Get(), s.Dots())
	}
	s.Reset()
	if s.Get() != 0 || s.Dots() != 0 {
		t.Fatalf("reset left score=%d dots=%d", s.Get(), s.Dots())
	}
}
