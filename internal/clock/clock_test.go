package clock

import (
	"testing"
	"time"
)

func TestRealClock_Now(t *testing.T) {
	clk := RealClock{}
	before := time.Now()
	now := clk.Now()
	if now.Before(before) || now.After(time.Now()) {
		t.Errorf("RealClock.Now returned unexpected time: %v", now)
	}
}

func TestMockClock_Advance(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clk := NewMockClock(start)

	if got := clk.Now(); !got.Equal(start) {
		t.Fatalf("Now() = %v, want %v", got, start)
	}
	clk.Advance(3 * time.Second)
	if got := Since(clk, start); got != 3*time.Second {
		t.Errorf("Since() = %v, want 3s", got)
	}
}

func TestMockClock_AutoAdvance(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clk := NewMockClock(start)
	clk.AutoAdvance(time.Millisecond)

	first := clk.Now()
	second := clk.Now()
	if d := second.Sub(first); d != time.Millisecond {
		t.Errorf("consecutive Now() calls differ by %v, want 1ms", d)
	}
}
