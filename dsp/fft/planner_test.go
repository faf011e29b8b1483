package fft

import "testing"

func TestPlannerReusesEngineForSameLength(t *testing.T) {
	p := NewPlanner(BackendAuto)

	a, err := p.Plan(1024)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	b, err := p.Plan(1024)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if a != b {
		t.Fatal("expected the held engine for a repeated length")
	}
	if p.Len() != 1024 {
		t.Fatalf("Len()=%d want 1024", p.Len())
	}
}

func TestPlannerReplacesEngineOnLengthChange(t *testing.T) {
	p := NewPlanner(BackendAuto)
	if p.Len() != 0 {
		t.Fatalf("Len()=%d before planning, want 0", p.Len())
	}

	// Every distinct length must not accumulate an engine.
	for _, n := range []int{1024, 1000, 2048, 1000} {
		eng, err := p.Plan(n)
		if err != nil {
			t.Fatalf("Plan(%d): %v", n, err)
		}
		if eng.Len() != n {
			t.Fatalf("engine Len()=%d want %d", eng.Len(), n)
		}
		if p.Len() != n {
			t.Fatalf("planner Len()=%d want %d", p.Len(), n)
		}
	}
}

func TestPlannerPropagatesErrors(t *testing.T) {
	p := NewPlanner(BackendGonum)
	if _, err := p.Plan(0); err == nil {
		t.Fatal("expected error for zero length")
	}
	if p.Len() != 0 {
		t.Fatalf("failed plan must not be held, Len()=%d", p.Len())
	}

	if _, err := p.Plan(512); err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if _, err := p.Plan(-1); err == nil {
		t.Fatal("expected error for negative length")
	}
	if p.Len() != 512 {
		t.Fatalf("failed plan replaced the held engine, Len()=%d", p.Len())
	}
}
