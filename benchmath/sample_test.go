// Copyright 2025 The Heapbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"math"
	"testing"
)

func TestSummaryFormat(t *testing.T) {
	check := func(center, lo, hi float64, want string) {
		t.Helper()
		s := Summary{Center: center, Lo: lo, Hi: hi}
		got := s.PctRangeString()
		if got != want {
			t.Errorf("for %v CI [%v, %v], got %s, want %s", center, lo, hi, got, want)
		}
	}
	inf := math.Inf(1)

	check(1, 0.5, 1.1, "50%")
	check(1, 0.9, 1.5, "50%")
	check(1, 1, 1, "0%")

	check(1, -inf, 1, "∞")
	check(1, 1, inf, "∞")

	check(1, -1, 1, "?")
	check(0, -1, 1, "?")

	check(0, 0, 0, "0%")
}

func TestComparisonFormat(t *testing.T) {
	check := func(p float64, n1, n2 int, want string) {
		t.Helper()
		got := Comparison{P: p, N1: n1, N2: n2}.String()
		if got != want {
			t.Errorf("for %v,%v,%v, got %s, want %s", p, n1, n2, got, want)
		}
	}
	check(0.5, 1, 2, "p=0.500 n=1+2")
	check(0.5, 2, 2, "p=0.500 n=2")
	check(0, 1, 2, "n=1+2")
	check(0, 2, 2, "n=2")

	checkD := func(p, old, new, alpha float64, want string) {
		t.Helper()
		got := Comparison{P: p, Alpha: alpha}.FormatDelta(old, new)
		if got != want {
			t.Errorf("for p=%v %v=>%v @%v, got %s, want %s", p, old, new, alpha, got, want)
		}
	}
	checkD(0.5, 0, 0, 0.05, "~")
	checkD(0.01, 0, 0, 0.05, "0.00%")
	checkD(0.01, 1, 1, 0.05, "0.00%")
	checkD(0.01, 0, 1, 0.05, "?")
	checkD(0.01, 1, 1.5, 0.05, "+50.00%")
	checkD(0.01, 1, 0.5, 0.05, "-50.00%")
}

func TestNewSampleWarnings(t *testing.T) {
	s := NewSample([]float64{3, 1, 2}, &DefaultThresholds)
	if len(s.Warnings) != 0 {
		t.Errorf("unexpected warnings for valid sample: %v", s.Warnings)
	}
	for i, v := range []float64{1, 2, 3} {
		if s.Values[i] != v {
			t.Fatalf("Values = %v, want sorted ascending", s.Values)
		}
	}

	s = NewSample([]float64{1, math.Inf(1), -1}, &DefaultThresholds)
	if len(s.Warnings) != 2 {
		t.Errorf("got %d warnings for inf and negative values, want 2: %v",
			len(s.Warnings), s.Warnings)
	}
}

func TestAssumptionSummaries(t *testing.T) {
	vals := []float64{0.010, 0.011, 0.009, 0.010, 0.012, 0.010, 0.011, 0.009, 0.010, 0.010}
	s := NewSample(vals, &DefaultThresholds)

	for _, a := range []Assumption{AssumeNormal, AssumeNothing} {
		sum := a.Summary(s, 0.95)
		if math.IsNaN(sum.Center) || math.IsInf(sum.Center, 0) {
			t.Errorf("%s center = %v", a.SummaryLabel(), sum.Center)
		}
		if sum.Center < 0.009 || sum.Center > 0.012 {
			t.Errorf("%s center = %v, want within sample bounds", a.SummaryLabel(), sum.Center)
		}
		if sum.Lo > sum.Center || sum.Hi < sum.Center {
			t.Errorf("%s interval [%v, %v] does not contain center %v",
				a.SummaryLabel(), sum.Lo, sum.Hi, sum.Center)
		}
	}
}

func TestOneTrialSummary(t *testing.T) {
	s := NewSample([]float64{0.5}, &DefaultThresholds)
	for _, a := range []Assumption{AssumeNormal, AssumeNothing} {
		sum := a.Summary(s, 0.95)
		if sum.Center != 0.5 {
			t.Errorf("%s center = %v, want 0.5", a.SummaryLabel(), sum.Center)
		}
		if len(sum.Warnings) == 0 {
			t.Errorf("%s summary of a single trial has no warning", a.SummaryLabel())
		}
		if !math.IsInf(sum.Lo, -1) || !math.IsInf(sum.Hi, 1) {
			t.Errorf("%s interval = [%v, %v], want unbounded", a.SummaryLabel(), sum.Lo, sum.Hi)
		}
	}
}

func TestCompare(t *testing.T) {
	// Clearly separated samples must be reported as different;
	// identical samples must not.
	slow := NewSample([]float64{10, 11, 10, 12, 11, 10, 11, 12}, &DefaultThresholds)
	fast := NewSample([]float64{1, 1.1, 0.9, 1, 1.2, 1.1, 1, 0.9}, &DefaultThresholds)

	for _, a := range []Assumption{AssumeNormal, AssumeNothing} {
		c := a.Compare(fast, slow)
		if c.P >= c.Alpha {
			t.Errorf("%s: p = %v for clearly different samples, alpha %v",
				a.SummaryLabel(), c.P, c.Alpha)
		}
		if c.N1 != 8 || c.N2 != 8 {
			t.Errorf("%s: n = %d+%d, want 8+8", a.SummaryLabel(), c.N1, c.N2)
		}

		c = a.Compare(fast, fast)
		if c.P < c.Alpha {
			t.Errorf("%s: p = %v for a sample against itself, alpha %v",
				a.SummaryLabel(), c.P, c.Alpha)
		}
	}
}
