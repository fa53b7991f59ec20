// Copyright 2025 The Heapbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmath computes statistics over distributions of
// benchmark trial durations.
//
// Callers state a distributional assumption and the package picks the
// matching summary statistic and significance test. Analysis results
// carry a list of warnings as an []error value; these don't prevent
// analysis but should be shown to the user alongside the results.
package benchmath

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/mathx"
	"github.com/aclements/go-moremath/stats"
)

// A Sample is a set of repeated trial measurements of one heap
// candidate, in seconds per trial.
type Sample struct {
	// Values are the measured durations, in ascending order.
	Values []float64

	// Thresholds stores the statistical thresholds used by tests
	// on this sample.
	Thresholds *Thresholds

	// Warnings is a list of issues with this sample that should
	// be reported to the user.
	Warnings []error
}

// NewSample constructs a Sample from a set of trial durations.
// Durations must be non-negative and finite; offending values are
// reported in the sample's warnings since they indicate a broken
// timer rather than a broken candidate.
func NewSample(values []float64, t *Thresholds) *Sample {
	var warnings []error
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			warnings = append(warnings, fmt.Errorf("measured duration %v is not a valid duration", v))
		}
	}
	sort.Float64s(values)
	return &Sample{values, t, warnings}
}

func (s *Sample) sample() stats.Sample {
	return stats.Sample{Xs: s.Values, Sorted: true}
}

// A Thresholds configures the thresholds used by statistical tests.
//
// This should be initialized to DefaultThresholds because it may be
// extended with other fields in the future.
type Thresholds struct {
	// CompareAlpha is the alpha level below which
	// Assumption.Compare rejects the null hypothesis that two
	// samples come from the same distribution.
	//
	// This is typically 0.05.
	CompareAlpha float64
}

// DefaultThresholds contains a reasonable set of defaults for
// Thresholds.
var DefaultThresholds = Thresholds{
	CompareAlpha: 0.05,
}

// An Assumption indicates a distributional assumption about a sample.
type Assumption interface {
	// SummaryLabel returns the string name for the summary
	// statistic under this assumption, such as "mean" or
	// "median".
	SummaryLabel() string

	// Summary returns a summary statistic and its confidence
	// interval at the given confidence level for Sample s.
	//
	// Confidence is given in the range [0,1], e.g., 0.95 for 95%
	// confidence.
	Summary(s *Sample, confidence float64) Summary

	// Compare tests whether s1 and s2 come from the same
	// distribution.
	Compare(s1, s2 *Sample) Comparison
}

// A Summary summarizes a Sample.
type Summary struct {
	// Center is some measure of the central tendency of a sample.
	Center float64

	// Lo and Hi give the bounds of the confidence interval around
	// Center.
	Lo, Hi float64

	// Confidence is the actual confidence level of the interval
	// given by Lo, Hi. It will be >= the requested level.
	Confidence float64

	// Warnings is a list of warnings about this summary or its
	// confidence interval.
	Warnings []error
}

// PctRangeString renders the range of the Summary's confidence
// interval as a percentage of its center.
func (s Summary) PctRangeString() string {
	if math.IsInf(s.Lo, 0) || math.IsInf(s.Hi, 0) {
		return "∞"
	}

	// If the signs of the bounds differ from the center, the range
	// can't be rendered as a percent.
	var csign = mathx.Sign(s.Center)
	if csign != mathx.Sign(s.Lo) || csign != mathx.Sign(s.Hi) {
		return "?"
	}

	// A zero center means zero bounds, for which 0% is fair.
	if s.Center == 0 {
		return "0%"
	}

	v := math.Max(s.Hi/s.Center-1, 1-s.Lo/s.Center)
	return fmt.Sprintf("%.0f%%", 100*v)
}

// A Comparison is the result of comparing two samples to test if they
// come from the same distribution.
type Comparison struct {
	// P is the p-value of the null hypothesis that the two
	// samples come from the same distribution. If P is less than
	// a threshold alpha (typically 0.05), the null hypothesis is
	// rejected.
	//
	// P can be 0, which indicates an exact result.
	P float64

	// N1 and N2 are the sizes of the two samples.
	N1, N2 int

	// Alpha is the alpha threshold for this test. If P < Alpha,
	// the samples are considered significantly different.
	Alpha float64

	// Warnings is a list of warnings about this comparison.
	Warnings []error
}

// String summarizes the comparison. The general form is
// "p=0.PPP n=N1+N2", shortened when possible.
func (c Comparison) String() string {
	var s string
	if c.P != 0 {
		s = fmt.Sprintf("p=%0.3f ", c.P)
	}
	if c.N1 == c.N2 {
		return s + fmt.Sprintf("n=%d", c.N1)
	}
	return s + fmt.Sprintf("n=%d+%d", c.N1, c.N2)
}

// FormatDelta formats the difference in the centers of two compared
// distributions. The old and new values must be the center summaries
// of the two compared samples. If the Comparison accepts the null
// hypothesis that the samples come from the same distribution,
// FormatDelta returns "~" to indicate there's no meaningful
// difference. Otherwise, it returns the percent difference between
// the centers.
func (c Comparison) FormatDelta(old, new float64) string {
	if c.P > c.Alpha {
		return "~"
	}
	if old == new {
		return "0.00%"
	}
	if old == 0 {
		return "?"
	}
	pct := ((new / old) - 1.0) * 100.0
	return fmt.Sprintf("%+.2f%%", pct)
}
