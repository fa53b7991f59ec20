// Copyright 2025 The Heapbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// AssumeNormal is an assumption that a sample is normally
// distributed. The summary statistic is the sample mean and
// comparisons are done using the two-sample Welch t-test.
var AssumeNormal Assumption = assumeNormal{}

type assumeNormal struct{}

func (assumeNormal) SummaryLabel() string {
	return "mean"
}

func (assumeNormal) Summary(s *Sample, confidence float64) Summary {
	if len(s.Values) < 2 {
		return oneSampleSummary(s, confidence)
	}
	sample := s.sample()
	mean, lo, hi := sample.MeanCI(confidence)

	return Summary{
		Center:     mean,
		Lo:         lo,
		Hi:         hi,
		Confidence: confidence,
	}
}

func (assumeNormal) Compare(s1, s2 *Sample) Comparison {
	t, err := stats.TwoSampleWelchTTest(s1.sample(), s2.sample(), stats.LocationDiffers)
	if err != nil {
		// The t-test failed. Report as if there's no
		// significant difference, along with the error.
		return Comparison{P: 1, N1: len(s1.Values), N2: len(s2.Values),
			Alpha: s1.Thresholds.CompareAlpha, Warnings: []error{err}}
	}
	return Comparison{P: t.P, N1: len(s1.Values), N2: len(s2.Values),
		Alpha: s1.Thresholds.CompareAlpha}
}

// AssumeNothing makes no distributional assumption. The summary
// statistic is the sample median with a confidence interval drawn
// from the order statistics, and comparisons are done using the
// Mann-Whitney U-test.
var AssumeNothing Assumption = assumeNothing{}

type assumeNothing struct{}

func (assumeNothing) SummaryLabel() string {
	return "median"
}

func (assumeNothing) Summary(s *Sample, confidence float64) Summary {
	if len(s.Values) < 2 {
		return oneSampleSummary(s, confidence)
	}
	sample := s.sample()
	lo, hi := medianCI(s.Values, confidence)

	return Summary{
		Center:     sample.Quantile(0.5),
		Lo:         lo,
		Hi:         hi,
		Confidence: confidence,
	}
}

func (assumeNothing) Compare(s1, s2 *Sample) Comparison {
	u, err := stats.MannWhitneyUTest(s1.Values, s2.Values, stats.LocationDiffers)
	if err != nil {
		// The U-test failed, typically because all values are
		// equal. Report no significant difference.
		return Comparison{P: 1, N1: len(s1.Values), N2: len(s2.Values),
			Alpha: s1.Thresholds.CompareAlpha, Warnings: []error{err}}
	}
	return Comparison{P: u.P, N1: len(s1.Values), N2: len(s2.Values),
		Alpha: s1.Thresholds.CompareAlpha}
}

// oneSampleSummary handles samples too small for an interval
// estimate. The center is still reported so a single trial remains
// usable; the unbounded interval carries a warning.
func oneSampleSummary(s *Sample, confidence float64) Summary {
	var center float64
	if len(s.Values) > 0 {
		center = s.Values[0]
	}
	return Summary{
		Center:     center,
		Lo:         math.Inf(-1),
		Hi:         math.Inf(1),
		Confidence: 1,
		Warnings: []error{
			fmt.Errorf("need at least 2 trials for a %v%% confidence interval", 100*confidence),
		},
	}
}

// medianCI returns a confidence interval for the median from the
// order statistics of the sorted sample, using the normal
// approximation to the binomial to pick the ranks. The interval is
// conservative for small samples.
func medianCI(sorted []float64, confidence float64) (lo, hi float64) {
	n := len(sorted)
	z := stats.StdNormal.InvCDF(1 - (1-confidence)/2)
	d := z * math.Sqrt(float64(n)) / 2
	l := int(math.Floor(float64(n)/2 - d))
	h := int(math.Ceil(float64(n)/2 + d))
	if l < 0 {
		l = 0
	}
	if h > n-1 {
		h = n - 1
	}
	return sorted[l], sorted[h]
}
