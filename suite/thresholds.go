/*
Copyright 2026 The Benchtab Authors
SPDX-License-Identifier: Apache-2.0
*/

package suite

import "errors"

// ErrInvalidThreshold is returned by Build when a threshold resolves outside
// [0, 1]. No partial suite is returned alongside it.
var ErrInvalidThreshold = errors.New("threshold out of range [0, 1]")

// ThresholdPolicy decides each check's pass/fail cutoff. It is either uniform
// (one scalar for every check) or per-check (a mapping by canonical check
// name, with each check's own documented default filling the gaps).
type ThresholdPolicy struct {
	uniform  float64
	perCheck map[string]float64
	mapped   bool
}

// Uniform applies one threshold to every check in the suite.
func Uniform(threshold float64) ThresholdPolicy {
	return ThresholdPolicy{uniform: threshold}
}

// PerCheck looks thresholds up by canonical check name. Checks absent from
// the mapping use their own default; resolution never fails for unmapped
// names. A nil mapping behaves as an empty one.
func PerCheck(thresholds map[string]float64) ThresholdPolicy {
	return ThresholdPolicy{perCheck: thresholds, mapped: true}
}

// resolve returns the policy's threshold for the named check. The fallback is
// check-specific; there is no shared default across checks.
func (p ThresholdPolicy) resolve(name string, fallback float64) float64 {
	if !p.mapped {
		return p.uniform
	}
	if threshold, ok := p.perCheck[name]; ok {
		return threshold
	}
	return fallback
}
