// SPDX-License-Identifier: MIT
// Package: slitpore/functional
//
// plan.go — quota computation and the shuffled site partition.
//
// Contract:
//   • quota_i = ⌊coverage_i · N + 1e-9⌋; the slack absorbs binary
//     rounding so that 0.29 · 100 gives 29, not 28.
//   • Σ quota_i > N ⇒ ErrOverQuota. Σ coverage_i > 1 alone is accepted.
//   • Blocks are contiguous, in template order, over one shuffled order.
//   • Sites past the last block stay bare.
//
// Determinism:
//   • The only random draw is the single shuffle of 0..N-1.

package functional

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/slitpore/errs"
)

const (
	methodNewPlan = "NewPlan"

	quotaSlack = 1e-9
)

// Block is the half-open range [Start, End) of Plan.Order assigned to the
// template at index Template.
type Block struct {
	Template   int
	Start, End int
}

// Len is the number of sites in the block.
func (b Block) Len() int { return b.End - b.Start }

// Plan partitions a shuffled candidate-site order among templates.
type Plan struct {
	// Order is a permutation of candidate indices 0..N-1.
	Order []int
	// Blocks holds one block per template, in template order.
	Blocks []Block
}

// Quotas returns ⌊coverage_i · n⌋ for every template, tolerating a
// product that falls short of an integer by floating-point rounding only.
// Complexity: O(T).
func Quotas(n int, templates []Template) []int {
	q := make([]int, len(templates))
	for i, t := range templates {
		q[i] = int(math.Floor(t.Coverage*float64(n) + quotaSlack))
	}
	return q
}

// NewPlan validates templates, shuffles 0..n-1 with rng and assigns
// contiguous blocks sized by Quotas.
// Complexity: O(n + T) time, O(n) space.
func NewPlan(n int, templates []Template, rng *rand.Rand) (Plan, error) {
	if err := Validate(templates); err != nil {
		return Plan{}, err
	}
	if n < 0 {
		n = 0
	}

	quotas := Quotas(n, templates)
	total := 0
	for _, q := range quotas {
		total += q
	}
	if total > n {
		return Plan{}, errs.Wrapf(methodNewPlan, errs.ErrOverQuota,
			"quotas %v sum to %d > %d candidate sites", quotas, total, n)
	}

	p := Plan{
		Order:  permRange(n, rng),
		Blocks: make([]Block, len(templates)),
	}
	start := 0
	for i, q := range quotas {
		p.Blocks[i] = Block{Template: i, Start: start, End: start + q}
		start += q
	}

	return p, nil
}

// Assigned returns the candidate indices claimed by template t, in
// placement order. The slice aliases p.Order.
func (p Plan) Assigned(t int) []int {
	if t < 0 || t >= len(p.Blocks) {
		return nil
	}
	b := p.Blocks[t]
	return p.Order[b.Start:b.End]
}

// Total is the number of sites claimed by all templates.
func (p Plan) Total() int {
	n := 0
	for _, b := range p.Blocks {
		n += b.Len()
	}
	return n
}
