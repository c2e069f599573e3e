// Package functional decorates pore-facing surface sites with substituent
// groups at a requested areal coverage.
//
// What:
//
//   - Template: a rigid fragment with an anchor atom, an attachment
//     direction in its local frame and a target coverage in (0,1].
//   - Plan: a seeded shuffle of the candidate sites partitioned into
//     contiguous blocks, one per template, of size ⌊coverage·N⌋.
//   - Place: clones each template onto its assigned sites, rotating the
//     attachment direction to point back at the host and putting the
//     anchor one bond length out along the site's outward normal.
//
// Guarantees:
//
//   - Σ quotas ≤ N, otherwise ErrOverQuota (fail fast, no truncation).
//   - No site is claimed twice; blocks never overlap or reorder.
//   - Host atoms are never modified; placed groups are appended as children.
//   - Same sites, templates and seed ⇒ bit-identical placements.
//
// Randomness:
//
//   - The shuffle draws only from the *rand.Rand handed to NewPlan. A nil
//     handle selects a fixed default stream, never process-wide state.
//
// Complexity:
//
//   - NewPlan: O(N + T). Place: O(Σ quota · template size).
package functional
