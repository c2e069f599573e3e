// Package pore assembles slit pores: two parallel lattice sheets facing each
// other across a controlled gap inside an orthorhombic periodic box,
// optionally decorated with functional groups and optionally solvated.
//
// Pipeline (strictly forward):
//
//	lattice.Counts → lattice.Replicate → AssembleSheets → ComputeBox
//	  → [SelectSurface → functional.NewPlan → functional.Place]
//	  → freeze → [solvate.Adapt]
//
// Frames:
//
//   - The lattice's natural frame has a1 (bulk in-plane axis) along x,
//     the projected a2 (side in-plane axis) along y and stacking along z.
//   - The world frame is reached by the cyclic axis permutation that sends
//     stacking onto the separation Axis. The bulk axis is (Axis+1) mod 3.
//     All three separation axes are handled by the same index arithmetic.
//
// Sheets:
//
//   - NEAR ("TOP") keeps the replicated pose; FAR ("BOT") is shifted along
//     the separation axis by width + (nz·c − c), so the facing atomic planes
//     are exactly width apart.
//
// Mutation points:
//
//   - The lattice wrap-around (package lattice), the functional-group child
//     append, and one final freeze that shifts every atom by the bulk padding
//     and wraps it into [0, L). The freeze works on cloned groups.
//
// Errors:
//
//   - errs.ErrInvalidDimension before any lattice work for bad sizes.
//   - errs.ErrConfiguration for kind/option mismatches.
//   - errs.ErrOverQuota and errs.ErrPackingFailed from the optional stages.
//
// Concurrency:
//
//   - Build is synchronous and shares no state between calls. A *rand.Rand
//     passed through WithRand must not be used concurrently elsewhere.
package pore
