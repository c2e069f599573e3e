// Package lattice generates replicated crystalline lattices from a unit
// cell description.
//
// What:
//
//   - Spec: three spacings (nm), three cell angles α, β, γ (degrees) and a
//     basis mapping element labels to fractional coordinates.
//   - Graphene: the preset used by the slit-pore recipes.
//   - Counts: in-plane replication counts for a requested physical size.
//   - Replicate: the Cartesian atoms of an nx×ny×nz block plus its extents.
//
// Conventions:
//
//   - a1 lies along +x, a2 in the xy plane at angle γ from a1, a3 completes
//     the cell (standard crystallographic setting). For the 2D lattices this
//     package targets (α = β = 90°) the stacking vector a3 is +z.
//   - Extents are (nx·a, ny·b, nz·c). The in-plane perpendicular extent seen
//     by a periodic box is ny·b·sin γ; see ProjectedExtents.
//   - Replication counts are truncated, never rounded up:
//     nx = ⌊length / a⌋, ny = ⌊side / (b·sin γ)⌋.
//
// Complexity:
//
//   - Replicate: O(|basis| · nx · ny · nz) time and space.
package lattice
