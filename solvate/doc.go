// Package solvate defines the solvent-packing contract consumed by the pore
// builder and ships a reference random-insertion packer.
//
// Contract (Packer):
//
//   - Input: host positions, the periodic box, an ordered list of
//     (label, template, count) solvents and a minimum non-overlap distance.
//   - Output: for every solvent, exactly Count molecules, each a rigid copy
//     of the template, all atoms inside [0, L) on every axis, no atom closer
//     than the overlap distance to a host atom or to an atom of another
//     packed molecule.
//   - Failure to meet the contract is ErrPackingFailed.
//
// Adapt wraps any Packer: it validates the solvent list up front
// (ErrConfiguration), enforces an optional MaxKinds capability, verifies the
// returned molecules and tags each with its solvent label.
//
// RandomPacker performs random sequential insertion with random rigid
// rotations and kd-tree overlap rejection. It is deterministic for a fixed
// seed. Overlap is measured to the nearest periodic image, which holds while
// overlap stays below half of every box length.
package solvate
