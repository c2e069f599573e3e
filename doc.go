// Package slitpore builds periodic slit-pore structures: two facing sheets
// replicated from a layered crystal lattice, separated by a slit of given
// width, optionally decorated on their inner surfaces and solvated.
//
// Layout:
//
//	structure/  — atoms, bonds, named group trees, the periodic box
//	lattice/    — unit cells (graphene preset) and in-plane replication
//	functional/ — templates, quota plans and template attachment
//	solvate/    — the packer contract, its adapter and a random packer
//	pore/       — sheets, box, surface selection and the Build pipeline
//	config/     — YAML/env recipes (viper) → pore.Params and options
//	logging/    — the Logger seam (zap)
//	cli/, cmd/  — the slitpore command (cobra)
//
// Quick start:
//
//	p, err := pore.Build(pore.Params{
//		Length: 3, Side: 3, Layers: 3, Width: 1, Axis: pore.AxisZ,
//	})
//	// p.NumAtoms() == 2016, p.Box.Lengths.Z == 2.675
//
// Lengths are in nanometres, angles in degrees. Builds are deterministic
// for a fixed seed.
package slitpore
