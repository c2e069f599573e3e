// Package config loads pore recipes from YAML files and SLITPORE_*
// environment variables (viper), resolves the legacy size aliases, and
// turns the result into pore.Params and pore.Options.
//
// Keys:
//
//	pore_length | pore_depth | x_sheet   sheet size along the bulk axis
//	side_dim | y_sheet                   sheet size along the side axis
//
// When pore_length and pore_depth are both given and no side key is,
// pore_depth is the side size (pore_length × pore_depth sheets).
//
//	n_sheets, pore_width, slit_pore_dim, x_bulk
//	func_groups, func_percent, func_ports   (parallel lists, exact arity)
//	solvent, n_solvent                      (parallel lists, exact arity)
//	kind, seed, overlap, bond_length, lattice, log
//
// Molecule lists are accepted from files only; every scalar key (and
// log.level, log.format) may be overridden from the environment, e.g.
// SLITPORE_PORE_WIDTH=1.2 or SLITPORE_LOG_LEVEL=debug.
package config
