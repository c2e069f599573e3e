// Package cli implements the slitpore command line (cobra).
//
//	slitpore build --config pore.yaml [--seed N] [--format text|json]
//	slitpore version
//
// build loads a recipe (file, or SLITPORE_* variables when --config is
// empty), builds the pore and prints a summary. Structure files are not
// written; the summary is meant for inspection and scripting.
package cli
