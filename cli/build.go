// SPDX-License-Identifier: MIT
// Package: slitpore/cli
//
// build.go — `slitpore build`.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/slitpore/config"
	"github.com/katalvlaran/slitpore/logging"
	"github.com/katalvlaran/slitpore/pore"
	"github.com/katalvlaran/slitpore/structure"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type buildOptions struct {
	configPath string
	seed       int64
	format     string
}

// SheetSummary describes one sheet of a built pore.
type SheetSummary struct {
	Name   string `json:"name"`
	Atoms  int    `json:"atoms"`
	Sites  int    `json:"sites"`
	Placed int    `json:"placed"`
	// Span is the sheet's extent along the pore axis, groups included.
	Span [2]float64 `json:"span"`
}

// Summary is what `slitpore build` prints.
type Summary struct {
	Kind   string         `json:"kind"`
	Counts [3]int         `json:"counts"`
	Box    [3]float64     `json:"box"`
	Volume float64        `json:"volume"`
	Atoms  int            `json:"atoms"`
	Sheets []SheetSummary `json:"sheets"`
	// Groups counts functional groups and solvent molecules by label.
	Groups map[string]int `json:"groups,omitempty"`
}

// Summarize condenses p.
func Summarize(p *pore.Pore) Summary {
	s := Summary{
		Kind:   p.Kind.String(),
		Counts: p.Counts,
		Box:    [3]float64{p.Box.Lengths.X, p.Box.Lengths.Y, p.Box.Lengths.Z},
		Volume: p.Box.Volume(),
		Atoms:  p.NumAtoms(),
		Groups: map[string]int{},
	}
	axis := int(p.Params.Axis)
	for _, sh := range p.Sheets() {
		ss := SheetSummary{
			Name:   sh.Group.Name,
			Atoms:  sh.Group.NumAtoms(),
			Sites:  len(p.Sites[sh.Role]),
			Placed: len(p.Placements[sh.Role]),
		}
		if lo, hi, ok := sh.Group.Bounds(); ok {
			ss.Span = [2]float64{structure.Component(lo, axis), structure.Component(hi, axis)}
		}
		s.Sheets = append(s.Sheets, ss)
		for _, c := range sh.Group.Children {
			s.Groups[c.Name]++
		}
	}
	for _, m := range p.Solvent {
		s.Groups[m.Name]++
	}
	if len(s.Groups) == 0 {
		s.Groups = nil
	}
	return s
}

func newBuildCommand(root *rootOptions) *cobra.Command {
	opts := &buildOptions{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a pore from a recipe and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, root, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "recipe file (YAML); empty reads SLITPORE_* variables")
	f.Int64Var(&opts.seed, "seed", 0, "override the recipe seed")
	f.StringVarP(&opts.format, "format", "o", formatText, "output format (text, json)")
	return cmd
}

func runBuild(cmd *cobra.Command, root *rootOptions, opts *buildOptions) error {
	if opts.format != formatText && opts.format != formatJSON {
		return fmt.Errorf("build: unknown format %q", opts.format)
	}

	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = opts.seed
	}
	if root.logLevel != "" {
		cfg.Log.Level = root.logLevel
	}
	if root.logFormat != "" {
		cfg.Log.Format = root.logFormat
	}

	log, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	log = log.Named("slitpore")

	params, err := cfg.Params()
	if err != nil {
		return err
	}
	popts, err := cfg.Options()
	if err != nil {
		return err
	}
	popts = append(popts, pore.WithLogger(log))

	p, err := pore.Build(params, popts...)
	if err != nil {
		log.Error("build failed", logging.Err(err))
		return err
	}
	sum := Summarize(p)
	log.Info("pore built",
		logging.String("kind", sum.Kind),
		logging.Int("atoms", sum.Atoms),
		logging.Int64("seed", cfg.Seed))

	if opts.format == formatJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	}
	return writeText(cmd.OutOrStdout(), sum)
}

func writeText(w io.Writer, s Summary) error {
	var err error
	printf := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}
	printf("kind:   %s\n", s.Kind)
	printf("cells:  %d x %d x %d\n", s.Counts[0], s.Counts[1], s.Counts[2])
	printf("box:    %.4f %.4f %.4f nm (%.4f nm^3)\n", s.Box[0], s.Box[1], s.Box[2], s.Volume)
	printf("atoms:  %d\n", s.Atoms)
	for _, sh := range s.Sheets {
		printf("sheet %s: atoms=%d sites=%d placed=%d span=[%.4f, %.4f]\n",
			sh.Name, sh.Atoms, sh.Sites, sh.Placed, sh.Span[0], sh.Span[1])
	}
	labels := make([]string, 0, len(s.Groups))
	for l := range s.Groups {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	for _, l := range labels {
		printf("group %s: %d\n", l, s.Groups[l])
	}
	return err
}
