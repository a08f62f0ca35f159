package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anku308/wolfca/internal/automaton"
	"github.com/anku308/wolfca/internal/config"
	"github.com/anku308/wolfca/internal/engine"
	"github.com/anku308/wolfca/internal/export"
	"github.com/anku308/wolfca/internal/storage"
	"github.com/anku308/wolfca/internal/tui"
	"github.com/anku308/wolfca/internal/viz"
)

var (
	configFile string
	dataDir    string
	width      int
	depth      int
	stepMS     int
	debounceMS int
	ruleFlag   int
	seedFlag   string
	preset     string
	fps        int
	gens       int
	saveRun    bool
	svgPath    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wolfca",
		Short: "elementary cellular automaton lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, args)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".wolfca", "data directory for run artifacts")

	addEvolutionFlags := func(cmd *cobra.Command) {
		cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "cells per generation (1-64)")
		cmd.Flags().IntVar(&depth, "depth", config.DefaultDepth, "retained generations")
		cmd.Flags().IntVar(&ruleFlag, "rule", config.RandomRule, "wolfram code 0-255 (default random)")
		cmd.Flags().StringVar(&seedFlag, "seed", "", "seed row as decimal or 0x-hex (default random)")
		cmd.Flags().StringVar(&preset, "preset", "", "named rule preset (see `wolfca rules`)")
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive evolution in the terminal",
		RunE:  runLive,
	}
	addEvolutionFlags(liveCmd)
	liveCmd.Flags().IntVar(&stepMS, "step", config.DefaultStepMS, "evolution period in ms")
	liveCmd.Flags().IntVar(&debounceMS, "debounce", config.DefaultDebounceMS, "rule entry settle time in ms")
	liveCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	addEvolutionFlags(rootCmd)
	rootCmd.Flags().IntVar(&stepMS, "step", config.DefaultStepMS, "evolution period in ms")
	rootCmd.Flags().IntVar(&debounceMS, "debounce", config.DefaultDebounceMS, "rule entry settle time in ms")
	rootCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "evolve headless and print the final window",
		RunE:  runHeadless,
	}
	addEvolutionFlags(runCmd)
	runCmd.Flags().IntVar(&gens, "gens", 0, "generations to evolve (default: history depth)")
	runCmd.Flags().BoolVar(&saveRun, "save", false, "write metadata.json and generations.csv under --data")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write the final window as an SVG file")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot population per generation for a headless run",
		RunE:  runPlot,
	}
	addEvolutionFlags(plotCmd)
	plotCmd.Flags().IntVar(&gens, "gens", 0, "generations to evolve (default: history depth)")

	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "list named rule presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.PresetNames() {
				p := config.Presets[name]
				fmt.Printf("  %-8s %-10s %s\n", name, p.Summary, p.Behavior)
			}
		},
	}

	rootCmd.AddCommand(liveCmd, runCmd, plotCmd, rulesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolve merges config file, environment, flags and preset into concrete
// evolution parameters, filling an absent rule and seed with uniformly
// random values.
func resolve(cmd *cobra.Command) (*config.Config, automaton.Rule, uint64, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, 0, 0, err
	}

	if preset != "" {
		p, ok := config.Presets[preset]
		if !ok {
			return nil, 0, 0, fmt.Errorf("unknown preset %q (available: %s)",
				preset, strings.Join(config.PresetNames(), ", "))
		}
		cfg.Rule = int(p.Rule)
	}

	flagOverrides := map[string]func(){
		"width":    func() { cfg.Width = width },
		"depth":    func() { cfg.Depth = depth },
		"rule":     func() { cfg.Rule = ruleFlag },
		"seed":     func() { cfg.Seed = seedFlag },
		"step":     func() { cfg.StepMS = stepMS },
		"debounce": func() { cfg.DebounceMS = debounceMS },
		"fps":      func() { cfg.FPS = fps },
	}
	for name, apply := range flagOverrides {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			apply()
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, 0, 0, err
	}

	rule := automaton.Rule(cfg.Rule)
	if cfg.Rule == config.RandomRule {
		rule = automaton.Rule(rand.IntN(256))
	}
	var seed uint64
	if cfg.Seed == "" {
		seed = rand.Uint64()
	} else {
		seed, err = config.ParseSeed(cfg.Seed)
		if err != nil {
			return nil, 0, 0, err
		}
	}
	if cfg.Width < 64 {
		seed &= (1 << uint(cfg.Width)) - 1
	}
	return cfg, rule, seed, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, rule, seed, err := resolve(cmd)
	if err != nil {
		return err
	}
	eng := engine.New(engine.Options{
		Width:    cfg.Width,
		Depth:    cfg.Depth,
		Seed:     seed,
		Rule:     rule,
		Period:   cfg.Step(),
		Debounce: cfg.Debounce(),
	})
	return tui.Run(cfg, eng)
}

// evolve runs a headless evolution and answers the resulting window.
func evolve(cfg *config.Config, rule automaton.Rule, seed uint64) *automaton.History {
	history := automaton.NewHistory(cfg.Width, cfg.Depth, seed)
	n := gens
	if n <= 0 {
		n = cfg.Depth
	}
	for i := 0; i < n; i++ {
		history.Evolve(rule)
	}
	return history
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, rule, seed, err := resolve(cmd)
	if err != nil {
		return err
	}
	fmt.Printf("rule = %s\n", rule)
	fmt.Printf("seed = %#x\n", seed)

	history := evolve(cfg, rule, seed)
	printWindow(history)

	n := uint64(gens)
	if gens <= 0 {
		n = uint64(cfg.Depth)
	}
	if saveRun {
		st := storage.New(dataDir)
		runID, err := st.Save(storage.RunMetadata{
			Rule:        uint8(rule),
			Seed:        fmt.Sprintf("%#x", seed),
			Width:       cfg.Width,
			Depth:       cfg.Depth,
			Generations: n,
		}, history.Rows())
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		fmt.Printf("saved %s\n", runID)
	}
	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.HistoryToSVG(history.Rows(), 8)), 0644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		fmt.Printf("wrote %s\n", svgPath)
	}
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, rule, seed, err := resolve(cmd)
	if err != nil {
		return err
	}
	history := evolve(cfg, rule, seed)
	series := viz.PopulationSeries(history.Rows())
	caption := fmt.Sprintf("population per generation, %s, seed %#x", rule, seed)
	fmt.Println(viz.PlotPopulation(series, caption))
	return nil
}

func printWindow(history *automaton.History) {
	history.Each(func(_ int, a automaton.Row) {
		var b strings.Builder
		for i := 0; i < a.Len(); i++ {
			if a.Cell(i) {
				b.WriteRune('█')
			} else {
				b.WriteRune('·')
			}
		}
		fmt.Println(b.String())
	})
}
