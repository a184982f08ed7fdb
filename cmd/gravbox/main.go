package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/gravbox/internal/config"
	"github.com/san-kum/gravbox/internal/forces"
	"github.com/san-kum/gravbox/internal/input"
	"github.com/san-kum/gravbox/internal/loop"
	"github.com/san-kum/gravbox/internal/scene"
	"github.com/san-kum/gravbox/internal/tui"
)

var (
	configFile string
	sceneFile  string
	tickRate   float64
	maxTicks   int
	gravityX   float64
	gravityY   float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravbox [scene]",
		Short: "interactive 2d rigid-body sandbox with gravitational attractors",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&sceneFile, "scene-file", "", "load scene from a yaml file instead of a built-in")
	rootCmd.Flags().Float64Var(&tickRate, "tick-rate", 0, "simulation ticks per second (0 = scene default)")
	rootCmd.Flags().IntVar(&maxTicks, "max-ticks", 0, "max catch-up ticks per frame (0 = scene default)")
	rootCmd.Flags().Float64Var(&gravityX, "gravity-x", 0, "uniform gravity x override")
	rootCmd.Flags().Float64Var(&gravityY, "gravity-y", 0, "uniform gravity y override")

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "list built-in scenes",
		RunE:  listScenes,
	}
	rootCmd.AddCommand(scenesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if tickRate > 0 {
		cfg.TickRate = tickRate
	}
	if maxTicks > 0 {
		cfg.MaxTicksPerFrame = maxTicks
	}
	if gravityX != 0 {
		cfg.GravityX = gravityX
	}
	if gravityY != 0 {
		cfg.GravityY = gravityY
	}

	name := cfg.Scene
	if len(args) == 1 {
		name = args[0]
	}

	var spec *scene.Spec
	var err error
	if sceneFile != "" {
		spec, err = scene.Load(sceneFile)
	} else {
		spec, err = scene.Lookup(name)
	}
	if err != nil {
		return err
	}
	cfg.Apply(spec)

	w, spawners, err := spec.Build()
	if err != nil {
		return err
	}

	field := forces.NewFieldWith(spec.Params.FieldG, spec.Params.FieldMinDistance)
	ctrl, err := loop.New(w, field, spec.TickRate(), spec.MaxTicksPerFrame())
	if err != nil {
		return err
	}
	ctrl.SetSpawners(spawners)

	handler := input.NewHandler(ctrl, input.DefaultKeymap())
	model := tui.NewModel(ctrl, handler, spec.Name)

	log.Info("starting scene", "scene", spec.Name,
		"tick_rate", spec.TickRate(), "bodies", len(w.Bodies()), "attractors", len(w.Attractors()))

	if err := tui.Run(model); err != nil {
		log.Error("simulation terminated", "err", err)
		os.Exit(1)
	}
	return nil
}

func listScenes(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tBODIES\tATTRACTORS\tSPAWNERS")
	for _, name := range scene.Names() {
		spec, err := scene.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", name, len(spec.Bodies), len(spec.Attractors), len(spec.Spawners))
	}
	return tw.Flush()
}
