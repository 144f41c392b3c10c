// walk moves a sprite over a background with a four-direction walk cycle.
// Run from the repository root:
//
//	go run ./demos/walk
//	go run ./demos/walk -headless -script demos/walk/walk_script.json
package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/walker"
	"github.com/phanxgames/walker/ecs"

	"github.com/yohamta/donburi"
)

func main() {
	opts, err := ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "walk: %v\n", err)
		PrintHelp()
		os.Exit(1)
	}
	if opts.ShowHelp {
		PrintHelp()
		return
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "walk: %v\n", err)
		os.Exit(1)
	}
}

func run(opts *Options) error {
	cfg, err := walker.LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	cfg.Watch = cfg.Watch || opts.Watch

	logger, err := walker.NewLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}
	walker.SetLogger(logger)

	scene, err := walker.NewScene(cfg)
	if err != nil {
		return err
	}
	defer scene.Close()

	world := donburi.NewWorld()
	scene.SetEventStore(ecs.NewDonburiStore(world))
	ecs.TrackFrames(world)
	ecs.AnimationEventType.Subscribe(world, func(w donburi.World, e walker.AnimationEvent) {
		logger.Debug("frame advanced", "component", "walk",
			"direction", e.Direction, "column", e.Column, "x", e.X, "y", e.Y)
	})
	scene.OnFrame(func() { ecs.AnimationEventType.ProcessEvents(world) })

	if cfg.Watch {
		if err := scene.EnableWatch(); err != nil {
			return err
		}
	}

	if opts.Script != "" {
		data, err := os.ReadFile(opts.Script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := walker.LoadTestScript(data)
		if err != nil {
			return err
		}
		scene.SetTestRunner(runner)
	}

	if !opts.Headless {
		return walker.Run(scene)
	}
	res, err := walker.RunHeadless(scene, walker.HeadlessConfig{Frames: opts.Frames})
	if err != nil {
		return err
	}
	logger.Info("walk finished", "component", "walk",
		"frames", res.Frames, "advances", res.Advances,
		"row", res.Row, "column", res.Column,
		"x", res.Position[0], "y", res.Position[1])
	return nil
}
