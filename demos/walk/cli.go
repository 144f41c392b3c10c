package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phanxgames/walker"
)

// Options holds the parsed command line.
type Options struct {
	ConfigPath string
	LogLevel   string // empty keeps the config file's level
	Headless   bool
	Frames     int
	Script     string
	Watch      bool
	ShowHelp   bool
}

const defaultConfigPath = "demos/walk/walk.yaml"

// ParseArgs parses args (without the program name). Flags win over the
// LOG_LEVEL and HEADLESS environment variables.
func ParseArgs(args []string) (*Options, error) {
	fs := flag.NewFlagSet("walk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts := &Options{}
	fs.StringVar(&opts.ConfigPath, "config", defaultConfigPath, "path to the YAML config")
	fs.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVar(&opts.Headless, "headless", false, "run without a window")
	fs.IntVar(&opts.Frames, "frames", 0, "frames to run in headless mode (0 = until the script ends)")
	fs.StringVar(&opts.Script, "script", "", "JSON test script to drive input")
	fs.BoolVar(&opts.Watch, "watch", false, "reload textures when their files change")
	fs.BoolVar(&opts.ShowHelp, "h", false, "show help")
	fs.BoolVar(&opts.ShowHelp, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if opts.LogLevel == "" {
		opts.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	}
	if !opts.Headless {
		if env := os.Getenv("HEADLESS"); env != "" {
			opts.Headless = env == "1" || strings.ToLower(env) == "true"
		}
	}

	if opts.LogLevel != "" {
		if _, err := walker.ParseLogLevel(opts.LogLevel); err != nil {
			return nil, err
		}
	}
	if opts.Frames < 0 {
		return nil, fmt.Errorf("frames must be non-negative, got %d", opts.Frames)
	}
	if opts.Headless && opts.Frames == 0 && opts.Script == "" {
		return nil, fmt.Errorf("-headless needs -frames or -script")
	}
	return opts, nil
}

// PrintHelp writes usage to stdout.
func PrintHelp() {
	fmt.Fprintf(os.Stdout, `walk - sprite walk-cycle demo

Usage:
  walk [options]

Options:
  -config <path>      YAML config (default: %s)
  -log-level <level>  debug, info, warn or error (default: from config)
  -headless           run without a window
  -frames <n>         frames to run headless (default: until the script ends)
  -script <path>      JSON test script of hold/wait/spin/screenshot/quit steps
  -watch              reload textures when their files change
  -h, -help           show this help

Environment:
  LOG_LEVEL           log level when -log-level is not given
  HEADLESS            1 or true to run headless

Controls:
  W/A/S/D, arrows     walk
  Space               spin
  F12                 screenshot
  Escape              quit
`, defaultConfigPath)
}
