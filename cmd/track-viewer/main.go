package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tile-track/audio"
	"github.com/lixenwraith/tile-track/config"
)

var (
	configFlag = flag.String("config", "", "YAML settings file")
	debugFlag  = flag.Bool("debug", false, "write logs to "+logDir+"/"+logFileName)
	seedFlag   = flag.Int64("seed", 0, "override seed")
	lengthFlag = flag.Int("length", 0, "override track length")
)

func main() {
	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid environment: %v\n", err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seedFlag
		case "length":
			cfg.Length = *lengthFlag
		}
	})

	gen, err := cfg.ToGenerator()
	if err == nil {
		err = gen.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}
	gen.Logger = log.New(log.Writer(), "[generator] ", log.LstdFlags|log.Lmicroseconds)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	// Panic recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTRACK-VIEWER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	audioCfg := cfg.Audio
	cue := audio.NewCue(&audioCfg)
	if err := cue.Initialize(); err != nil {
		// Non-fatal, the viewer runs without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer cue.Cleanup()

	viewer, err := NewViewer(screen, gen, cue)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to generate track: %v\n", err)
		os.Exit(1)
	}
	viewer.run()
}
