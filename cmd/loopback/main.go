// Command loopback runs the recursive pixel-feedback editor.
//
// Click the square in the top-left corner to spawn a viewport, then drag its
// handles: the band at the top rotates, the cross in the middle moves, the
// bottom-right corner resizes, and the top-left corner deletes. Keys 1/2/3
// switch between dual, edit-only, and view-only drawing; Escape quits.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/pixeldrift/loopback"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (created with defaults if missing)")
	scriptPath := flag.String("script", "", "path to a JSON input script to replay at startup")
	seed := flag.Int64("seed", 0, "spawn randomizer seed (0 = derive from the clock)")
	debug := flag.Bool("debug", false, "log per-frame stats to stderr")
	flag.Parse()

	cfg := loopback.DefaultConfig()
	if *configPath != "" {
		if _, err := os.Stat(*configPath); os.IsNotExist(err) {
			log.Printf("initializing config at %s", *configPath)
			if err := loopback.WriteConfig(*configPath, cfg); err != nil {
				log.Fatalf("couldn't initialize config: %v", err)
			}
		}
		var err error
		cfg, err = loopback.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("couldn't load config: %v", err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if *debug {
		cfg.Debug = true
	}

	var runner *loopback.TestRunner
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("couldn't read input script: %v", err)
		}
		runner, err = loopback.LoadTestScript(data)
		if err != nil {
			log.Fatalf("couldn't parse input script: %v", err)
		}
	}

	world := loopback.NewWorld(cfg)
	if err := loopback.Run(world, loopback.RunConfig{
		Title:   cfg.Title,
		ShowFPS: cfg.ShowFPS,
		Runner:  runner,
	}); err != nil {
		log.Fatal(err)
	}
}
