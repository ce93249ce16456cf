package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

const defaultConfigFile = "config.json"

// bindFlags registers command-line overrides for every config field. Only the
// flags actually given on the command line are applied on top of the file.
func bindFlags(fs *flag.FlagSet, config *utils.Config) (configPath *string, apply func()) {
	defaults := utils.DefaultConfig()
	configPath = fs.String("config", defaultConfigFile, "path to a JSON config file")

	rows := fs.Int("rows", defaults.Rows, "number of grid rows")
	cols := fs.Int("cols", defaults.Columns, "number of grid columns")
	probability := fs.Float64("p", defaults.Probability, "initial probability of a cell being alive")
	seed := fs.Int64("seed", defaults.Seed, "seed for the random grid")
	iterations := fs.Int("iterations", defaults.Iterations, "maximum number of iterations")
	generator := fs.String("generator", defaults.Generator, "random generator: pcg or mt19937")
	gridFile := fs.String("grid", "", "CSV or JSON grid file replacing the random grid")
	ruleFile := fs.String("rules", "", "JSON custom ruleset file")
	frameRate := fs.Duration("frame-rate", defaults.FrameRate, "pause between iterations when running all")
	parallel := fs.Bool("parallel", defaults.UseParallel, "evaluate generations on all CPUs")
	interactive := fs.Bool("interactive", defaults.Interactive, "read next/all/restart/quit commands from stdin")
	video := fs.String("video", "", "record every rendered iteration to this MJPEG .avi file")
	chartFile := fs.String("chart", "", "write a population chart PNG to this file")
	cellSize := fs.Int("cell-size", defaults.CellSize, "pixels per cell in recorded video")

	apply = func() {
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "rows":
				config.Rows = *rows
			case "cols":
				config.Columns = *cols
			case "p":
				config.Probability = *probability
			case "seed":
				config.Seed = *seed
			case "iterations":
				config.Iterations = *iterations
			case "generator":
				config.Generator = *generator
			case "grid":
				config.GridFile = *gridFile
			case "rules":
				config.RuleFile = *ruleFile
			case "frame-rate":
				config.FrameRate = *frameRate
			case "parallel":
				config.UseParallel = *parallel
			case "interactive":
				config.Interactive = *interactive
			case "video":
				config.VideoFile = *video
			case "chart":
				config.ChartFile = *chartFile
			case "cell-size":
				config.CellSize = *cellSize
			}
		})
	}
	return configPath, apply
}

// loadConfig reads the config file, falling back to defaults when the default
// file does not exist, then applies command-line overrides.
func loadConfig(fs *flag.FlagSet, args []string) (utils.Config, error) {
	var config utils.Config
	configPath, apply := bindFlags(fs, &config)
	if err := fs.Parse(args); err != nil {
		return config, err
	}

	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if *configPath != defaultConfigFile || !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}
	apply()

	return config, config.Validate()
}

func main() {
	config, err := loadConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("config: %+v", err)
	}

	game, err := initializeGame(config, os.Stdout)
	if err != nil {
		log.Fatalf("init: %+v", err)
	}
	game.displayGameInfo()
	if err = game.render(); err != nil {
		log.Fatalf("render: %+v", err)
	}

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	start := time.Now()
	if config.Interactive {
		err = game.interactiveLoop(os.Stdin, sigChan)
	} else {
		var steps int
		steps, err = game.runAllIterations(sigChan)
		if err == nil {
			if game.run.Stopped() {
				fmt.Println("\n🛑 Shutting down gracefully...")
			} else {
				fmt.Printf("\n🏁 Finished after %d iterations in %.1fs\n", steps, time.Since(start).Seconds())
			}
		}
	}
	if err != nil {
		log.Fatalf("run: %+v", err)
	}

	if err = game.finish(); err != nil {
		log.Fatalf("finish: %+v", err)
	}
}
