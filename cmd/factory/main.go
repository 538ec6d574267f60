// Command factory reads machine descriptions and prints the fewest button
// presses for the indicator lights (part 1) and the joltage counters (part 2).
//
//	factory -input machines.txt -workers 8
//	factory -config factory.json -part 2 -debug
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/jolt/factory"
)

var (
	log = logrus.New()

	configPath string
	config     Config
)

func init() {
	flag.StringVar(&configPath, "config", "", "JSON config file path (optional)")
	flag.StringVar(&config.Input, "input", "", "machine list path (default stdin)")
	flag.StringVar(&config.Input, "i", "", "machine list path (shorthand)")
	flag.IntVar(&config.Workers, "workers", 1, "machines solved concurrently")
	flag.IntVar(&config.Part, "part", 0, "answer to print: 1, 2 or 0 for both")
	flag.BoolVar(&config.Debug, "debug", false, "log per-machine solver details")
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if config.Debug {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetOutput(os.Stderr)

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
}

// loadMachines parses the machine list at path, or stdin for "" and "-".
func loadMachines(path string) ([]factory.Machine, error) {
	var in io.ReadCloser = io.NopCloser(os.Stdin)
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		in = f
	}
	defer in.Close()

	return factory.Load(in)
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	if configPath != "" {
		// flags given explicitly win over the file
		set := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		fromFlags := config
		if err := ReadConfig(configPath, &config); err != nil {
			log.Fatalf("unable to read config %s: %s", configPath, err.Error())
		}
		if set["input"] || set["i"] {
			config.Input = fromFlags.Input
		}
		if set["workers"] {
			config.Workers = fromFlags.Workers
		}
		if set["part"] {
			config.Part = fromFlags.Part
		}
		if set["debug"] {
			config.Debug = fromFlags.Debug
		}
	}
	if config.Part < 0 || config.Part > 2 {
		log.Fatalf("invalid -part %d", config.Part)
	}

	setupLogging()
	log.WithFields(config.Fields()).Debug("config")

	machines, err := loadMachines(config.Input)
	if err != nil {
		log.Fatal("unable to load machines: ", err)
	}
	log.Infof("loaded %d machines", len(machines))

	rep, err := factory.SolveAll(mainCtx, machines, factory.Config{
		Workers: config.Workers,
		Press:   config.PressOptions(log),
		Logger:  log,
	})
	if err != nil {
		log.Fatal("solve failed: ", err)
	}

	if config.Part != 2 {
		fmt.Printf("Part 1: %d\n", rep.Lights)
	}
	if config.Part != 1 {
		fmt.Printf("Part 2: %d\n", rep.Joltage)
	}
}
