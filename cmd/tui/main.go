package main

import (
	"flag"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-mindmap/pkg/config"
	"github.com/dd0wney/cluso-mindmap/pkg/logging"
	"github.com/dd0wney/cluso-mindmap/pkg/metrics"
	"github.com/dd0wney/cluso-mindmap/pkg/mindmap"
	"github.com/dd0wney/cluso-mindmap/pkg/session"
)

func main() {
	var (
		inputFile  = flag.String("input", "", "Entity file (YAML or JSON)")
		configFile = flag.String("config", "", "Layout configuration file (YAML)")
		logFile    = flag.String("log", "", "Write JSON logs to this file")
	)

	flag.Parse()

	if *inputFile == "" {
		log.Fatal("--input is required")
	}

	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// The terminal belongs to the UI, so logs only go to a file.
	logger := logging.NewNopLogger()
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		logger = logging.NewJSONLogger(f, logging.ParseLevel(cfg.LogLevel))
	}

	data, err := os.ReadFile(*inputFile)
	if err != nil {
		log.Fatalf("Failed to read entity: %v", err)
	}
	// JSON is a subset of YAML, so one decoder covers both formats.
	var entity mindmap.EntityData
	if err := yaml.Unmarshal(data, &entity); err != nil {
		log.Fatalf("Failed to decode entity: %v", err)
	}

	s, err := session.New(session.Options{Config: &cfg, Logger: logger, Metrics: metrics.NewRegistry()})
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if err := s.Load(entity); err != nil {
		log.Fatalf("Failed to build layout: %v", err)
	}

	p := tea.NewProgram(initialModel(s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
