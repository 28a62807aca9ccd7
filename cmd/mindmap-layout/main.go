package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-mindmap/pkg/config"
	"github.com/dd0wney/cluso-mindmap/pkg/logging"
	"github.com/dd0wney/cluso-mindmap/pkg/metrics"
	"github.com/dd0wney/cluso-mindmap/pkg/mindmap"
	"github.com/dd0wney/cluso-mindmap/pkg/session"
	"github.com/dd0wney/cluso-mindmap/pkg/visualization"
)

func main() {
	var (
		inputFile  = flag.String("input", "", "Entity file (JSON or YAML)")
		configFile = flag.String("config", "", "Layout configuration file (YAML)")
		strategy   = flag.String("strategy", "", "Layout strategy: "+strings.Join(config.Strategies(), ", "))
		expand     = flag.String("expand", "", "Comma-separated node ids to expand, or 'all'")
		outputFile = flag.String("output", "", "Output file (default stdout)")
		pretty     = flag.Bool("pretty", false, "Indent JSON output")
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
	if *strategy != "" {
		cfg.Strategy = *strategy
	}

	entity, err := loadEntity(*inputFile)
	if err != nil {
		log.Fatalf("Failed to load entity: %v", err)
	}

	logger := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))
	s, err := session.New(session.Options{
		Config:  &cfg,
		Logger:  logger,
		Metrics: metrics.NewRegistry(),
	})
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := s.Load(entity); err != nil {
		log.Fatalf("Failed to build layout: %v", err)
	}
	for _, id := range expandIDs(*expand, entity) {
		if err := s.Expand(id); err != nil {
			log.Fatalf("Failed to expand %s: %v", id, err)
		}
	}

	view := s.View()
	export := visualization.Export
	if *pretty {
		export = visualization.ExportIndent
	}
	data, err := export(view.Nodes, view.Edges)
	if err != nil {
		log.Fatalf("Failed to encode layout: %v", err)
	}

	if err := writeOutput(*outputFile, data); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}

	info := s.LastBuild()
	logger.Info("layout written",
		logging.BuildID(info.ID),
		logging.Strategy(info.Strategy),
		logging.Int("nodes", len(view.Nodes)),
		logging.Int("edges", len(view.Edges)),
		logging.Bool("converged", info.Converged))
}

// loadEntity decodes a JSON or YAML entity file, chosen by extension.
func loadEntity(path string) (mindmap.EntityData, error) {
	var entity mindmap.EntityData

	data, err := os.ReadFile(path)
	if err != nil {
		return entity, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &entity)
	default:
		err = json.Unmarshal(data, &entity)
	}
	if err != nil {
		return entity, fmt.Errorf("decode %s: %w", path, err)
	}
	return entity, nil
}

// expandIDs returns the ids to open in order. Parents must be opened before
// their children, so "all" follows build order.
func expandIDs(flagValue string, entity mindmap.EntityData) []string {
	flagValue = strings.TrimSpace(flagValue)
	if flagValue == "" {
		return nil
	}
	if flagValue == "all" {
		return mindmap.ExpandableIDs(entity)
	}

	ids := make([]string, 0)
	for _, id := range strings.Split(flagValue, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func writeOutput(path string, data []byte) error {
	data = append(data, '\n')
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
