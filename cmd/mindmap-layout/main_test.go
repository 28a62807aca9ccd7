package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dd0wney/cluso-mindmap/pkg/mindmap"
)

func TestLoadEntity_YAMLAndJSON(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "entity.yaml")
	os.WriteFile(yamlPath, []byte(`
id: condition-1
name: Hypertension
kind: condition
categories:
  - key: symptoms
    items:
      - id: s1
        title: Headache
domains:
  - key: interventions
    entities:
      - id: i1
        title: Low sodium diet
        related:
          - id: r1
            title: DASH trial
`), 0o644)

	jsonPath := filepath.Join(dir, "entity.json")
	os.WriteFile(jsonPath, []byte(`{
  "id": "condition-1", "name": "Hypertension", "kind": "condition",
  "categories": [{"key": "symptoms", "items": [{"id": "s1", "title": "Headache"}]}],
  "domains": [{"key": "interventions", "entities": [
    {"id": "i1", "title": "Low sodium diet", "related": [{"id": "r1", "title": "DASH trial"}]}
  ]}]
}`), 0o644)

	fromYAML, err := loadEntity(yamlPath)
	if err != nil {
		t.Fatalf("YAML load failed: %v", err)
	}
	fromJSON, err := loadEntity(jsonPath)
	if err != nil {
		t.Fatalf("JSON load failed: %v", err)
	}

	if !reflect.DeepEqual(fromYAML, fromJSON) {
		t.Errorf("YAML and JSON decode differently:\n%+v\n%+v", fromYAML, fromJSON)
	}
	if fromYAML.Domains[0].Entities[0].Related[0].Title != "DASH trial" {
		t.Errorf("Nested record lost: %+v", fromYAML)
	}

	if _, err := loadEntity(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestExpandIDs(t *testing.T) {
	entity := mindmap.EntityData{
		ID: "e",
		Categories: []mindmap.Group{
			{Key: "a", Items: []mindmap.Record{{ID: "1"}}},
			{Key: "empty"},
		},
	}

	tests := []struct {
		flag string
		want []string
	}{
		{"", nil},
		{"all", []string{"category:a"}},
		{"category:a, domain:x ,", []string{"category:a", "domain:x"}},
	}

	for _, tt := range tests {
		if got := expandIDs(tt.flag, entity); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("expandIDs(%q) = %v, want %v", tt.flag, got, tt.want)
		}
	}
}
