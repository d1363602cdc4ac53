package store

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tidylist-io/tidylist/internal/models"
)

// document is the on-slot shape of the whole collection. The collection
// is always written as one blob; there are no per-task entries.
type document struct {
	Version int            `yaml:"version"`
	Tasks   []*models.Task `yaml:"tasks"`
}

const documentVersion = 1

// encodeTasks serializes the collection to the slot blob format.
func encodeTasks(tasks []*models.Task) (string, error) {
	data, err := yaml.Marshal(&document{Version: documentVersion, Tasks: tasks})
	if err != nil {
		return "", fmt.Errorf("failed to marshal tasks: %w", err)
	}
	return string(data), nil
}

// decodeTasks parses a slot blob back into an ordered collection.
func decodeTasks(blob string) ([]*models.Task, error) {
	var doc document
	if err := yaml.Unmarshal([]byte(blob), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse tasks blob: %w", err)
	}
	if doc.Tasks == nil {
		return []*models.Task{}, nil
	}
	return doc.Tasks, nil
}
