package asyncstate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GraphTransition is one event-triggered edge in a declarative graph file.
type GraphTransition struct {
	From  string `yaml:"from"`
	Event string `yaml:"event"`
	To    string `yaml:"to"`
}

// Graph is the declarative form of an event transition map, loadable from
// YAML:
//
//	transitions:
//	  - {from: draft, event: submit, to: review}
//	  - {from: review, event: approve, to: published}
type Graph struct {
	Transitions []GraphTransition `yaml:"transitions"`
}

// LoadGraph reads and parses a YAML graph file.
func LoadGraph(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var g Graph
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &g, nil
}

// ApplyGraph registers every edge of g on m through AddTransition, so graph
// files get the same endpoint validation as programmatic registration.
// Registration stops at the first invalid edge.
func ApplyGraph(m *Machine[string, string], g *Graph) error {
	for _, t := range g.Transitions {
		if err := m.AddTransition(t.From, t.Event, t.To); err != nil {
			return fmt.Errorf("edge %s -[%s]-> %s: %w", t.From, t.Event, t.To, err)
		}
	}
	return nil
}
