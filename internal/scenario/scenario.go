// Package scenario replays YAML-described games through the controller and
// checks the position they end in.
//
// A scenario file holds a list of scenarios:
//
//	- name: fool's mate
//	  start: standard
//	  moves: [f3, e5, g4, Qh4]
//	  expect:
//	    outcome: checkmate
//	    winner: black
//
// Each entry in moves is either a move string or a mapping naming the error
// the move must be rejected with:
//
//	moves:
//	  - e4
//	  - {move: e4, error: wrong-turn}
package scenario

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// StandardStart names the standard starting position in the start field.
const StandardStart = "standard"

// Scenario is one game to replay.
type Scenario struct {
	Name   string   `yaml:"name" json:"name" validate:"required"`
	Tags   []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Start  string   `yaml:"start,omitempty" json:"start,omitempty"`
	Moves  []Step   `yaml:"moves" json:"moves" validate:"dive"`
	Expect Expect   `yaml:"expect" json:"expect"`

	// File is the file the scenario was loaded from.
	File string `yaml:"-" json:"file,omitempty"`
}

// Step is one move of a scenario. When Error is set the move must be
// rejected with the named error and the game carries on unchanged.
type Step struct {
	Move  string `yaml:"move" json:"move" validate:"required"`
	Error string `yaml:"error,omitempty" json:"error,omitempty" validate:"omitempty,errname"`
}

// UnmarshalYAML accepts either a bare move string or a {move, error}
// mapping.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		s.Move = node.Value
		s.Error = ""
		return nil
	case yaml.MappingNode:
		type plain Step
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		*s = Step(p)
		return nil
	default:
		return fmt.Errorf("line %d: move must be a string or a mapping", node.Line)
	}
}

// MarshalYAML writes steps without an error back as bare strings.
func (s Step) MarshalYAML() (interface{}, error) {
	if s.Error == "" {
		return s.Move, nil
	}
	type plain Step
	return plain(s), nil
}

// Expect lists what must hold once every move has been played. Unset
// fields are not checked.
type Expect struct {
	Outcome              string `yaml:"outcome,omitempty" json:"outcome,omitempty" validate:"omitempty,oneof=ongoing check checkmate stalemate draw"`
	Winner               string `yaml:"winner,omitempty" json:"winner,omitempty" validate:"omitempty,oneof=white black none"`
	Board                string `yaml:"board,omitempty" json:"board,omitempty"`
	LegalMoves           *int   `yaml:"legal_moves,omitempty" json:"legal_moves,omitempty" validate:"omitempty,min=0"`
	InsufficientMaterial *bool  `yaml:"insufficient_material,omitempty" json:"insufficient_material,omitempty"`
}

// HasTag reports whether the scenario carries tag.
func (sc *Scenario) HasTag(tag string) bool {
	for _, t := range sc.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Select returns the scenarios carrying any of tags. No tags selects all.
func Select(scenarios []Scenario, tags []string) []Scenario {
	if len(tags) == 0 {
		return scenarios
	}
	var out []Scenario
	for _, sc := range scenarios {
		for _, tag := range tags {
			if sc.HasTag(tag) {
				out = append(out, sc)
				break
			}
		}
	}
	return out
}
