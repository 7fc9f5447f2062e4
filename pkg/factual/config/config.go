package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/factual/pkg/factual/internalerr"
)

// Script is an ordered demo script: declarative statements to ingest,
// then questions to answer.
type Script struct {
	Statements []string `yaml:"statements"`
	Questions  []string `yaml:"questions"`
}

// LoadScript loads a script from a YAML file
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	if len(s.Statements) == 0 && len(s.Questions) == 0 {
		return nil, fmt.Errorf("%w: %s has no statements or questions", internalerr.ErrInvalidConfig, path)
	}

	return &s, nil
}

// DefaultScript returns the built-in demo script: family relations,
// likes, locations and properties, plus the standard question set.
func DefaultScript() *Script {
	return &Script{
		Statements: []string{
			"John is the parent of Mary",
			"Mary is the parent of Susan",
			"John is the parent of Tom",
			"Tom is the parent of Alice",
			"John likes pizza",
			"Mary likes chocolate",
			"Susan likes music",
			"John lives in Paris",
			"Mary lives in London",
			"Susan lives in Tokyo",
			"Alice is tall",
			"Tom is smart",
		},
		Questions: []string{
			"Who is the parent of Mary?",
			"What does John like?",
			"Where does Mary live?",
			"Is Alice tall?",
			"Is John the parent of Tom?",
			"Who is the parent of Susan?",
		},
	}
}
