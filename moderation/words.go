package moderation

import (
	"fmt"
	"os"
	"question-lab/errors"

	"gopkg.in/yaml.v3"
)

type wordList struct {
	Words []string `yaml:"words"`
}

// LoadWords reads a YAML document of the form `words: [a, b]`.
func LoadWords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	var list wordList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse word list %s: %w", path, err)
	}
	if len(list.Words) == 0 {
		return nil, fmt.Errorf("%s: %w", path, errors.ErrEmptyWords)
	}
	return list.Words, nil
}
