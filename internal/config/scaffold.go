package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// SampleQuestionsFile is the question file created next to a scaffolded config.
const SampleQuestionsFile = "Multiple-Choice.txt"

const defaultConfig = `version: 1
questions_file: "Multiple-Choice.txt"
wrap_width: 60
prompt: ">>> "
ui: auto
no_color: false
# seed: 42
`

const sampleQuestions = `Capitals
w Paris is the capital of France?
f Madrid is the capital of Italy?

Animals
w Dogs are mammals?
f Spiders are insects?
`

// Scaffold writes a starter config and question file into dir. Existing files
// are never overwritten.
func Scaffold(dir string) (configPath, questionsPath string, err error) {
	if dir == "" {
		return "", "", fmt.Errorf("target directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create target dir: %w", err)
	}
	configPath = filepath.Join(dir, ConfigFileName)
	questionsPath = filepath.Join(dir, SampleQuestionsFile)
	for _, path := range []string{configPath, questionsPath} {
		if info, err := os.Stat(path); err == nil {
			if info.IsDir() {
				return "", "", fmt.Errorf("path %q is a directory", path)
			}
			return "", "", fmt.Errorf("file already exists at %q", path)
		} else if !os.IsNotExist(err) {
			return "", "", fmt.Errorf("stat %q: %w", path, err)
		}
	}

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return "", "", fmt.Errorf("write config file: %w", err)
	}
	if err := os.WriteFile(questionsPath, []byte(sampleQuestions), 0o644); err != nil {
		return "", "", fmt.Errorf("write question file: %w", err)
	}
	return configPath, questionsPath, nil
}
