package config

import "flashquiz/internal/console"

// Defaults applied when neither flags nor the config file set a value.
const (
	DefaultQuestionsFile = "../Multiple-Choice.txt"
	DefaultPrompt        = ">>> "
	DefaultWrapWidth     = console.DefaultWidth
	MinWrapWidth         = 10
)

// Config holds quiz settings loaded from .flashquiz.yml.
type Config struct {
	Version       int    `yaml:"version"`
	QuestionsFile string `yaml:"questions_file"`
	WrapWidth     int    `yaml:"wrap_width"`
	Prompt        string `yaml:"prompt"`
	UI            string `yaml:"ui"`
	NoColor       bool   `yaml:"no_color"`
	Seed          uint64 `yaml:"seed"`
}

// Default returns the settings used without a config file.
func Default() Config {
	return Config{
		Version:       1,
		QuestionsFile: DefaultQuestionsFile,
		WrapWidth:     DefaultWrapWidth,
		Prompt:        DefaultPrompt,
		UI:            string(console.ModeAuto),
	}
}
