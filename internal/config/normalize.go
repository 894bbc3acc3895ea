package config

import (
	"strings"

	"flashquiz/internal/console"
)

// Normalize trims values, fills defaults and resolves questions_file
// relative to baseDir.
func Normalize(cfg *Config, baseDir string) {
	cfg.QuestionsFile = strings.TrimSpace(cfg.QuestionsFile)
	if cfg.QuestionsFile == "" {
		cfg.QuestionsFile = DefaultQuestionsFile
	}
	cfg.QuestionsFile = resolvePath(baseDir, cfg.QuestionsFile)
	if cfg.WrapWidth == 0 {
		cfg.WrapWidth = DefaultWrapWidth
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	cfg.UI = strings.ToLower(strings.TrimSpace(cfg.UI))
	if cfg.UI == "" {
		cfg.UI = string(console.ModeAuto)
	}
}
