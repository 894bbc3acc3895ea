package cli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"flashquiz/internal/config"
	"flashquiz/internal/console"
	"flashquiz/internal/question"
)

// rootOptions holds flag values shared by the command tree.
type rootOptions struct {
	stdin io.Reader

	configPath string
	file       string
	verbose    bool

	width   int
	prompt  string
	seed    uint64
	ui      string
	noColor bool
}

func (o *rootOptions) registerPersistent(flags *pflag.FlagSet) {
	flags.StringVar(&o.configPath, "config", "", "Path to config file (default: search for "+config.ConfigFileName+")")
	flags.StringVarP(&o.file, "file", "f", "", "Question file (default: "+config.DefaultQuestionsFile+")")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Log session events to stderr")
}

func (o *rootOptions) registerQuiz(flags *pflag.FlagSet) {
	flags.IntVar(&o.width, "width", config.DefaultWrapWidth, "Wrap question text at this column")
	flags.StringVar(&o.prompt, "prompt", config.DefaultPrompt, "Answer prompt")
	flags.Uint64Var(&o.seed, "seed", 0, "Shuffle seed (0 picks a random order)")
	flags.StringVar(&o.ui, "ui", string(console.ModeAuto), "Input mode: auto|line|plain|tui")
	flags.BoolVar(&o.noColor, "no-color", false, "Disable colored output")
}

// loadConfig applies changed flags on top of the discovered config file.
func (o *rootOptions) loadConfig(flags *pflag.FlagSet) (config.Config, error) {
	cfg, path, err := config.Discover(o.configPath)
	if err != nil {
		if path != "" {
			return config.Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	if flags.Changed("ui") {
		if _, err := console.ParseMode(o.ui); err != nil {
			return config.Config{}, &usageError{err: err}
		}
		cfg.UI = o.ui
	}
	if flags.Changed("width") {
		if o.width < config.MinWrapWidth {
			return config.Config{}, usageErrorf("--width must be >= %d", config.MinWrapWidth)
		}
		cfg.WrapWidth = o.width
	}
	if flags.Changed("prompt") {
		cfg.Prompt = o.prompt
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Changed("no-color") {
		cfg.NoColor = o.noColor
	}
	config.Normalize(&cfg, "")
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, &usageError{err: err}
	}
	return cfg, nil
}

// questionsPath picks the positional path, then --file, then the config value.
func (o *rootOptions) questionsPath(args []string, cfg config.Config) (string, error) {
	if len(args) > 0 && o.file != "" {
		return "", usageErrorf("pass the question file as an argument or with --file, not both")
	}
	if len(args) > 0 {
		return args[0], nil
	}
	if o.file != "" {
		return o.file, nil
	}
	return cfg.QuestionsFile, nil
}

// loadDocument resolves and parses the question file for a command.
func (o *rootOptions) loadDocument(flags *pflag.FlagSet, args []string) (question.Document, string, config.Config, error) {
	cfg, err := o.loadConfig(flags)
	if err != nil {
		return question.Document{}, "", config.Config{}, err
	}
	path, err := o.questionsPath(args, cfg)
	if err != nil {
		return question.Document{}, "", config.Config{}, err
	}
	doc, err := question.LoadFile(path)
	if err != nil {
		return question.Document{}, path, config.Config{}, err
	}
	return doc, path, cfg, nil
}
