package console

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TUIReader reads each answer with a Bubble Tea text input.
type TUIReader struct {
	in     io.Reader
	out    io.Writer
	prompt string
}

// NewTUIReader creates a reader that runs one inline program per answer.
func NewTUIReader(in io.Reader, out io.Writer, prompt string) *TUIReader {
	return &TUIReader{in: in, out: out, prompt: prompt}
}

// ReadLine runs the input program until the answer is submitted or abandoned.
// Esc, Ctrl-C and Ctrl-D on an empty input report io.EOF.
func (r *TUIReader) ReadLine(ctx context.Context) (string, error) {
	program := tea.NewProgram(
		newPromptModel(r.prompt),
		tea.WithInput(r.in),
		tea.WithOutput(r.out),
		tea.WithContext(ctx),
	)
	final, err := program.Run()
	if err != nil {
		return "", err
	}
	model, ok := final.(promptModel)
	if !ok {
		return "", fmt.Errorf("unexpected prompt model %T", final)
	}
	if model.cancelled {
		return "", io.EOF
	}
	return model.input.Value(), nil
}

// promptModel is a single-line answer prompt.
type promptModel struct {
	input     textinput.Model
	submitted bool
	cancelled bool
}

func newPromptModel(prompt string) promptModel {
	input := textinput.New()
	input.Prompt = prompt
	input.Focus()
	return promptModel{input: input}
}

// Init starts the cursor blinking.
func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles submission and cancellation keys before delegating to the input.
func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyCtrlD:
			if m.input.Value() == "" {
				m.cancelled = true
				return m, tea.Quit
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt; once finished it leaves the plain answer behind.
func (m promptModel) View() string {
	if m.submitted || m.cancelled {
		return m.input.Prompt + m.input.Value() + "\n"
	}
	return m.input.View()
}
