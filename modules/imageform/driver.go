package imageform

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Driver feeds user edits into a form until input ends.
type Driver interface {
	Run(ctx context.Context, f *Form) error
}

// ScriptDriver applies "field=value" lines read from r. Blank lines and
// lines starting with '#' are ignored. The value is taken verbatim.
type ScriptDriver struct {
	r io.Reader
}

// NewScriptDriver returns a driver reading edits from r.
func NewScriptDriver(r io.Reader) *ScriptDriver {
	return &ScriptDriver{r: r}
}

// Run applies every line to f until r is exhausted. Errors carry the line
// number.
func (d *ScriptDriver) Run(ctx context.Context, f *Form) error {
	scanner := bufio.NewScanner(d.r)
	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return err
		}

		text := strings.TrimRight(scanner.Text(), "\r")
		if trimmed := strings.TrimSpace(text); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		name, value, ok := strings.Cut(text, "=")
		if !ok {
			return fmt.Errorf("line %d: %w: %q", line, ErrMalformedLine, text)
		}
		if err := f.Set(ctx, strings.TrimSpace(name), value); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return scanner.Err()
}

// Prompter asks the user for input. It abstracts the terminal so the prompt
// flow can be tested without one.
type Prompter interface {
	Select(ctx context.Context, message string, options []string, def string) (string, error)
	Input(ctx context.Context, message, def string) (string, error)
}

// DoneOption ends an interactive session.
const DoneOption = "done"

// PromptDriver lets the user pick a field and type its new value until they
// choose DoneOption.
type PromptDriver struct {
	p Prompter
}

// NewPromptDriver returns a driver using p, or terminal prompts when p is nil.
func NewPromptDriver(p Prompter) *PromptDriver {
	if p == nil {
		p = surveyPrompter{}
	}
	return &PromptDriver{p: p}
}

func (d *PromptDriver) Run(ctx context.Context, f *Form) error {
	options := append(f.Fields(), DoneOption)
	for {
		name, err := d.p.Select(ctx, "Field to edit", options, options[0])
		if err != nil {
			return err
		}
		if name == DoneOption {
			return nil
		}

		current, _ := f.Value(name)
		value, err := d.p.Input(ctx, name, current)
		if err != nil {
			return err
		}
		if err := f.Set(ctx, name, value); err != nil {
			return err
		}
	}
}

type surveyPrompter struct{}

func (surveyPrompter) Select(ctx context.Context, message string, options []string, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Select{
		Message: message,
		Options: options,
		Default: def,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyPrompter) Input(ctx context.Context, message, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: message,
		Default: def,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
