// Package prompt asks for project options interactively.
package prompt

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/klejdi94/microforge-cli/internal/options"
)

// ErrCancelled is returned when the user aborts the form.
var ErrCancelled = errors.New("prompt cancelled")

// noneLabel is shown for the absent value of optional families.
const noneLabel = "none"

// Answers holds the option values chosen in the form. They start out as the
// resolved defaults and are overwritten by the user's choices.
type Answers struct {
	DB     string
	Broker string
	CI     string
	Auth   string
	Git    bool
}

// Runner runs a built form. The default runner is (*huh.Form).Run.
type Runner func(*huh.Form) error

func runForm(f *huh.Form) error {
	return f.Run()
}

// Ask prompts for every option, preselecting defaults.
func Ask(defaults Answers) (Answers, error) {
	return AskWith(defaults, runForm)
}

// AskWith is Ask with an explicit form runner.
func AskWith(defaults Answers, run Runner) (Answers, error) {
	answers := defaults
	if err := run(BuildForm(&answers)); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return defaults, ErrCancelled
		}
		return defaults, fmt.Errorf("prompt: %w", err)
	}
	return answers, nil
}

// BuildForm returns a form whose fields write into a.
func BuildForm(a *Answers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Database").
				Options(selectOptions(options.Databases(), true)...).
				Value(&a.DB),
			huh.NewSelect[string]().
				Title("Message broker").
				Options(selectOptions(options.Brokers(), false)...).
				Value(&a.Broker),
			huh.NewSelect[string]().
				Title("CI/CD provider").
				Options(selectOptions(options.CIs(), false)...).
				Value(&a.CI),
			huh.NewSelect[string]().
				Title("Authentication").
				Options(selectOptions(options.Auths(), true)...).
				Value(&a.Auth),
			huh.NewConfirm().
				Title("Initialize a git repository?").
				Value(&a.Git),
		),
	)
}

// selectOptions lists a family's values, led by "none" when it is optional.
func selectOptions[T ~string](values []T, optional bool) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(values)+1)
	if optional {
		opts = append(opts, huh.NewOption(noneLabel, ""))
	}
	for _, v := range values {
		opts = append(opts, huh.NewOption(string(v), string(v)))
	}
	return opts
}
