package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/klejdi94/microforge-cli/internal/cmdtypes"
	"github.com/klejdi94/microforge-cli/internal/config"
	oerrors "github.com/klejdi94/microforge-cli/internal/errors"
	"github.com/klejdi94/microforge-cli/internal/generator"
	"github.com/klejdi94/microforge-cli/internal/options"
	"github.com/klejdi94/microforge-cli/internal/output"
	"github.com/klejdi94/microforge-cli/internal/prompt"
)

// newOptions holds the flag values of the new command.
type newOptions struct {
	db          string
	broker      string
	ci          string
	auth        string
	git         bool
	dir         string
	dryRun      bool
	output      string
	interactive bool
}

// NewNewCmd creates the new command.
func NewNewCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &newOptions{}

	c := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new microservice project",
		Long: `Create a new microservice project in ./<name>.

The target directory must not exist. Option defaults come from the config
file when set there; flags given on the command line always win.

Examples:
  # FastAPI service with a Redis worker and an Azure pipeline
  microforge new orders

  # PostgreSQL, OAuth2 and a GitHub Actions workflow
  microforge new orders --db postgres --auth oauth2 --ci github

  # Kafka broker, generated under ~/src, with a git repository
  microforge new orders --broker kafka --dir ~/src --git

  # Show what would be generated
  microforge new orders --dry-run

  # Machine-readable plan
  microforge new orders --dry-run -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runNew(c, args[0], opts, cfg)
		},
	}

	c.Flags().StringVar(&opts.db, options.FieldDB, "", "Database (postgres)")
	c.Flags().StringVar(&opts.broker, options.FieldBroker, string(options.DefaultBroker), "Message broker (redis, kafka)")
	c.Flags().StringVar(&opts.ci, options.FieldCI, string(options.DefaultCI), "CI/CD provider (azure, github, gitlab)")
	c.Flags().StringVar(&opts.auth, options.FieldAuth, "", "Authentication type (oauth2)")
	c.Flags().BoolVar(&opts.git, "git", false, "Initialize a git repository")
	c.Flags().StringVarP(&opts.dir, "dir", "d", ".", "Parent directory of the project")
	c.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the files that would be generated without writing them")
	c.Flags().StringVarP(&opts.output, "output", "o", string(output.FormatTree), "Dry-run plan format (tree, json, yaml)")
	c.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Choose options interactively")

	return c
}

func runNew(c *cobra.Command, name string, opts *newOptions, cfg *cmdtypes.GlobalConfig) error {
	out := c.OutOrStdout()

	format, ok := output.ParseOutputFormat(opts.output)
	if !ok {
		return cmdtypes.PrintError(out, oerrors.NewValidationError("output",
			fmt.Sprintf("invalid output format %q", opts.output),
			"Valid formats: tree, json, yaml."))
	}
	if format != output.FormatTree && !opts.dryRun {
		return cmdtypes.PrintError(out, oerrors.NewValidationError("output",
			"--output is only supported with --dry-run", ""))
	}

	resolved := config.ResolveNewOptions(config.ResolveOptions{
		DB:     config.Flag[string]{Value: opts.db, Set: c.Flags().Changed(options.FieldDB)},
		Broker: config.Flag[string]{Value: opts.broker, Set: c.Flags().Changed(options.FieldBroker)},
		CI:     config.Flag[string]{Value: opts.ci, Set: c.Flags().Changed(options.FieldCI)},
		Auth:   config.Flag[string]{Value: opts.auth, Set: c.Flags().Changed(options.FieldAuth)},
		Git:    config.Flag[bool]{Value: opts.git, Set: c.Flags().Changed("git")},
		Config: cfg.Config,
	})

	if opts.interactive {
		if !output.StdinIsTTY() {
			return cmdtypes.PrintError(out, oerrors.NewValidationError("interactive",
				"--interactive requires a terminal", "Pass the options as flags instead."))
		}
		answers, err := prompt.Ask(toAnswers(resolved))
		if err != nil {
			if errors.Is(err, prompt.ErrCancelled) {
				fmt.Fprintln(out, "Cancelled.")
				return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: err, Printed: true}
			}
			return cmdtypes.PrintError(out, err)
		}
		resolved = applyAnswers(resolved, answers)
	}

	config.LogResolvedValues(resolved)

	req, err := buildRequest(name, filepath.Join(opts.dir, name), resolved)
	if err != nil {
		return cmdtypes.PrintError(out, err)
	}

	gen := generator.New(req)

	if format != output.FormatTree {
		return printPlan(out, name, gen, format)
	}

	fmt.Fprintln(out, output.RenderPanel("Creating microservice: "+name))
	fmt.Fprintln(out)
	fmt.Fprintln(out, output.StyleBold.Render("Configuration:"))
	fmt.Fprintln(out, output.RenderSettingsTable(settings(name, resolved)))
	fmt.Fprintln(out)

	if opts.dryRun {
		return printPlan(out, name, gen, format)
	}

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var result *generator.Result
	err = output.RunWithSpinner(ctx, "Generating project...", func() error {
		var genErr error
		result, genErr = gen.Generate(ctx)
		return genErr
	})
	if err != nil {
		return cmdtypes.PrintError(out, err)
	}

	for _, w := range result.Warnings {
		fmt.Fprintln(out, output.FormatWarning(w))
	}

	fmt.Fprintln(out, output.RenderFileTree(name, describe(result.Files)))
	fmt.Fprintln(out, output.FormatCheckmark("Successfully created project: "+output.StyleNoun.Render(name)))
	fmt.Fprintln(out)
	fmt.Fprintln(out, output.RenderMarkdown(nextSteps(name)))

	return nil
}

// buildRequest parses the resolved option strings into a generator request.
func buildRequest(name, path string, r config.ResolvedOptions) (generator.Request, error) {
	db, err := options.ParseDatabase(r.DB.Value)
	if err != nil {
		return generator.Request{}, err
	}
	broker, err := options.ParseBroker(r.Broker.Value)
	if err != nil {
		return generator.Request{}, err
	}
	ci, err := options.ParseCI(r.CI.Value)
	if err != nil {
		return generator.Request{}, err
	}
	auth, err := options.ParseAuth(r.Auth.Value)
	if err != nil {
		return generator.Request{}, err
	}

	req := generator.Request{
		Name:    name,
		Path:    path,
		DB:      db,
		Broker:  broker,
		CI:      ci,
		Auth:    auth,
		GitInit: r.Git.Value,
	}
	return req, req.Validate()
}

func toAnswers(r config.ResolvedOptions) prompt.Answers {
	return prompt.Answers{
		DB:     r.DB.Value,
		Broker: r.Broker.Value,
		CI:     r.CI.Value,
		Auth:   r.Auth.Value,
		Git:    r.Git.Value,
	}
}

// applyAnswers overlays interactive choices, marking changed values as prompted.
func applyAnswers(r config.ResolvedOptions, a prompt.Answers) config.ResolvedOptions {
	set := func(v *config.ResolvedValue[string], answer string) {
		if v.Value != answer {
			v.Value = answer
			v.Source = config.SourcePrompt
		}
	}
	set(&r.DB, a.DB)
	set(&r.Broker, a.Broker)
	set(&r.CI, a.CI)
	set(&r.Auth, a.Auth)
	if r.Git.Value != a.Git {
		r.Git.Value = a.Git
		r.Git.Source = config.SourcePrompt
	}
	return r
}

func settings(name string, r config.ResolvedOptions) []output.Setting {
	none := func(s string) string {
		if s == "" {
			return "none"
		}
		return s
	}
	return []output.Setting{
		{Name: "Project name", Value: name, Source: "argument"},
		{Name: "Database", Value: none(r.DB.Value), Source: string(r.DB.Source)},
		{Name: "Message broker", Value: r.Broker.Value, Source: string(r.Broker.Source)},
		{Name: "CI/CD", Value: r.CI.Value, Source: string(r.CI.Source)},
		{Name: "Authentication", Value: none(r.Auth.Value), Source: string(r.Auth.Source)},
		{Name: "Git init", Value: strconv.FormatBool(r.Git.Value), Source: string(r.Git.Source)},
	}
}

func printPlan(out io.Writer, name string, gen *generator.Generator, format output.OutputFormat) error {
	planned, err := gen.Plan()
	if err != nil {
		return cmdtypes.PrintError(out, err)
	}

	plan := output.Plan{Project: name, Root: gen.Root()}
	for _, p := range planned {
		plan.Files = append(plan.Files, output.PlanEntry{
			Path:        p.Path,
			Template:    p.TemplateID,
			Format:      string(p.Format),
			Description: fileDescriptions[p.Path],
		})
	}

	if err := output.WritePlan(out, plan, format); err != nil {
		return cmdtypes.PrintError(out, err)
	}
	if format == output.FormatTree {
		fmt.Fprintf(out, "Dry run: %d files would be created. Nothing was written.\n", len(planned))
	}
	return nil
}

func nextSteps(name string) string {
	return fmt.Sprintf("## Next steps\n\n1. `cd %s`\n2. `poetry install`\n3. `docker-compose up`\n\nHappy coding!\n", name)
}
