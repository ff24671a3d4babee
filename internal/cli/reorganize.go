package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/monorepo-tools/changelogctl/internal/changelog"
	"github.com/monorepo-tools/changelogctl/internal/config"
	"github.com/monorepo-tools/changelogctl/internal/ghoutput"
	"github.com/monorepo-tools/changelogctl/internal/githubapi"
	"github.com/monorepo-tools/changelogctl/internal/logging"
)

// newReorganizeCommand creates "reorganize", the command that rewrites a flat
// changelog into the nested Category / Application / Issue layout.
func newReorganizeCommand(opts *Options) *cobra.Command {
	var (
		mode   string
		repo   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "reorganize [changelog.md]",
		Short: "Regroup a flat changelog by category, application, and issue",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFromContext(cmd.Context())

			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			if mode != "" {
				cfg.Mode = mode
			}
			if repo != "" {
				cfg.Repo = repo
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.LogLevel != "" && !cmd.Flag("log-level").Changed {
				logger = logging.NewLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))
			}

			input, err := readInput(args)
			if err != nil {
				return err
			}

			resolver, err := buildResolver(logger, cfg)
			if err != nil {
				return err
			}

			result, runErr := changelog.Reorganize(cmd.Context(), logger, resolver, input)

			// The output is always written, reorganized or passthrough. A
			// reader never sees a truncated hybrid.
			if err := writeOutput(output, result.Output); err != nil {
				return err
			}
			if runErr != nil {
				logger.Warn("changelog left unchanged", "error", runErr)
				return runErr
			}

			if result.Reorganized {
				logger.Info("changelog reorganized", "categories", result.Categories)
			} else {
				logger.Info("no pull request headings found, changelog left unchanged")
			}

			if err := ghoutput.Write(map[string]string{
				"reorganized": strconv.FormatBool(result.Reorganized),
				"categories":  strconv.Itoa(result.Categories),
			}); err != nil {
				logger.Warn("write GITHUB_OUTPUT", "error", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Label resolution mode: live or embedded (defaults to config)")
	cmd.Flags().StringVar(&repo, "repo", "", "GitHub repository slug owner/name for live mode (defaults to config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the result to a file instead of stdout")

	return cmd
}

// liveResolver adapts the GitHub client to the changelog.Resolver interface.
type liveResolver struct {
	client *githubapi.Client
}

func (r liveResolver) Labels(ctx context.Context, pr changelog.PullRequest) ([]string, error) {
	return r.client.FetchPullRequestLabels(ctx, pr.Number)
}

func buildResolver(logger *slog.Logger, cfg *config.Config) (changelog.Resolver, error) {
	switch cfg.Mode {
	case config.ModeLive:
		client, err := githubapi.NewClient(logger, logging.NewWriter(logger), cfg.Token, cfg.Repo)
		if err != nil {
			return nil, fmt.Errorf("live label resolution: %w", err)
		}
		return liveResolver{client: client}, nil
	default:
		return changelog.EmbeddedResolver{}, nil
	}
}

// readInput reads the flat changelog from the file argument or stdin.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read changelog from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read changelog %q: %w", args[0], err)
	}
	return string(data), nil
}

func writeOutput(path, content string) error {
	if path == "" {
		_, err := fmt.Fprintln(os.Stdout, content)
		return err
	}
	if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
		return fmt.Errorf("write output %q: %w", path, err)
	}
	return nil
}
