package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/english-companion/internal/apiclient"
)

type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// Set implements pflag.Value.
func (o *OutputFormat) Set(v string) error {
	switch v {
	case string(OutputText):
		*o = OutputText
	case string(OutputJSON):
		*o = OutputJSON
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, OutputText, OutputJSON)
	}
	return nil
}

// String implements pflag.Value.
func (o *OutputFormat) String() string {
	if o == nil {
		return ""
	}
	return string(*o)
}

// Type implements pflag.Value.
func (o *OutputFormat) Type() string {
	return "OutputFormat"
}

var (
	_ pflag.Value = (*OutputFormat)(nil)
)

type remoteOptions struct {
	server  string
	timeout time.Duration
	retries uint
	output  OutputFormat
}

func remoteFlagSet(opts *remoteOptions) *pflag.FlagSet {
	opts.output = OutputText
	flags := pflag.NewFlagSet("remote", pflag.ContinueOnError)
	flags.StringVar(&opts.server, "server", "http://localhost:3001", "Base URL of the companion API")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "Request timeout")
	flags.UintVar(&opts.retries, "retries", apiclient.DefaultMaxRetryAttempts, "Retries for transport failures and 5xx responses")
	flags.Var(&opts.output, "output", "Output format. Options: text, json")
	return flags
}

func (opts *remoteOptions) client() *apiclient.Client {
	return apiclient.NewClient(opts.server, opts.timeout, opts.retries)
}

func newHealthCommand() *cobra.Command {
	var opts remoteOptions
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check that the API is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			health, err := opts.client().Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("client.Health() > %w", err)
			}
			out := cmd.OutOrStdout()
			if opts.output == OutputJSON {
				return writeJSON(out, health)
			}
			color.New(color.FgGreen).Fprintf(out, "%s: %s\n", health.Status, health.Message)
			fmt.Fprintf(out, "environment: %s\ntimestamp:   %s\n", health.Environment, health.Timestamp)
			return nil
		},
	}
	cmd.Flags().AddFlagSet(remoteFlagSet(&opts))
	return cmd
}

func newLessonsCommand() *cobra.Command {
	var opts remoteOptions
	cmd := &cobra.Command{
		Use:   "lessons",
		Short: "List lessons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lessons, err := opts.client().Lessons(cmd.Context())
			if err != nil {
				return fmt.Errorf("client.Lessons() > %w", err)
			}
			out := cmd.OutOrStdout()
			if opts.output == OutputJSON {
				return writeJSON(out, lessons)
			}
			for _, l := range lessons {
				fmt.Fprintf(out, "%d\t%-12s\t%s\n", l.ID, l.Difficulty, l.Title)
			}
			return nil
		},
	}
	cmd.Flags().AddFlagSet(remoteFlagSet(&opts))
	return cmd
}

func newProgressCommand() *cobra.Command {
	var opts remoteOptions
	var userID int64
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show a user's progress summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := opts.client().Progress(cmd.Context(), userID)
			if err != nil {
				return fmt.Errorf("client.Progress(%d) > %w", userID, err)
			}
			out := cmd.OutOrStdout()
			if opts.output == OutputJSON {
				return writeJSON(out, summary)
			}
			fmt.Fprintf(out, "user:       %d\n", summary.UserID)
			fmt.Fprintf(out, "attempts:   %d\n", summary.AttemptsCount)
			fmt.Fprintf(out, "correct:    %d / %d\n", summary.TotalCorrect, summary.TotalQuestions)
			color.New(color.Bold).Fprintf(out, "accuracy:   %.1f%%\n", summary.Accuracy*100)
			fmt.Fprintf(out, "vocabulary: %d\n", summary.VocabCount)
			return nil
		},
	}
	cmd.Flags().AddFlagSet(remoteFlagSet(&opts))
	cmd.Flags().Int64Var(&userID, "user-id", 0, "User id")
	_ = cmd.MarkFlagRequired("user-id")
	return cmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
