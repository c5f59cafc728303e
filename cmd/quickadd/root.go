package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"task-quickadd/internal/task"
	memoryRepo "task-quickadd/internal/task/repository/memory"
	"task-quickadd/internal/task/usecase"
	"task-quickadd/pkg/datemath"
	"task-quickadd/pkg/log"
	"task-quickadd/pkg/prefix"
)

type rootOptions struct {
	now        string
	timezone   string
	prefixMode string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "quickadd",
		Short:        "Turn free-form text into dated tasks.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.now, "now", "", "Reference time as RFC3339. Defaults to the current time.")
	root.PersistentFlags().StringVar(&opts.timezone, "tz", "UTC", "IANA timezone used to resolve dates.")
	root.PersistentFlags().StringVar(&opts.prefixMode, "prefix-mode", string(prefix.ModeVikunja), "Project prefix: disabled, vikunja (+) or todoist (#).")

	root.AddCommand(newParseCmd(opts))
	root.AddCommand(newSubtasksCmd(opts))
	root.AddCommand(newGcalAuthCmd())

	return root
}

func (o *rootOptions) referenceTime() (time.Time, error) {
	if o.now == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, o.now)
	if err != nil {
		return time.Time{}, fmt.Errorf("--now must be RFC3339: %w", err)
	}
	return t, nil
}

// useCase builds a task use case that never stores anything.
func (o *rootOptions) useCase() (task.UseCase, error) {
	mode, err := prefix.ParseMode(o.prefixMode)
	if err != nil {
		return nil, err
	}
	parser, err := datemath.NewParser(o.timezone)
	if err != nil {
		return nil, err
	}

	l := log.Init(log.ZapConfig{Level: "error", Mode: log.ModeProduction, Encoding: log.EncodingConsole})
	return usecase.New(l, memoryRepo.New(l), nil, parser, usecase.Options{PrefixMode: mode}), nil
}

// readText joins args, or reads everything from in when there are none.
func readText(args []string, in io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
