package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-quickadd/pkg/prefix"
	"task-quickadd/pkg/subtask"
)

func newSubtasksCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "subtasks",
		Short: "Read an indented list from stdin and print each task with its parent.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := prefix.ParseMode(opts.prefixMode)
			if err != nil {
				return err
			}
			raw, err := readText(nil, cmd.InOrStdin())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, t := range subtask.Parse(raw, prefix.Resolver(mode)) {
				parent := t.Parent
				if parent == "" {
					parent = "-"
				}
				project := t.Project
				if project == "" {
					project = "-"
				}
				fmt.Fprintf(w, "%s\tparent=%s\tproject=%s\n", t.Title, parent, project)
			}
			return nil
		},
	}
}
