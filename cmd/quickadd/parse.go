package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-quickadd/internal/task"
)

const dueLayout = "2006-01-02 15:04 MST"

func newParseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [text]",
		Short: "Show the title, date and project found in text. Reads stdin without arguments.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			now, err := opts.referenceTime()
			if err != nil {
				return err
			}
			uc, err := opts.useCase()
			if err != nil {
				return err
			}

			out, err := uc.Preview(cmd.Context(), task.PreviewInput{Text: text, Now: now})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, it := range out.Items {
				line := "- " + it.Title
				if it.Project != "" {
					line += " [" + it.Project + "]"
				}
				if it.DueDate != nil {
					line += " @ " + it.DueDate.Format(dueLayout)
				}
				if it.Parent != "" {
					line += " (under " + it.Parent + ")"
				}
				fmt.Fprintln(w, line)
			}
			return nil
		},
	}
}
