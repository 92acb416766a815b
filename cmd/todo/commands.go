package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tasklist/internal/tasks"
	"tasklist/internal/view"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add TEXT...",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := a.svc.Add(strings.Join(args, " "))
			return report(cmd.OutOrStdout(), ev, err)
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print tasks, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("filter") {
				filter = a.cfg.DefaultFilter
			}
			f, err := view.ParseFilter(filter)
			if err != nil {
				return err
			}
			c, err := a.svc.List()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, r := range view.Render(c, f) {
				mark := " "
				if r.Completed {
					mark = "x"
				}
				fmt.Fprintf(w, "%d [%s] %s\n", r.ID, mark, r.Text)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "all", "all, completed or pending")
	return cmd
}

func newToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle ID",
		Short: "Flip a task between completed and pending",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ev, err := a.svc.ToggleComplete(id)
			return report(cmd.OutOrStdout(), ev, err)
		},
	}
}

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit ID TEXT...",
		Short: "Replace a task's text",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ev, err := a.svc.Edit(id, strings.Join(args[1:], " "))
			return report(cmd.OutOrStdout(), ev, err)
		},
	}
}

func newRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ev, err := a.svc.Delete(id)
			return report(cmd.OutOrStdout(), ev, err)
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", s)
	}
	return id, nil
}

// report prints the event's notice. No-ops print nothing.
func report(w io.Writer, ev tasks.Event, err error) error {
	if err != nil {
		return err
	}
	if ev.Changed() {
		fmt.Fprintln(w, ev.Notice())
	}
	return nil
}
