package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show past runs",
	Long: `Without arguments, lists recent runs. With a run id, shows the outcomes
of that run.

Examples:
  postarr history
  postarr history --limit 50
  postarr history 3f1c...`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistoryCmd,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Int("limit", 20, "Number of runs to list")
}

func runHistoryCmd(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	a, err := loadApp(true)
	if err != nil {
		return err
	}
	defer a.Close()
	if a.history == nil {
		return fmt.Errorf("history disabled: set [history] path in the config")
	}

	if len(args) == 1 {
		entries, err := a.history.Outcomes(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(entries)
			return nil
		}
		if len(entries) == 0 {
			fmt.Println("No outcomes recorded for this run")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s %s %s\n", e.CreatedAt.Local().Format(time.TimeOnly), e.Status.Icon(), e.Message)
		}
		return nil
	}

	runs, err := a.history.ListRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if jsonOutput {
		printJSON(runs)
		return nil
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}
	fmt.Printf("%-36s  %-19s  %-10s  %9s  %7s  %s\n", "RUN", "STARTED", "SINK", "PROCESSED", "UPDATED", "SOURCE")
	for _, r := range runs {
		processed := fmt.Sprint(r.Processed)
		if r.FinishedAt == nil {
			processed = "-"
		}
		fmt.Printf("%-36s  %-19s  %-10s  %9s  %7d  %s\n",
			r.ID, r.StartedAt.Local().Format(time.DateTime), r.Sink, processed, r.Updated, r.Source)
	}
	return nil
}
