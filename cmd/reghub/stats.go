package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/cli"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show registration counters",
		Long: `Display the aggregate counters derived from the full collection: total
registrations, today's registrations, the inclusive last-7-days window, and
the per-category breakdown.`,
		RunE: runStats,
	}
}

func runStats(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	e, store, err := loadedEngine(ctx)
	if err != nil {
		return err
	}
	defer closeStore(store)

	counts := e.Counts()

	summary := []string{
		fmt.Sprintf("Total registrations  %d", counts.All),
		fmt.Sprintf("Registered today     %d", counts.Today),
		fmt.Sprintf("Last 7 days          %d", counts.Last7Days),
	}
	fmt.Println(cli.RenderBox("Registrations", strings.Join(summary, "\n")))

	categories := e.Categories()
	if len(categories) == 0 {
		return nil
	}

	lines := make([]string, 0, len(categories))
	for _, category := range categories {
		lines = append(lines, fmt.Sprintf("%-16s %d", category, counts.ByCategory[category]))
	}
	sort.Strings(lines)
	fmt.Println(cli.RenderBox("By category", strings.Join(lines, "\n")))

	return nil
}
