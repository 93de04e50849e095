package main

import (
	"github.com/spf13/cobra"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/config"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/tui"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/tui/themes"
)

func dashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dash",
		Short: "Open the interactive dashboard",
		Long: `Launch the full-screen dashboard: browse, search, filter, sort and page
through registrations, add and delete entries, and export CSV reports.`,
		RunE: runDash,
	}
}

func runDash(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore(store)

	return tui.Run(tui.Config{
		Ctx:      ctx,
		Store:    store,
		Theme:    themes.Default,
		PageSize: config.PageSize(),
	})
}
