package main

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/cli"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/export"
)

func exportCmd() *cobra.Command {
	var (
		flags    viewFlags
		out      string
		filtered bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export registrations to CSV",
		Long: `Write registrations to a CSV file. By default the entire collection is
exported; with --filtered only the records matching the filter flags are
written, in the current sort order.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, flags, out, filtered)
		},
	}

	addViewFlags(cmd, &flags)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: <prefix>_<date>.csv)")
	cmd.Flags().BoolVar(&filtered, "filtered", false, "export only records matching the filter flags")

	return cmd
}

func runExport(cmd *cobra.Command, flags viewFlags, out string, filtered bool) error {
	ctx := cmd.Context()

	e, store, err := loadedEngine(ctx)
	if err != nil {
		return err
	}
	defer closeStore(store)

	records := e.Records()
	prefix := "all_registrations"
	if filtered {
		if err := applyViewFlags(e, flags); err != nil {
			return err
		}
		records = e.View().Filtered
		prefix = "filtered_registrations"
	}

	if out == "" {
		out = export.Filename(prefix, time.Now())
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	defer func() {
		_ = f.Close()
	}()

	bar := progressbar.Default(int64(len(records)), "exporting")

	w := export.NewWriter(f)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	for _, r := range records {
		if err := w.WriteRecord(r); err != nil {
			return err
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("exported %d registrations to %s", len(records), out)))
	return nil
}
