package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/cli"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/model"
)

func listCmd() *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registrations",
		Long: `Display one page of registrations with the same filter, search, date
range, sort and pagination behavior as the dashboard.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, flags)
		},
	}

	addViewFlags(cmd, &flags)
	return cmd
}

func runList(cmd *cobra.Command, flags viewFlags) error {
	ctx := cmd.Context()

	e, store, err := loadedEngine(ctx)
	if err != nil {
		return err
	}
	defer closeStore(store)

	if err := applyViewFlags(e, flags); err != nil {
		return err
	}
	view := e.View()

	if view.TotalFiltered == 0 {
		fmt.Println(cli.InfoStyle.Render("No registrations match the current filters."))
		return nil
	}

	fmt.Println(cli.FormatTitle("Registrations"))
	fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("page %d of %d · %d matching",
		view.CurrentPage, view.TotalPages, view.TotalFiltered)))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() {
		_ = w.Flush()
	}()

	if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		cli.TableHeaderStyle.Render("ID"),
		cli.TableHeaderStyle.Render("Name"),
		cli.TableHeaderStyle.Render("Email"),
		cli.TableHeaderStyle.Render("Category"),
		cli.TableHeaderStyle.Render("Company"),
		cli.TableHeaderStyle.Render("Phone"),
		cli.TableHeaderStyle.Render("Registered")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("─", 4),
		strings.Repeat("─", 16),
		strings.Repeat("─", 24),
		strings.Repeat("─", 10),
		strings.Repeat("─", 12),
		strings.Repeat("─", 12),
		strings.Repeat("─", 16)); err != nil {
		return fmt.Errorf("failed to write separator: %w", err)
	}

	for _, r := range view.Page {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Name, r.Email, r.CategoryKey(),
			orDash(r.Company), orDash(r.Phone),
			r.CreatedAt.Local().Format("2006-01-02 15:04")); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	return nil
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// summaryLine renders a one-line description of a registration for
// mutation feedback.
func summaryLine(r model.Registration) string {
	parts := []string{r.Name, r.Email, r.CategoryKey()}
	if r.Company != "" {
		parts = append(parts, r.Company)
	}
	return strings.Join(parts, " · ")
}
