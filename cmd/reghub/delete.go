package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/cli"
)

func deleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a registration by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, args[0], yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func runDelete(cmd *cobra.Command, rawID string, yes bool) error {
	ctx := cmd.Context()

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid registration id %q", rawID)
	}

	e, store, err := loadedEngine(ctx)
	if err != nil {
		return err
	}
	defer closeStore(store)

	if !yes {
		fmt.Printf("Delete registration %d? [y/N] ", id)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Println(cli.InfoStyle.Render("Cancelled."))
			return nil
		}
	}

	result := e.Delete(ctx, id)
	if !result.Success {
		fmt.Println(cli.FormatError(result.Error))
		return nil
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("deleted registration %d", id)))
	return nil
}
