package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/cli"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/model"
)

func addCmd() *cobra.Command {
	var input model.RegistrationInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a registration",
		Long: `Create one registration in the backing store. Name, email and category
are required; company and phone are optional.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAdd(cmd, input)
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "full name (required)")
	cmd.Flags().StringVar(&input.Email, "email", "", "email address (required)")
	cmd.Flags().StringVar(&input.Category, "category", "", "category, e.g. student or professional (required)")
	cmd.Flags().StringVar(&input.Company, "company", "", "company (optional)")
	cmd.Flags().StringVar(&input.Phone, "phone", "", "phone number (optional)")

	return cmd
}

func runAdd(cmd *cobra.Command, input model.RegistrationInput) error {
	ctx := cmd.Context()

	e, store, err := loadedEngine(ctx)
	if err != nil {
		return err
	}
	defer closeStore(store)

	result := e.Add(ctx, input)
	if !result.Success {
		fmt.Println(cli.FormatError(result.Error))
		return nil
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("added registration %d: %s",
		result.Registration.ID, summaryLine(*result.Registration))))
	return nil
}
