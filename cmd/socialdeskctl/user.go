package main

import (
	"context"
	"fmt"

	"socialdesk/internal/usecase"

	"github.com/spf13/cobra"
)

func newUserCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage owner accounts",
	}
	cmd.AddCommand(newUserCreateCommand(opts))

	return cmd
}

func newUserCreateCommand(opts *RootOptions) *cobra.Command {
	var email, name, password string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an owner account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var authUC usecase.AuthUsecase

			return withApp(cmd.Context(), func(ctx context.Context) error {
				user, err := authUC.Register(ctx, email, name, password)
				if err != nil {
					return err
				}

				if opts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), user)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", user.Email, user.ID)

				return nil
			}, &authUC)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&password, "password", "", "initial password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
