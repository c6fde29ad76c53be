package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"socialdesk/internal/domain/entity"
	"socialdesk/internal/errors"
	"socialdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const historyPageSize = 200

func newStockCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Inspect and change the stock ledger",
	}

	var owner string
	cmd.PersistentFlags().StringVar(&owner, "owner", "", "owner user id")
	_ = cmd.MarkPersistentFlagRequired("owner")

	ownerID := func() (uuid.UUID, error) {
		id, err := uuid.Parse(owner)
		if err != nil {
			return uuid.Nil, errors.Errorf("invalid --owner %q", owner)
		}

		return id, nil
	}

	cmd.AddCommand(newStockArrivalCommand(opts, ownerID))
	cmd.AddCommand(newStockHistoryCommand(opts, ownerID))
	cmd.AddCommand(newStockVerifyCommand(opts, ownerID))

	return cmd
}

func newStockArrivalCommand(opts *RootOptions, ownerID func() (uuid.UUID, error)) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "arrival <file.csv>",
		Short: "Record a goods arrival from a product_id,quantity CSV",
		Long: `Record a goods arrival. Every line is applied in one transaction:
if one product is unknown or archived, no stock changes at all.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := ownerID()
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return errors.WithStack(err)
			}
			defer f.Close()

			items, err := parseArrivals(f)
			if err != nil {
				return err
			}

			var stockUC usecase.StockLedgerUsecase

			return withApp(cmd.Context(), func(ctx context.Context) error {
				products, err := stockUC.BulkArrival(ctx, userID, items, reason)
				if err != nil {
					return err
				}

				if opts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), products)
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "PRODUCT\tNAME\tSTOCK")
				for _, p := range products {
					fmt.Fprintf(tw, "%s\t%s\t%d\n", p.ID, p.Name, p.StockQuantity)
				}

				return errors.WithStack(tw.Flush())
			}, &stockUC)
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "reason recorded on every movement")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}

func newStockHistoryCommand(opts *RootOptions, ownerID func() (uuid.UUID, error)) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <product-id>",
		Short: "Print the movements of a product, newest first, with running balances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := ownerID()
			if err != nil {
				return err
			}
			productID, err := uuid.Parse(args[0])
			if err != nil {
				return errors.Errorf("invalid product id %q", args[0])
			}

			var stockUC usecase.StockLedgerUsecase

			return withApp(cmd.Context(), func(ctx context.Context) error {
				var entries []entity.StockHistoryEntry
				for entry, err := range stockUC.History(ctx, userID, productID, historyPageSize) {
					if err != nil {
						return err
					}
					if limit > 0 && len(entries) == limit {
						break
					}
					entries = append(entries, entry)
				}

				if opts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), entries)
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "DATE\tKIND\tCHANGE\tBALANCE\tREASON")
				for _, e := range entries {
					fmt.Fprintf(tw, "%s\t%s\t%+d\t%d\t%s\n",
						e.Movement.CreatedAt.Format(time.DateTime),
						e.Movement.Kind,
						e.Movement.ChangeQuantity,
						e.BalanceAfter,
						e.Movement.Reason,
					)
				}

				return errors.WithStack(tw.Flush())
			}, &stockUC)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of movements, 0 for all")

	return cmd
}

func newStockVerifyCommand(opts *RootOptions, ownerID func() (uuid.UUID, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <product-id>",
		Short: "Compare stock_quantity with the sum of the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := ownerID()
			if err != nil {
				return err
			}
			productID, err := uuid.Parse(args[0])
			if err != nil {
				return errors.Errorf("invalid product id %q", args[0])
			}

			var stockUC usecase.StockLedgerUsecase

			return withApp(cmd.Context(), func(ctx context.Context) error {
				report, err := stockUC.VerifyBalance(ctx, userID, productID)
				if err != nil {
					return err
				}

				if opts.Format == "json" {
					if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
						return err
					}
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "stock %d, ledger %d, drift %d\n",
						report.StockQuantity, report.LedgerSum, report.Drift)
				}
				if !report.Balanced() {
					return errors.Errorf("product %s is out of balance by %d", productID, report.Drift)
				}

				return nil
			}, &stockUC)
		},
	}

	return cmd
}
