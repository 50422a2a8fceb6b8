package cli

import (
	"fmt"

	"github.com/abdidvp/stockroom/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

func newProcureCmd(a *app) *cobra.Command {
	var (
		mode       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "procure <id> <quantity>",
		Short: "Place a procurement order against a product's stock",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.session(cmd)
			if err != nil {
				return err
			}

			res, err := sess.Stock.Procure(args[0], args[1], mode)
			if err != nil {
				return err
			}
			if jsonOutput {
				return renderJSON(cmd, res)
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, tui.RenderProcurement(res))
			if notes := sess.Stock.LowStockNotifications(); len(notes) > 0 {
				fmt.Fprint(out, tui.RenderLowStock(notes))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Shipment mode (land/sea)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the order as JSON")

	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show total stock and product counts per type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.session(cmd)
			if err != nil {
				return err
			}

			stats := sess.Stock.Statistics()
			if jsonOutput {
				return renderJSON(cmd, stats)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderStatistics(stats))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output statistics as JSON")

	return cmd
}

func newLowStockCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "low-stock",
		Short: "Show low stock notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.session(cmd)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderLowStock(sess.Stock.LowStockNotifications()))
			return nil
		},
	}
}
