package cli

import (
	"fmt"

	"github.com/abdidvp/stockroom/internal/adapters/outbound/tui"
	"github.com/abdidvp/stockroom/internal/application"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.session(cmd)
			if err != nil {
				return err
			}

			products := sess.Stock.Products()
			if jsonOutput {
				return renderJSON(cmd, products)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderProducts(products, sess.Stock.LowStockThreshold()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output products as JSON")

	return cmd
}

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <quantity> <price> <mode>",
		Short: "Add a new product",
		Long:  "Add a new product. Mode is the shipment mode: land creates a good, sea creates cargo.",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.session(cmd)
			if err != nil {
				return err
			}

			np, err := application.ParseNewProduct(args[0], args[1], args[2], args[3])
			if err != nil {
				return err
			}
			id, err := sess.Manager.CreateProduct(np.Name, np.Quantity, np.Price, np.Type)
			if err != nil {
				return err
			}

			msg := fmt.Sprintf("Added product %s, Quantity: %d, Price: %s to inventory (ID %s)",
				np.Name, np.Quantity, np.Price.StringFixed(2), id)
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderNotice(msg))
			return nil
		},
	}
}

func newUpdateCmd(a *app) *cobra.Command {
	var name, qty, price, mode string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of an existing product",
		Long:  "Update an existing product. Only the flags given are changed; --qty sets the absolute quantity.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.session(cmd)
			if err != nil {
				return err
			}

			u := application.ProductUpdate{Name: name, Mode: mode}
			if qty != "" {
				n, err := application.ParseQuantity(qty)
				if err != nil {
					return err
				}
				u.Quantity = &n
			}
			if price != "" {
				p, err := application.ParsePrice(price)
				if err != nil {
					return err
				}
				u.Price = &p
			}

			res, err := sess.Manager.UpdateProduct(args[0], u)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, w := range res.Warnings {
				fmt.Fprint(out, tui.RenderWarning(w))
			}
			fmt.Fprint(out, tui.RenderNotice(res.Summary()))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New product name")
	cmd.Flags().StringVar(&qty, "qty", "", "New absolute quantity")
	cmd.Flags().StringVar(&price, "price", "", "New price")
	cmd.Flags().StringVar(&mode, "mode", "", "New shipment mode (land/sea)")

	return cmd
}

func newRestockCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restock <id> <quantity>",
		Short: "Set the stock level of an existing product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.session(cmd)
			if err != nil {
				return err
			}

			qty, err := application.ParseQuantity(args[1])
			if err != nil {
				return err
			}
			p, err := sess.Manager.RestockExisting(args[0], qty)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderNotice(fmt.Sprintf("Restocked %s to %d", p.Name, p.Quantity)))
			return nil
		},
	}
}
