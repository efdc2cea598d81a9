package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ventasbronca/storefront/internal/app/cart/contracts"
	cartdomain "github.com/ventasbronca/storefront/internal/app/cart/domain"
	"github.com/ventasbronca/storefront/internal/app/cart/usecases/add_item"
	"github.com/ventasbronca/storefront/internal/app/cart/usecases/modify_quantity"
	"github.com/ventasbronca/storefront/internal/app/cart/usecases/remove_item"
)

var addQty int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Muestra el carrito actual",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := opts.ViewCart.Execute(cmd.Context())
		if err != nil {
			return err
		}
		presenter.Render(v)
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add <producto>",
	Short: "Agrega un producto al carrito",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Entry-point guard: the per-add bound lives here, not in the cart.
		if err := cartdomain.ValidateAddQuantity(addQty); err != nil {
			presenter.Notify(contracts.NewNotification(contracts.KindError,
				"La cantidad debe estar entre 1 y 10", time.Now()))
			return err
		}

		product, ok := opts.Catalog.GetByID(args[0])
		if !ok {
			presenter.Notify(contracts.NewNotification(contracts.KindError,
				"Producto no encontrado", time.Now()))
			return fmt.Errorf("unknown product %q", args[0])
		}

		price, err := cartdomain.NewMoney(product.Price)
		if err != nil {
			return fmt.Errorf("invalid catalog price for %q: %w", product.ID, err)
		}

		return opts.AddItem.Execute(cmd.Context(), &add_item.Request{
			ProductID: product.ID,
			SKU:       product.SKU,
			Name:      product.Name,
			Price:     price,
			Quantity:  addQty,
		})
	},
}

var qtyCmd = &cobra.Command{
	Use:   "qty <producto> <delta>",
	Short: "Cambia la cantidad de un producto (+1, -1, ...)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		delta, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid delta %q: %w", args[1], err)
		}
		return opts.ModifyQuantity.Execute(cmd.Context(), &modify_quantity.Request{
			ProductID: args[0],
			Delta:     delta,
		})
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <producto>",
	Short: "Elimina un producto del carrito",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return opts.RemoveItem.Execute(cmd.Context(), &remove_item.Request{ProductID: args[0]})
	},
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Envía el pedido por WhatsApp",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return opts.Checkout.Execute(cmd.Context())
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <consulta>",
	Short: "Busca productos en el catálogo",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		result := opts.Search.Search(query)

		out := cmd.OutOrStdout()
		if result.Total == 0 {
			fmt.Fprintf(out, "No se encontraron productos para %q\n", query)
			return nil
		}

		fmt.Fprintf(out, "%d producto(s) encontrado(s)\n", result.Total)
		for _, hit := range result.Hits {
			price, err := cartdomain.NewMoney(hit.Price)
			if err != nil {
				return fmt.Errorf("invalid catalog price for %q: %w", hit.ID, err)
			}
			fmt.Fprintf(out, "  %s  SKU: %s - %s\n", hit.Name, hit.SKU, price.Format())
		}
		return nil
	},
}

func init() {
	addCmd.Flags().IntVar(&addQty, "qty", 1, "cantidad a agregar (entre 1 y 10)")
}
