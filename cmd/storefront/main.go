// Command storefront is the VentasBronca shopping cart: it keeps the cart in
// a local store between invocations, renders it in the terminal, and hands
// checkout off to WhatsApp.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ventasbronca/storefront/internal/config"
	"github.com/ventasbronca/storefront/internal/logging"
	"github.com/ventasbronca/storefront/internal/services"
	"github.com/ventasbronca/storefront/internal/transport/cli"
)

var (
	cfgPath string
	debug   bool

	logger    *zap.Logger
	presenter *cli.Presenter
	opts      *services.ServiceOptions
)

var rootCmd = &cobra.Command{
	Use:          "storefront",
	Short:        "Carrito de compras VentasBronca",
	Long:         "Tienda VentasBronca: carrito persistente, búsqueda de productos y compra por WhatsApp.",
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(debug)
		if err != nil {
			return err
		}

		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		presenter = cli.NewPresenter(cmd.OutOrStdout())
		opts, err = services.NewServiceOptions(cfg, logger, services.Surfaces{
			Renderer:  presenter,
			Notifier:  presenter,
			Confirmer: cli.NewStdinConfirmer(cmd.InOrStdin(), cmd.OutOrStdout()),
			Opener:    cli.NewBrowserOpener(cmd.OutOrStdout(), logger),
		})
		return err
	},

	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if opts != nil {
			_ = opts.Close()
		}
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "ventasbronca.yaml", "ruta del archivo de configuración")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "habilita logs de depuración")

	rootCmd.AddCommand(listCmd, addCmd, qtyCmd, rmCmd, checkoutCmd, searchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
