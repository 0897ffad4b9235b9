package commands

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/AlexZinkM/wallet-connect/internal/api"
	"github.com/AlexZinkM/wallet-connect/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the wallet HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := ":" + config.GetPort()
			srv := &http.Server{Addr: addr, Handler: api.SetupRouter(appCtx, alerts)}

			go func() {
				<-cmd.Context().Done()
				_ = srv.Close()
			}()

			logger.Info("server started", zap.String("addr", addr), zap.Strings("wallets", appCtx.Catalog().Available))
			fmt.Printf("Swagger UI: http://localhost%s/swagger/index.html\n", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
}
