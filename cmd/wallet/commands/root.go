package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/AlexZinkM/wallet-connect/internal/client"
	"github.com/AlexZinkM/wallet-connect/internal/config"
	"github.com/AlexZinkM/wallet-connect/internal/handler"
	"github.com/AlexZinkM/wallet-connect/internal/profile"
	"github.com/AlexZinkM/wallet-connect/internal/registry"
	"github.com/AlexZinkM/wallet-connect/wallet"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// commands that only touch the profile file skip provider wiring
const annotationNoWallet = "no-wallet"

var (
	providersFile string
	profileFile   string

	logger  *zap.Logger
	users   *profile.Store
	alerts  *handler.AlertBuffer
	appCtx  *wallet.Component
	closeFn = func() {}
)

// Execute runs the wallet CLI
func Execute() error {
	root := &cobra.Command{
		Use:           "wallet",
		Short:         "Connect to a browser-style wallet provider and send transfers",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Init(); err != nil {
				return err
			}
			cfg := config.Get()
			if providersFile != "" {
				cfg.ProvidersFile = providersFile
			}
			if profileFile != "" {
				cfg.ProfileFile = profileFile
			}

			l, err := cfg.NewLogger()
			if err != nil {
				return err
			}
			logger = l
			users = profile.NewStore(config.GetProfileFile())

			if cmd.Annotations[annotationNoWallet] != "" {
				return nil
			}
			return setupWallet(cmd.Context(), cfg, cmd.Name() == "serve")
		},
	}

	root.PersistentFlags().StringVar(&providersFile, "providers", "", "provider file (toml, yaml or json); overrides PROVIDERS_FILE")
	root.PersistentFlags().StringVar(&profileFile, "profile", "", "profile file; overrides PROFILE_FILE")

	root.AddCommand(serveCmd(), detectCmd(), connectCmd(), transferCmd(), userCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer shutdown()

	return root.ExecuteContext(ctx)
}

// shutdown waits for pending save-wallet notifications and releases providers
func shutdown() {
	if appCtx != nil {
		appCtx.Wait()
	}
	closeFn()
	if logger != nil {
		_ = logger.Sync()
	}
}

func setupWallet(ctx context.Context, cfg *config.Config, buffered bool) error {
	file, err := registry.Load(cfg.ProvidersFile)
	if err != nil {
		return err
	}
	if cfg.EthRPCURL != "" {
		file.Ethereum.RPCURL = cfg.EthRPCURL
		file.Ethereum.AccountsMethod = cfg.EthAccountsMethod
	}

	env, closeEnv, err := file.Environment(ctx, http.DefaultClient)
	if err != nil {
		return fmt.Errorf("failed to set up providers: %w", err)
	}
	closeFn = closeEnv

	var alerter wallet.Alerter = wallet.AlertFunc(func(msg string) {
		fmt.Println(msg)
	})
	if buffered {
		alerts = handler.NewAlertBuffer()
		alerter = alerts
	}

	appCtx = wallet.New(env, wallet.Deps{
		Alerter: alerter,
		Logger:  logger,
		Saver:   client.NewSaveWalletClient(config.GetSaveWalletURL(), cfg.SaveWalletTimeout),
		Users:   users,
	})
	return nil
}

func printSession() {
	s := appCtx.Session()
	if !s.Connected {
		fmt.Println("Not connected")
		return
	}
	fmt.Printf("Wallet:  %s\nAccount: %s\nBalance: %s\n", s.WalletType, s.Account, s.Balance)
}
