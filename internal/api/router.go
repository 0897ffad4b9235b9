package api

import (
	"net/http"

	_ "github.com/AlexZinkM/wallet-connect/docs"
	"github.com/AlexZinkM/wallet-connect/internal/handler"
	"github.com/AlexZinkM/wallet-connect/wallet"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers.
// alerts must be the Alerter the component was created with.
func SetupRouter(w *wallet.Component, alerts *handler.AlertBuffer) http.Handler {
	walletHandler := handler.NewWalletHandler(w, alerts)

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Wallet endpoints
	mux.HandleFunc("/wallet/available", walletHandler.Available)
	mux.HandleFunc("/wallet/detect", walletHandler.Detect)
	mux.HandleFunc("/wallet/session", walletHandler.Session)
	mux.HandleFunc("/wallet/connect", walletHandler.Connect)
	mux.HandleFunc("/wallet/transfer", walletHandler.Transfer)
	mux.HandleFunc("/wallet/disconnect", walletHandler.Disconnect)

	return mux
}
