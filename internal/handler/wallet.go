package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/AlexZinkM/wallet-connect/internal/model"
	"github.com/AlexZinkM/wallet-connect/wallet"
)

// AlertBuffer collects the user-facing alerts raised during one request
type AlertBuffer struct {
	mu   sync.Mutex
	msgs []string
}

// NewAlertBuffer creates an empty AlertBuffer
func NewAlertBuffer() *AlertBuffer {
	return &AlertBuffer{}
}

// Alert implements wallet.Alerter
func (b *AlertBuffer) Alert(msg string) {
	b.mu.Lock()
	b.msgs = append(b.msgs, msg)
	b.mu.Unlock()
}

// Drain returns and clears the collected alerts
func (b *AlertBuffer) Drain() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.msgs
	b.msgs = nil
	if out == nil {
		out = []string{}
	}
	return out
}

// WalletHandler exposes the wallet component over HTTP
type WalletHandler struct {
	mu     sync.Mutex // keeps each request's alerts together
	wallet *wallet.Component
	alerts *AlertBuffer
}

// NewWalletHandler creates a new WalletHandler. alerts must be the Alerter the component was built with.
func NewWalletHandler(w *wallet.Component, alerts *AlertBuffer) *WalletHandler {
	return &WalletHandler{
		wallet: w,
		alerts: alerts,
	}
}

// Available handles GET /wallet/available
// @Summary      List detected wallets
// @Description  Returns the wallets found by the last detection and the selected one
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.CatalogResponse
// @Router       /wallet/available [get]
func (h *WalletHandler) Available(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, model.CatalogResponse{Catalog: h.wallet.Catalog(), Messages: []string{}})
}

// Detect handles POST /wallet/detect
// @Summary      Detect wallets
// @Description  Re-runs wallet detection; the first wallet found becomes the selected one
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.CatalogResponse
// @Router       /wallet/detect [post]
func (h *WalletHandler) Detect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	h.wallet.Detect()
	writeJSON(w, http.StatusOK, model.CatalogResponse{Catalog: h.wallet.Catalog(), Messages: []string{}})
}

// Session handles GET /wallet/session
// @Summary      Get session
// @Description  Returns the connection state: account, display balance and wallet type
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.SessionResponse
// @Router       /wallet/session [get]
func (h *WalletHandler) Session(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, model.SessionResponse{Session: h.wallet.Session(), Messages: []string{}})
}

// Connect handles POST /wallet/connect
// @Summary      Connect wallet
// @Description  Connects to the given wallet, or the selected one when empty
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ConnectRequest  true  "Wallet to connect"
// @Success      200      {object}  model.SessionResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /wallet/connect [post]
func (h *WalletHandler) Connect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ConnectRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
			return
		}
	}

	walletID := req.Wallet
	if walletID == "" {
		walletID = h.wallet.Catalog().Selected
	}
	if walletID == "" {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "no wallet selected"})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.wallet.Connect(r.Context(), walletID); err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, wallet.ErrProviderNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Messages: h.alerts.Drain()})
		return
	}

	writeJSON(w, http.StatusOK, model.SessionResponse{Session: h.wallet.Session(), Messages: h.alerts.Drain()})
}

// Transfer handles POST /wallet/transfer
// @Summary      Send transfer
// @Description  Validates the transfer and hands it to the connected wallet for signing and broadcast
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.TransferRequest  true  "Transfer data"
// @Success      200      {object}  model.TransferResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /wallet/transfer [post]
func (h *WalletHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	receipt, err := h.wallet.Transfer(r.Context(), model.TransferDraft{
		RecipientAddress: req.RecipientAddress,
		TransferAmount:   req.TransferAmount,
	})
	if err != nil {
		status := http.StatusBadGateway
		code := ""
		if wallet.IsValidationError(err) {
			status = http.StatusBadRequest
			code = "VALIDATION"
		}
		writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: code, Messages: h.alerts.Drain()})
		return
	}

	writeJSON(w, http.StatusOK, model.TransferResponse{Receipt: receipt, Messages: h.alerts.Drain()})
}

// Disconnect handles POST /wallet/disconnect
// @Summary      Disconnect wallet
// @Description  Clears the session and the transfer draft; the wallet itself is not contacted
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.SessionResponse
// @Router       /wallet/disconnect [post]
func (h *WalletHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.wallet.Disconnect()
	writeJSON(w, http.StatusOK, model.SessionResponse{Session: h.wallet.Session(), Messages: h.alerts.Drain()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
