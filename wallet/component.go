// Package wallet connects to Ethereum-style and Cardano-style wallet providers,
// shows the account balance and submits simple transfers.
package wallet

import (
	"context"
	"sync"

	"github.com/AlexZinkM/wallet-connect/internal/model"
	"github.com/AlexZinkM/wallet-connect/internal/provider"

	"go.uber.org/zap"
)

// Alerter shows a user-facing message (the modal alert of the UI)
type Alerter interface {
	Alert(msg string)
}

// AlertFunc adapts a function to Alerter
type AlertFunc func(msg string)

// Alert calls f(msg)
func (f AlertFunc) Alert(msg string) { f(msg) }

// SaveWalletSender posts the connected wallet to the backend
type SaveWalletSender interface {
	SaveWallet(ctx context.Context, req model.SaveWalletRequest) error
}

// UserIDSource returns the locally persisted user identifier.
// An empty id with nil error means no user is stored.
type UserIDSource interface {
	UserID() (string, error)
}

// Deps are the collaborators of a Component. All fields are optional.
type Deps struct {
	Alerter Alerter
	Logger  *zap.Logger
	Saver   SaveWalletSender
	Users   UserIDSource
}

// binding is the provider handle of a connected session, tagged by family
type binding interface {
	walletType() model.WalletType
}

type ethereumBinding struct {
	provider provider.EthereumProvider
}

func (ethereumBinding) walletType() model.WalletType { return model.WalletTypeMetaMask }

type cardanoBinding struct {
	name string
	api  provider.CardanoAPI
}

func (cardanoBinding) walletType() model.WalletType { return model.WalletTypeCardano }

// session is the mutable connection state; walletType is derived from binding
type session struct {
	connected bool
	account   string
	balance   string
	accountQR string
	binding   binding
}

// Component detects wallets, connects to one and submits transfers.
// User actions are serialized; the save-wallet notification runs detached.
type Component struct {
	env    provider.Environment
	alerts Alerter
	log    *zap.Logger
	saver  SaveWalletSender
	users  UserIDSource

	actionMu sync.Mutex // one user action at a time
	mu       sync.Mutex // guards the fields below

	catalog  []string
	selected string
	state    session
	draft    model.TransferDraft

	pending sync.WaitGroup
}

// New creates a Component and runs wallet detection once
func New(env provider.Environment, deps Deps) *Component {
	c := &Component{
		env:    env,
		alerts: deps.Alerter,
		log:    deps.Logger,
		saver:  deps.Saver,
		users:  deps.Users,
	}
	if c.alerts == nil {
		c.alerts = AlertFunc(func(string) {})
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	c.Detect()
	return c
}

// Session returns a snapshot of the connection state
func (c *Component) Session() model.Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := model.Session{
		Connected: c.state.connected,
		Account:   c.state.account,
		Balance:   c.state.balance,
		AccountQR: c.state.accountQR,
	}
	if c.state.binding != nil {
		s.WalletType = c.state.binding.walletType()
	}
	return s
}

// Catalog returns the wallets found by the last detection and the selected one
func (c *Component) Catalog() model.Catalog {
	c.mu.Lock()
	defer c.mu.Unlock()

	return model.Catalog{
		Available: append([]string{}, c.catalog...),
		Selected:  c.selected,
	}
}

// Select sets the selected wallet. It does not connect.
func (c *Component) Select(walletID string) {
	c.mu.Lock()
	c.selected = walletID
	c.mu.Unlock()
}

// Draft returns the last transfer input
func (c *Component) Draft() model.TransferDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Wait blocks until all started save-wallet notifications have finished.
// Notifications are not ordered with respect to later actions; Wait exists
// for shutdown and tests.
func (c *Component) Wait() {
	c.pending.Wait()
}

func (c *Component) alert(msg string) {
	c.alerts.Alert(msg)
}
