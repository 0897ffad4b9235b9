package wallet

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/AlexZinkM/wallet-connect/internal/model"
	"github.com/AlexZinkM/wallet-connect/internal/provider"
)

type ethCall struct {
	method string
	params []any
}

type fakeEthereum struct {
	mu      sync.Mutex
	results map[string]any
	errs    map[string]error
	calls   []ethCall
}

func (f *fakeEthereum) Request(_ context.Context, method string, params ...any) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, ethCall{method: method, params: params})
	if err := f.errs[method]; err != nil {
		return nil, err
	}
	return json.Marshal(f.results[method])
}

func (f *fakeEthereum) methods() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.method)
	}
	return out
}

type fakeCardanoWallet struct {
	api       *fakeCardanoAPI
	capable   bool
	enableErr error
}

func (f *fakeCardanoWallet) Enable(context.Context) (provider.CardanoAPI, error) {
	if f.enableErr != nil {
		return nil, f.enableErr
	}
	if f.api == nil {
		return nil, nil
	}
	return f.api, nil
}

func (f *fakeCardanoWallet) EnableCapable() bool { return f.capable }

type fakeCardanoAPI struct {
	used      []string
	unused    []string
	balance   string
	signed    string
	txHash    string
	signErr   error
	submitErr error

	unusedCalls int
	signCalls   int
	submitCalls int
	lastTx      model.CardanoTxDescriptor
	lastSigned  string
}

func (f *fakeCardanoAPI) GetUsedAddresses(context.Context) ([]string, error) {
	return f.used, nil
}

func (f *fakeCardanoAPI) GetUnusedAddresses(context.Context) ([]string, error) {
	f.unusedCalls++
	return f.unused, nil
}

func (f *fakeCardanoAPI) GetBalance(context.Context) (string, error) {
	return f.balance, nil
}

func (f *fakeCardanoAPI) SignTx(_ context.Context, tx model.CardanoTxDescriptor) (string, error) {
	f.signCalls++
	f.lastTx = tx
	if f.signErr != nil {
		return "", f.signErr
	}
	return f.signed, nil
}

func (f *fakeCardanoAPI) SubmitTx(_ context.Context, signedTx string) (string, error) {
	f.submitCalls++
	f.lastSigned = signedTx
	if f.submitErr != nil {
		return "", f.submitErr
	}
	return f.txHash, nil
}

type alertRecorder struct {
	mu   sync.Mutex
	msgs []string
}

func (a *alertRecorder) Alert(msg string) {
	a.mu.Lock()
	a.msgs = append(a.msgs, msg)
	a.mu.Unlock()
}

func (a *alertRecorder) all() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string{}, a.msgs...)
}

type fakeSaver struct {
	mu   sync.Mutex
	reqs []model.SaveWalletRequest
	err  error
}

func (f *fakeSaver) SaveWallet(_ context.Context, req model.SaveWalletRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	return f.err
}

func (f *fakeSaver) requests() []model.SaveWalletRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.SaveWalletRequest{}, f.reqs...)
}

type staticUser string

func (u staticUser) UserID() (string, error) { return string(u), nil }
