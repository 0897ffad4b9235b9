package wallet

import "errors"

var (
	// ErrProviderNotFound is returned when the selected wallet is not installed
	ErrProviderNotFound = errors.New("wallet provider not found")
	// ErrWalletAPIUnavailable is returned when a Cardano transfer runs without an enabled wallet API
	ErrWalletAPIUnavailable = errors.New("wallet API not available")
	// ErrUnsupportedWallet is returned for transfers outside a known wallet family
	ErrUnsupportedWallet = errors.New("unsupported wallet type")
)

// ValidationError is a rejected transfer draft. Message is shown to the user as is.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError checks if error is ValidationError
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
