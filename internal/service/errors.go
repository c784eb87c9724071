package service

import "fmt"

// TokenizationError wraps any failure while exchanging card data for a
// token. It carries the processor's detail but never the card number
// or security code.
type TokenizationError struct {
	Err error
}

func (e *TokenizationError) Error() string {
	return fmt.Sprintf("tokenizing card: %v", e.Err)
}

func (e *TokenizationError) Unwrap() error {
	return e.Err
}

// ResolutionError wraps any failure while resolving an email to a
// processor customer id.
type ResolutionError struct {
	Email string
	Err   error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolving customer for %s: %v", e.Email, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
