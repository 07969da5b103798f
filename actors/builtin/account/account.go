// Package account carries the subset of the account actor's external
// interface invoked by the market actor.
package account

// AuthenticateMessageParams asks an account actor whether `Signature` is a
// valid signature of `Message` by the account's key.
type AuthenticateMessageParams struct {
	Signature []byte
	Message   []byte
}
