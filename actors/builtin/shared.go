package builtin

import (
	"fmt"
	"io"

	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/market-actors/actors/runtime"
)

// Discard is a cbor value that serializes to and from nothing. Pass a
// pointer to it as the return slot of a Send whose result is irrelevant.
type Discard struct{}

func (d *Discard) MarshalCBOR(_ io.Writer) error {
	return nil
}

func (d *Discard) UnmarshalCBOR(_ io.Reader) error {
	return nil
}

// Aborts with a formatted message if err is not nil.
// The provided message will be suffixed by ": <err>".
func RequireNoErr(rt runtime.Runtime, err error, defaultExitCode exitcode.ExitCode, msg string, args ...interface{}) {
	if err != nil {
		newMsg := msg + ": %s"
		newArgs := append(args, err)
		code := exitcode.Unwrap(err, defaultExitCode)
		rt.Abortf(code, newMsg, newArgs...)
	}
}

func RequireParam(rt runtime.Runtime, predicate bool, msg string, args ...interface{}) {
	if !predicate {
		rt.Abortf(exitcode.ErrIllegalArgument, msg, args...)
	}
}

func RequireState(rt runtime.Runtime, predicate bool, msg string, args ...interface{}) {
	if !predicate {
		rt.Abortf(exitcode.ErrIllegalState, msg, args...)
	}
}

// Aborts with an ErrIllegalState if code is not OK.
func RequireSuccess(rt runtime.Runtime, code exitcode.ExitCode, msg string, args ...interface{}) {
	if !code.IsSuccess() {
		rt.Abortf(exitcode.ErrIllegalState, fmt.Sprintf("%s (exit code %d)", msg, code), args...)
	}
}
