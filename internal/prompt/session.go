package prompt

import (
	"context"
	"errors"
	"math/big"

	kerrors "github.com/PolarWolf314/toyrsa/internal/errors"
	"github.com/PolarWolf314/toyrsa/internal/numtheory"
	"github.com/PolarWolf314/toyrsa/internal/rsa"
)

// Session reads the values of one demo run from a Prompter.
type Session struct {
	Prompter Prompter
	Retry    Retry
}

// rejection pairs a sentinel error with the text shown to the user.
type rejection struct {
	msg string
	err error
}

func (r *rejection) Error() string { return r.msg }
func (r *rejection) Unwrap() error { return r.err }

// ReadPrimes asks for p, then for a q that is prime and usable with p.
func (s *Session) ReadPrimes(ctx context.Context) (*big.Int, *big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	p, err := ReadInt(s.Prompter, "Select prime p: ", requirePrime, s.Retry)
	if err != nil {
		return nil, nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	q, err := ReadInt(s.Prompter, "Select prime q: ", func(q *big.Int) error {
		if err := requirePrime(q); err != nil {
			return err
		}
		if err := rsa.ValidatePrimes(p, q); err != nil {
			if p.Cmp(q) == 0 {
				return &rejection{msg: "q must differ from p", err: err}
			}
			return &rejection{msg: "p and q are too small to carry a key", err: err}
		}
		return nil
	}, s.Retry)
	if err != nil {
		return nil, nil, err
	}

	return p, q, nil
}

// ReadMessage asks for a message in [0, n).
func (s *Session) ReadMessage(ctx context.Context, n *big.Int) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return ReadInt(s.Prompter, "Select message m: ", func(m *big.Int) error {
		if m.Sign() < 0 {
			return &rejection{msg: "Message must not be negative", err: kerrors.ErrNegativeMessage}
		}
		if m.Cmp(n) >= 0 {
			return &rejection{msg: "Message needs to be smaller than modulus n", err: kerrors.ErrMessageTooLarge}
		}
		return nil
	}, s.Retry)
}

func requirePrime(n *big.Int) error {
	if !numtheory.IsPrime(n) {
		return &rejection{msg: "Not a prime number", err: kerrors.ErrInvalidPrimes}
	}
	return nil
}

// RejectionMessage returns the text to show the user for a rejected answer.
func RejectionMessage(err error) string {
	var r *rejection
	if errors.As(err, &r) {
		return r.msg
	}
	if errors.Is(err, kerrors.ErrNonIntegerInput) {
		return "Only integers allowed"
	}
	return err.Error()
}
