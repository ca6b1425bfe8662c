package workflows

import (
	"context"
	"fmt"
	"math/big"

	kerrors "github.com/PolarWolf314/toyrsa/internal/errors"
)

// Input supplies the values a demo run needs.
type Input interface {
	// ReadPrimes returns the prime pair.
	ReadPrimes(ctx context.Context) (p, q *big.Int, err error)

	// ReadMessage returns a message; n is the modulus it must stay below.
	ReadMessage(ctx context.Context, n *big.Int) (*big.Int, error)
}

// FixedInput returns preset values and defers to Fallback for anything unset.
type FixedInput struct {
	P, Q     *big.Int
	M        *big.Int
	Fallback Input
}

// ReadPrimes returns P and Q when both are set.
func (f FixedInput) ReadPrimes(ctx context.Context) (*big.Int, *big.Int, error) {
	if f.P != nil && f.Q != nil {
		return f.P, f.Q, nil
	}
	if f.Fallback == nil {
		return nil, nil, fmt.Errorf("%w: primes p and q", kerrors.ErrMissingInput)
	}
	return f.Fallback.ReadPrimes(ctx)
}

// ReadMessage returns M when set.
func (f FixedInput) ReadMessage(ctx context.Context, n *big.Int) (*big.Int, error) {
	if f.M != nil {
		return f.M, nil
	}
	if f.Fallback == nil {
		return nil, fmt.Errorf("%w: message m", kerrors.ErrMissingInput)
	}
	return f.Fallback.ReadMessage(ctx, n)
}
