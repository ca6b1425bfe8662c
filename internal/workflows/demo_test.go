package workflows

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PolarWolf314/toyrsa/internal/audit"
	kerrors "github.com/PolarWolf314/toyrsa/internal/errors"
	"github.com/PolarWolf314/toyrsa/internal/rsa"
)

func TestDemo_TextbookKey(t *testing.T) {
	useTempDataDir(t)

	in := &scriptedInput{p: 61, q: 53, m: 65}
	var stages []Stage
	var values []string

	result, err := Demo(context.Background(), DemoOptions{
		Input:          in,
		PublicExponent: big.NewInt(17),
		Report: func(ev Event) {
			stages = append(stages, ev.Stage)
			values = append(values, ev.Value.String())
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []Stage{
		StageModulus, StageTotient, StagePublicExponent,
		StagePrivateExponent, StageCiphertext, StageRecovered,
	}, stages)
	assert.Equal(t, []string{"3233", "3120", "17", "2753", "2790", "65"}, values)

	assert.Equal(t, "3233", in.messageN.String(), "message input must be bounded by n")
	assert.Equal(t, "2790", result.Ciphertext.String())
	assert.Equal(t, "65", result.Recovered.String())
	assert.True(t, result.Verified)
}

func TestDemo_RandomExponentRoundTrips(t *testing.T) {
	useTempDataDir(t)

	for seed := uint64(0); seed < 20; seed++ {
		result, err := Demo(context.Background(), DemoOptions{
			Input:  &scriptedInput{p: 101, q: 113, m: 4242},
			Random: rsa.NewSeededReader(seed),
		})
		require.NoError(t, err)
		assert.True(t, result.Verified, "seed %d", seed)
		assert.Equal(t, int64(4242), result.Recovered.Int64())
	}
}

func TestDemo_SeedIsReproducible(t *testing.T) {
	useTempDataDir(t)

	run := func() *DemoResult {
		result, err := Demo(context.Background(), DemoOptions{
			Input:  &scriptedInput{p: 61, q: 53, m: 7},
			Random: rsa.NewSeededReader(42),
		})
		require.NoError(t, err)
		return result
	}

	a, b := run(), run()
	assert.Equal(t, a.KeyPair.E().String(), b.KeyPair.E().String())
	assert.Equal(t, a.Ciphertext.String(), b.Ciphertext.String())
}

func TestDemo_InvalidPrimes(t *testing.T) {
	useTempDataDir(t)

	_, err := Demo(context.Background(), DemoOptions{
		Input: &scriptedInput{p: 4, q: 53, m: 1},
	})
	assert.ErrorIs(t, err, kerrors.ErrInvalidPrimes)
}

func TestDemo_MessageTooLarge(t *testing.T) {
	useTempDataDir(t)

	_, err := Demo(context.Background(), DemoOptions{
		Input:          &scriptedInput{p: 61, q: 53, m: 3233},
		PublicExponent: big.NewInt(17),
	})
	assert.ErrorIs(t, err, kerrors.ErrMessageTooLarge)
}

func TestDemo_InputErrorsPassThrough(t *testing.T) {
	useTempDataDir(t)

	_, err := Demo(context.Background(), DemoOptions{
		Input: &scriptedInput{primesErr: kerrors.ErrRetriesExhausted},
	})
	assert.ErrorIs(t, err, kerrors.ErrRetriesExhausted)

	_, err = Demo(context.Background(), DemoOptions{
		Input:          &scriptedInput{p: 61, q: 53, messageErr: kerrors.ErrNonIntegerInput},
		PublicExponent: big.NewInt(17),
	})
	assert.ErrorIs(t, err, kerrors.ErrNonIntegerInput)
}

func TestDemo_RequiresInput(t *testing.T) {
	_, err := Demo(context.Background(), DemoOptions{})
	assert.Error(t, err)
}

func TestDemo_CancelledContext(t *testing.T) {
	useTempDataDir(t)

	ctx, cancel := context.WithCancel(context.Background())
	in := &scriptedInput{p: 61, q: 53, m: 65}

	_, err := Demo(ctx, DemoOptions{
		Input:          in,
		PublicExponent: big.NewInt(17),
		Report: func(ev Event) {
			if ev.Stage == StagePrivateExponent {
				cancel()
			}
		},
	})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Nil(t, in.messageN, "message must not be read after cancellation")
}

func TestDemo_FixedInputFallsBack(t *testing.T) {
	useTempDataDir(t)

	fallback := &scriptedInput{p: 61, q: 53, m: 9}
	result, err := Demo(context.Background(), DemoOptions{
		Input:          FixedInput{M: big.NewInt(65), Fallback: fallback},
		PublicExponent: big.NewInt(17),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fallback.primesCalls)
	assert.Nil(t, fallback.messageN, "message was fixed")
	assert.Equal(t, "65", result.Message.String())
}

func TestFixedInput_MissingValues(t *testing.T) {
	_, _, err := FixedInput{P: big.NewInt(61)}.ReadPrimes(context.Background())
	assert.ErrorIs(t, err, kerrors.ErrMissingInput)

	_, err = FixedInput{}.ReadMessage(context.Background(), big.NewInt(3233))
	assert.ErrorIs(t, err, kerrors.ErrMissingInput)
}

func TestDemo_Audit(t *testing.T) {
	useTempDataDir(t)

	_, err := Demo(context.Background(), DemoOptions{
		Input:          &scriptedInput{p: 61, q: 53, m: 65},
		PublicExponent: big.NewInt(17),
		Audit:          true,
	})
	require.NoError(t, err)

	entries, err := audit.ReadEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "demo", entries[0].Operation)
	assert.Equal(t, "3233", entries[0].Modulus)
	assert.Equal(t, "17", entries[0].Exponent)
	require.NotNil(t, entries[0].Verified)
	assert.True(t, *entries[0].Verified)
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "modulus", StageModulus.String())
	assert.Equal(t, "recovered message", StageRecovered.String())
	assert.Equal(t, "unknown", Stage(99).String())
}
