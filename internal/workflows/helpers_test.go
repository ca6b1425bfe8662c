package workflows

import (
	"context"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/toyrsa/internal/configs"
)

// useTempDataDir points the operation log at a fresh directory.
func useTempDataDir(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	original := configs.UserToyrsaSettings
	configs.UserToyrsaSettings = &configs.UserSettings{
		ConfigPath: filepath.Join(tempDir, "config"),
		DataPath:   filepath.Join(tempDir, "data"),
	}
	t.Cleanup(func() {
		configs.UserToyrsaSettings = original
	})

	return configs.UserToyrsaSettings.DataPath
}

// scriptedInput records how often each value was requested.
type scriptedInput struct {
	p, q, m     int64
	primesCalls int
	messageN    *big.Int
	primesErr   error
	messageErr  error
}

func (s *scriptedInput) ReadPrimes(ctx context.Context) (*big.Int, *big.Int, error) {
	s.primesCalls++
	if s.primesErr != nil {
		return nil, nil, s.primesErr
	}
	return big.NewInt(s.p), big.NewInt(s.q), nil
}

func (s *scriptedInput) ReadMessage(ctx context.Context, n *big.Int) (*big.Int, error) {
	s.messageN = new(big.Int).Set(n)
	if s.messageErr != nil {
		return nil, s.messageErr
	}
	return big.NewInt(s.m), nil
}
