package keystore

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/PolarWolf314/toyrsa/internal/configs"
	kerrors "github.com/PolarWolf314/toyrsa/internal/errors"
	"github.com/PolarWolf314/toyrsa/internal/rsa"
	"github.com/google/uuid"
)

// File is the TOML layout of a key file.
type File struct {
	ID        string    `toml:"id"`
	CreatedAt time.Time `toml:"created_at"`
	Key       KeyValues `toml:"key"`
}

// KeyValues holds the key integers as decimal strings so any size survives TOML.
type KeyValues struct {
	P   string `toml:"p"`
	Q   string `toml:"q"`
	N   string `toml:"n"`
	Phi string `toml:"phi"`
	E   string `toml:"e"`
	D   string `toml:"d"`
}

// StoredKey is a key pair together with its file identity.
type StoredKey struct {
	ID        string
	CreatedAt time.Time
	KeyPair   *rsa.KeyPair
}

// Save writes kp to path under a fresh ID. An existing file is only replaced
// when overwrite is set.
func Save(path string, kp *rsa.KeyPair, overwrite bool) (*StoredKey, error) {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return nil, fmt.Errorf("%w: %s", kerrors.ErrKeyFileExists, path)
		}
	}

	file := File{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Key: KeyValues{
			P:   kp.P().String(),
			Q:   kp.Q().String(),
			N:   kp.N().String(),
			Phi: kp.Phi().String(),
			E:   kp.E().String(),
			D:   kp.D().String(),
		},
	}

	if err := configs.SavePrivateTOML(path, file); err != nil {
		return nil, fmt.Errorf("writing key file %s: %w", path, err)
	}

	return &StoredKey{ID: file.ID, CreatedAt: file.CreatedAt, KeyPair: kp}, nil
}

// Load reads a key file and re-derives its key pair.
func Load(path string) (*StoredKey, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrKeyFileNotFound, path)
	}

	var file File
	if err := configs.LoadTOML(path, &file); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidKeyFile, path, err)
	}

	values, err := file.Key.parse()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidKeyFile, path, err)
	}

	kp, err := rsa.FromExponent(values["p"], values["q"], values["e"])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidKeyFile, path, err)
	}

	derived := map[string]*big.Int{"n": kp.N(), "phi": kp.Phi(), "d": kp.D()}
	for _, name := range []string{"n", "phi", "d"} {
		if values[name].Cmp(derived[name]) != 0 {
			return nil, fmt.Errorf("%w: %s: %s=%s does not match derived value %s",
				kerrors.ErrInvalidKeyFile, path, name, values[name], derived[name])
		}
	}

	return &StoredKey{ID: file.ID, CreatedAt: file.CreatedAt, KeyPair: kp}, nil
}

func (v KeyValues) parse() (map[string]*big.Int, error) {
	raw := []struct {
		name, text string
	}{
		{"p", v.P}, {"q", v.Q}, {"n", v.N}, {"phi", v.Phi}, {"e", v.E}, {"d", v.D},
	}

	values := make(map[string]*big.Int, len(raw))
	for _, r := range raw {
		n, ok := new(big.Int).SetString(r.text, 10)
		if !ok {
			return nil, fmt.Errorf("%s=%q is not a decimal integer", r.name, r.text)
		}
		values[r.name] = n
	}
	return values, nil
}
