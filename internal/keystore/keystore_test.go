package keystore

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	kerrors "github.com/PolarWolf314/toyrsa/internal/errors"
	"github.com/PolarWolf314/toyrsa/internal/rsa"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textbookKeyPair(t *testing.T) *rsa.KeyPair {
	t.Helper()
	kp, err := rsa.FromExponent(big.NewInt(61), big.NewInt(53), big.NewInt(17))
	require.NoError(t, err)
	return kp
}

func writeKeyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "key.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "key.toml")

	saved, err := Save(path, textbookKeyPair(t), false)
	require.NoError(t, err)
	_, err = uuid.Parse(saved.ID)
	require.NoError(t, err, "ID should be a UUID")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, loaded.ID)
	assert.True(t, saved.CreatedAt.Equal(loaded.CreatedAt))
	assert.Equal(t, "3233", loaded.KeyPair.N().String())
	assert.Equal(t, "3120", loaded.KeyPair.Phi().String())
	assert.Equal(t, "17", loaded.KeyPair.E().String())
	assert.Equal(t, "2753", loaded.KeyPair.D().String())
}

func TestSaveLargeValues(t *testing.T) {
	p, _ := new(big.Int).SetString("1000000007", 10)
	q, _ := new(big.Int).SetString("998244353", 10)
	kp, err := rsa.Generate(p, q, rsa.NewSeededReader(1))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "big.toml")
	_, err = Save(path, kp, false)
	require.NoError(t, err)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, kp.N().String(), loaded.KeyPair.N().String())
	assert.Equal(t, kp.D().String(), loaded.KeyPair.D().String())
}

func TestSaveRefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.toml")
	_, err := Save(path, textbookKeyPair(t), false)
	require.NoError(t, err)

	_, err = Save(path, textbookKeyPair(t), false)
	assert.ErrorIs(t, err, kerrors.ErrKeyFileExists)

	_, err = Save(path, textbookKeyPair(t), true)
	assert.NoError(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, kerrors.ErrKeyFileNotFound)
}

func TestLoadRejectsInvalidFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "malformed toml",
			content: "id = \"abc\"\n[key\n",
		},
		{
			name: "non-numeric value",
			content: `id = "abc"
[key]
p = "sixty-one"
q = "53"
n = "3233"
phi = "3120"
e = "17"
d = "2753"
`,
		},
		{
			name: "missing field",
			content: `id = "abc"
[key]
p = "61"
q = "53"
n = "3233"
phi = "3120"
e = "17"
`,
		},
		{
			name: "tampered private exponent",
			content: `id = "abc"
[key]
p = "61"
q = "53"
n = "3233"
phi = "3120"
e = "17"
d = "2754"
`,
		},
		{
			name: "tampered modulus",
			content: `id = "abc"
[key]
p = "61"
q = "53"
n = "3234"
phi = "3120"
e = "17"
d = "2753"
`,
		},
		{
			name: "composite p",
			content: `id = "abc"
[key]
p = "60"
q = "53"
n = "3180"
phi = "3068"
e = "17"
d = "2753"
`,
		},
		{
			name: "exponent not coprime",
			content: `id = "abc"
[key]
p = "61"
q = "53"
n = "3233"
phi = "3120"
e = "15"
d = "1"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeKeyFile(t, tt.content))
			assert.ErrorIs(t, err, kerrors.ErrInvalidKeyFile)
		})
	}
}
