package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSecret(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SECRETS_DIR", dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "db_password"), []byte("  s3cret\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty"), []byte("   \n"), 0600))

	secret, err := ReadSecret("db_password")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", secret, "secret should be trimmed")

	_, err = ReadSecret("empty")
	assert.Error(t, err, "empty secret file must be an error")

	_, err = ReadSecret("missing")
	assert.Error(t, err)
}
