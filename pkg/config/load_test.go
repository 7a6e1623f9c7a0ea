package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "****", maskValue("short"))
	assert.Equal(t, "sk****cdef", maskValue("sk_test_abcdef"))
}

func TestFindEnvFile(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.causehive"), []byte("X=1\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(nested))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	found, err := FindEnvFile(".env.causehive")
	require.NoError(t, err)
	assert.Equal(t, ".env.causehive", filepath.Base(found))

	_, err = FindEnvFile(".env.does-not-exist")
	assert.ErrorIs(t, err, os.ErrNotExist)

	abs, err := FindEnvFile(filepath.Join(dir, ".env.causehive"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".env.causehive"), abs)
}

func TestFindEnvFileStopsAtModuleRoot(t *testing.T) {
	dir := t.TempDir()
	module := filepath.Join(dir, "repo")
	nested := filepath.Join(module, "pkg")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(module, "go.mod"), []byte("module x\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.outside"), []byte("X=1\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(nested))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	_, err = FindEnvFile(".env.outside")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "secret")
	t.Setenv("PAYMENT_PROVIDER_DRIVER", "mock")

	cfg, err := Load(".env.does-not-exist")
	require.NoError(t, err)
	assert.Equal(t, "mock", cfg.PaymentProviders.Driver)
	assert.Equal(t, "GHS", cfg.Donation.Currency)
	assert.Equal(t, 24*time.Hour, cfg.Auth.Jwt.Expiry)
	assert.Equal(t, 24*time.Hour, cfg.Cache.BankListTTL)
	assert.InDelta(t, 0.025, cfg.Fee.WithdrawalFeePercentage, 1e-9)
	assert.Equal(t, "https://api.paystack.co", cfg.PaymentProviders.Paystack.BaseURL)
}
