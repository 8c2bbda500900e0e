package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[bot]
reqwest_timeout = 7
update_interval = 120
polling = true

[bot.webhook]
host = "bot.example.am"
port = 8443
cert = "server.pem"

[src.acba]
rates_url = "https://acba.test/rates"
enabled = true

[src.idpay]
rates_url = "https://idpay.test/rates"
enabled = false
commission_rate_to_ru_card = 1.0
commission_rate_from_any_card = 1.5
commission_rate_from_bank = 0.5

[src.ameria]
rates_url = "https://ameria.test/soap"
enabled = true

[src.ameria.req]
action = "GetExchangeRates"
port = 8080
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Bot.RequestTimeout)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout())
	assert.Equal(t, 2*time.Minute, cfg.UpdateInterval())
	assert.True(t, cfg.Bot.Polling)
	assert.Equal(t, "bot.example.am", cfg.Bot.Webhook.Host)
	assert.Equal(t, 8443, cfg.Bot.Webhook.Port)
	assert.Equal(t, "server.pem", cfg.Bot.Webhook.Cert)

	acba, ok := cfg.Source("acba")
	require.True(t, ok)
	assert.True(t, acba.Enabled)
	assert.Equal(t, "https://acba.test/rates", acba.RatesURL)

	idpay, ok := cfg.Source("idpay")
	require.True(t, ok)
	assert.InDelta(t, 1.0, idpay.CommissionToRuCard, 1e-9)
	assert.InDelta(t, 1.5, idpay.CommissionFromAnyCard, 1e-9)
	assert.InDelta(t, 0.5, idpay.CommissionFromBank, 1e-9)

	_, ok = cfg.Source("cba")
	assert.False(t, ok)

	assert.Equal(t, 2, cfg.EnabledCount())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[bot]\npolling = true\n"))
	require.NoError(t, err)
	assert.Equal(t, defaultRequestTimeout, cfg.Bot.RequestTimeout)
	assert.Equal(t, defaultUpdateInterval, cfg.Bot.UpdateInterval)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("POLLING", "false")
	t.Setenv("REQWEST_TIMEOUT", "3")
	t.Setenv("HOST", "override.example.am")
	t.Setenv("PORT", "9000")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	assert.False(t, cfg.Bot.Polling)
	assert.Equal(t, 3, cfg.Bot.RequestTimeout)
	assert.Equal(t, "override.example.am", cfg.Bot.Webhook.Host)
	assert.Equal(t, 9000, cfg.Bot.Webhook.Port)
	// Untouched keys keep the file values.
	assert.Equal(t, 120, cfg.Bot.UpdateInterval)
}

func TestLoadPathFromEnv(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	t.Setenv("BOT_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Bot.RequestTimeout)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "not = [valid"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[bot]\nreqwest_timeout = 0\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[bot]\nupdate_interval = -5\n"))
	assert.Error(t, err)
}

func TestReqHelpers(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	ameria, ok := cfg.Source("ameria")
	require.True(t, ok)
	assert.Equal(t, "GetExchangeRates", ameria.ReqString("action"))
	assert.Equal(t, "", ameria.ReqString("missing"))

	fields := ameria.ReqFields()
	assert.Equal(t, "GetExchangeRates", fields["action"])
	assert.Equal(t, "8080", fields["port"], "numbers flatten to strings")

	acba, _ := cfg.Source("acba")
	assert.Nil(t, acba.ReqFields())
}
