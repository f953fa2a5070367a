package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func writeSecrets(t *testing.T, contents string) {
	path := filepath.Join(t.TempDir(), "secrets.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	t.Setenv("ETF_SECRETS_FILE", path)
}

func TestLoadSecrets(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		writeSecrets(t, `{"catalog": {"assetsPath": "assets.csv", "pricesPath": "prices.csv"}}`)

		secrets, err := LoadSecrets()
		require.NoError(t, err)

		require.Equal(
			t,
			"",
			cmp.Diff(
				&Secrets{
					Port: 3009,
					Catalog: CatalogSecrets{
						Source:     CatalogSourceCsv,
						AssetsPath: "assets.csv",
						PricesPath: "prices.csv",
					},
				},
				secrets,
			),
		)
	})

	t.Run("postgres", func(t *testing.T) {
		writeSecrets(t, `{
			"port": 8080,
			"catalog": {"source": "postgres"},
			"db": {"host": "localhost", "user": "postgres", "port": "5440", "password": "pw", "database": "etf"}
		}`)

		secrets, err := LoadSecrets()
		require.NoError(t, err)

		require.Equal(t, 8080, secrets.Port)
		require.Equal(
			t,
			"host=localhost port=5440 user=postgres password=pw dbname=etf sslmode=disable",
			secrets.Db.ToConnectionStr(),
		)
	})

	t.Run("unknown source", func(t *testing.T) {
		writeSecrets(t, `{"catalog": {"source": "redis"}}`)

		_, err := LoadSecrets()
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Setenv("ETF_SECRETS_FILE", filepath.Join(t.TempDir(), "nope.json"))

		_, err := LoadSecrets()
		require.Error(t, err)
	})
}
