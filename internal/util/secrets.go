package util

import (
	"encoding/json"
	"fmt"
	"os"
)

type Secrets struct {
	Port    int            `json:"port"`
	Catalog CatalogSecrets `json:"catalog"`
	Db      DbSecrets      `json:"db"`
}

const (
	CatalogSourceCsv      = "csv"
	CatalogSourcePostgres = "postgres"
)

type CatalogSecrets struct {
	Source     string `json:"source"`
	AssetsPath string `json:"assetsPath"`
	PricesPath string `json:"pricesPath"`
}

type DbSecrets struct {
	Host      string `json:"host"`
	User      string `json:"user"`
	Port      string `json:"port"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	EnableSsl bool   `json:"enableSsl"`
}

func (t DbSecrets) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

func secretsFilePath() string {
	if path := os.Getenv("ETF_SECRETS_FILE"); path != "" {
		return path
	}
	switch os.Getenv("ETF_ENV") {
	case "dev":
		return "secrets-dev.json"
	case "test":
		return "secrets-test.json"
	}
	return "/go/src/app/secrets.json"
}

func LoadSecrets() (*Secrets, error) {
	secretsFile := secretsFilePath()
	f, err := os.ReadFile(secretsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", secretsFile, err)
	}

	secrets := Secrets{}
	err = json.Unmarshal(f, &secrets)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", secretsFile, err)
	}

	if secrets.Port == 0 {
		secrets.Port = 3009
	}
	if secrets.Catalog.Source == "" {
		secrets.Catalog.Source = CatalogSourceCsv
	}
	if secrets.Catalog.Source != CatalogSourceCsv && secrets.Catalog.Source != CatalogSourcePostgres {
		return nil, fmt.Errorf("unsupported catalog source %q", secrets.Catalog.Source)
	}

	return &secrets, nil
}

func Pprint(i interface{}) {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bytes))
}
