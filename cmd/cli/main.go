package main

import (
	"context"
	"database/sql"
	"etfbuilder/cmd"
	"etfbuilder/internal/calculator"
	"etfbuilder/internal/domain"
	"etfbuilder/internal/logger"
	"etfbuilder/internal/repository"
	"etfbuilder/internal/service"
	"etfbuilder/internal/util"
	"fmt"
	"log"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

type catalogFlags struct {
	assetsFile string
	pricesFile string
}

// repository reads the csv pair when both files are given and falls back to
// the catalog configured in secrets otherwise
func (f catalogFlags) repository() (repository.AssetCatalogRepository, *sql.DB, error) {
	if f.assetsFile != "" && f.pricesFile != "" {
		repo, err := repository.NewCsvAssetCatalogRepositoryFromFiles(f.assetsFile, f.pricesFile)
		return repo, nil, err
	}
	if f.assetsFile != "" || f.pricesFile != "" {
		return nil, nil, fmt.Errorf("--assets-file and --prices-file must be set together")
	}
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load secrets: %w", err)
	}
	return cmd.NewAssetCatalogRepository(secrets)
}

func (f *catalogFlags) register(c *cobra.Command) {
	c.Flags().StringVar(&f.assetsFile, "assets-file", "", "csv file of assets (key,name,color,yearlyYield)")
	c.Flags().StringVar(&f.pricesFile, "prices-file", "", "csv file of prices (key,period,price)")
}

func closeDb(db *sql.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		log.Printf("failed to close db: %v", err)
	}
}

func newContext() context.Context {
	return logger.WithLogger(context.Background(), logger.New())
}

func calculateCmd() *cobra.Command {
	var (
		flags   catalogFlags
		keys    []string
		weights []float64
	)
	c := &cobra.Command{
		Use:   "calculate",
		Short: "compute value series and metrics for a weighted portfolio",
		RunE: func(_ *cobra.Command, _ []string) error {
			repo, db, err := flags.repository()
			if err != nil {
				return err
			}
			defer closeDb(db)

			portfolioService := service.NewPortfolioService(repo, calculator.NewPortfolioCalculator(), nil)
			result, err := portfolioService.Calculate(newContext(), keys, weights)
			if err != nil {
				return err
			}
			util.Pprint(result)
			return nil
		},
	}
	flags.register(c)
	c.Flags().StringSliceVar(&keys, "keys", nil, "asset keys, comma separated")
	c.Flags().Float64SliceVar(&weights, "weights", nil, "raw weights, one per key")
	cobra.CheckErr(c.MarkFlagRequired("keys"))
	cobra.CheckErr(c.MarkFlagRequired("weights"))

	return c
}

func assetsCmd() *cobra.Command {
	var flags catalogFlags
	c := &cobra.Command{
		Use:   "assets",
		Short: "list the assets in the catalog",
		RunE: func(_ *cobra.Command, _ []string) error {
			repo, db, err := flags.repository()
			if err != nil {
				return err
			}
			defer closeDb(db)

			assets, err := repo.List(newContext())
			if err != nil {
				return fmt.Errorf("failed to list assets: %w", err)
			}
			util.Pprint(assets)
			return nil
		},
	}
	flags.register(c)

	return c
}

func importCmd() *cobra.Command {
	var flags catalogFlags
	c := &cobra.Command{
		Use:   "import",
		Short: "load a csv catalog into postgres",
		RunE: func(_ *cobra.Command, _ []string) error {
			source, err := repository.NewCsvAssetCatalogRepositoryFromFiles(flags.assetsFile, flags.pricesFile)
			if err != nil {
				return err
			}
			ctx := newContext()
			infos, err := source.List(ctx)
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(infos))
			for _, info := range infos {
				keys = append(keys, info.Key)
			}
			catalog, err := source.Get(ctx, keys)
			if err != nil {
				return err
			}

			secrets, err := util.LoadSecrets()
			if err != nil {
				return fmt.Errorf("failed to load secrets: %w", err)
			}
			db, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
			if err != nil {
				return fmt.Errorf("failed to connect to db: %w", err)
			}
			defer closeDb(db)

			assets := make([]domain.AssetSeries, 0, len(catalog))
			for _, asset := range catalog {
				assets = append(assets, asset)
			}
			err = repository.NewAssetCatalogRepository(db).Add(ctx, assets)
			if err != nil {
				return fmt.Errorf("failed to import catalog: %w", err)
			}
			logger.FromContext(ctx).Infow("imported catalog", "numAssets", len(assets))
			return nil
		},
	}
	flags.register(c)
	cobra.CheckErr(c.MarkFlagRequired("assets-file"))
	cobra.CheckErr(c.MarkFlagRequired("prices-file"))

	return c
}

func main() {
	root := &cobra.Command{Use: "etfbuilder", Short: "portfolio analytics over a fixed asset catalog"}
	root.AddCommand(calculateCmd())
	root.AddCommand(assetsCmd())
	root.AddCommand(importCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
