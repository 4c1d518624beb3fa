package main

import (
	"Storefront/config"
	"Storefront/pkg/database"
	"Storefront/pkg/log"
	"Storefront/pkg/server"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg, err := config.New(path)
	if err != nil {
		log.L.Fatal("load config", zap.String("path", path), zap.Error(err))
	}
	log.SetDebug(cfg.Debug())

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "storefront http api",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					if err := cfg.Validate(); err != nil {
						return fmt.Errorf("invalid config: %w", err)
					}
					appProvider, cleanup, err := InitServer(cfg)
					if err != nil {
						return err
					}
					defer cleanup()
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update database tables",
				Action: func(ctx *cli.Context) error {
					if err := cfg.ValidateDatabase(); err != nil {
						return fmt.Errorf("invalid config: %w", err)
					}
					db, cleanup, err := database.ProvideDB(cfg)
					if err != nil {
						return err
					}
					defer cleanup()
					return database.Migrate(db)
				},
			},
			{
				Name:  "seed",
				Usage: "migrate and load default settings, catalog and sample reviews",
				Action: func(ctx *cli.Context) error {
					if err := cfg.ValidateDatabase(); err != nil {
						return fmt.Errorf("invalid config: %w", err)
					}
					seeder, cleanup, err := InitSeeder(cfg)
					if err != nil {
						return err
					}
					defer cleanup()
					if err := database.Migrate(seeder.DB); err != nil {
						return err
					}
					return seeder.Seed(ctx.Context)
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("api-server exited", zap.Error(err))
	}
}
