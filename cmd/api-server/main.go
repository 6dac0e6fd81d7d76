package main

import (
	"LoveNote/config"
	"LoveNote/pkg/database"
	"LoveNote/pkg/log"
	"LoveNote/pkg/push"
	"LoveNote/pkg/server"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func loadConfig() *config.Config {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.SetDebug(cfg.Debug())
	return cfg
}

func main() {
	defer log.Sync()

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "LoveNote api server",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server and journal reminder",
				Action: func(ctx *cli.Context) error {
					appProvider, err := InitServer(loadConfig())
					if err != nil {
						return err
					}
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "remind",
				Usage: "run one journal reminder sweep",
				Flags: []cli.Flag{
					&cli.TimestampFlag{
						Name:     "at",
						Usage:    "sweep as if the clock showed this UTC time",
						Layout:   "2006-01-02T15:04",
						Timezone: time.UTC,
					},
				},
				Action: func(ctx *cli.Context) error {
					appProvider, err := InitServer(loadConfig())
					if err != nil {
						return err
					}
					now := time.Now()
					if at := ctx.Timestamp("at"); at != nil {
						now = *at
					}
					report, err := appProvider.Reminder.Sweep(ctx.Context, now)
					if err != nil {
						return err
					}
					return json.NewEncoder(os.Stdout).Encode(report)
				},
			},
			{
				Name:  "migrate",
				Usage: "apply database migrations",
				Action: func(ctx *cli.Context) error {
					db, err := database.NewDB(loadConfig())
					if err != nil {
						return err
					}
					return database.Migrate(ctx.Context, db)
				},
			},
			{
				Name:  "vapid",
				Usage: "generate a VAPID key pair for web push",
				Action: func(ctx *cli.Context) error {
					privateKey, publicKey, err := push.GenerateVAPIDKeys()
					if err != nil {
						return err
					}
					fmt.Printf("VAPID_PUBLIC_KEY=%s\n", publicKey)
					fmt.Printf("VAPID_PRIVATE_KEY=%s\n", privateKey)
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to run api-server", zap.Error(err))
	}
}
