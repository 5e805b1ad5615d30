package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"
	_ "time/tzdata" // SCHEDULER_TIMEZONE on images without zoneinfo

	"github.com/aussiebroadwan/huddle/internal/scheduler/app"
	"github.com/aussiebroadwan/huddle/pkg/jwtx"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// A missing .env file is fine.
	_ = godotenv.Load()

	cliApp := &cli.App{
		Name:    "scheduler",
		Usage:   "Schedule events in shared household rooms and notify attendees.",
		Version: app.BuildVersion,
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			seedCommand(),
			keygenCommand(),
			tokenCommand(),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		slog.Error("scheduler failed", "error", err)
		os.Exit(1)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API.",
		Action: func(c *cli.Context) error {
			application, err := app.New(app.LoadConfig())
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			return application.Run()
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply database migrations and exit.",
		Action: func(c *cli.Context) error {
			return app.Migrate(app.LoadConfig())
		},
	}
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Load homes, rooms and people from a JSON file.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Required: true, Usage: "households JSON file"},
		},
		Action: func(c *cli.Context) error {
			return app.Seed(c.Context, app.LoadConfig(), c.String("file"))
		},
	}
}

func keygenCommand() *cli.Command {
	return &cli.Command{
		Name:  "keygen",
		Usage: "Generate an Ed25519 signing key and matching JWKS for local development.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "kid", Value: "dev-key", Usage: "key id"},
			&cli.StringFlag{Name: "key", Value: "dev-key.pem", Usage: "private key output path"},
			&cli.StringFlag{Name: "jwks", Value: "jwks.json", Usage: "public JWKS output path, use as AUTH_JWKS_FILE"},
		},
		Action: func(c *cli.Context) error {
			pemKey, err := jwtx.GenerateEd25519PEM()
			if err != nil {
				return err
			}
			signer, err := jwtx.NewSignerEdDSA(c.String("kid"), pemKey)
			if err != nil {
				return err
			}

			jwks, err := json.MarshalIndent(jwtx.JWKS{Keys: []jwtx.JWK{signer.PublicJWK()}}, "", "  ")
			if err != nil {
				return err
			}

			if err := os.WriteFile(c.String("key"), pemKey, 0o600); err != nil {
				return fmt.Errorf("write key: %w", err)
			}
			if err := os.WriteFile(c.String("jwks"), jwks, 0o644); err != nil {
				return fmt.Errorf("write jwks: %w", err)
			}

			fmt.Printf("wrote %s and %s\n", c.String("key"), c.String("jwks"))
			return nil
		},
	}
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Mint an access token with a keygen key for local development.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "kid", Value: "dev-key", Usage: "key id"},
			&cli.StringFlag{Name: "key", Value: "dev-key.pem", Usage: "private key path"},
			&cli.StringFlag{Name: "sub", Required: true, Usage: "person id"},
			&cli.StringSliceFlag{
				Name:  "scope",
				Value: cli.NewStringSlice("events:read", "events:write", "profile:write"),
			},
			&cli.DurationFlag{Name: "ttl", Value: time.Hour},
		},
		Action: func(c *cli.Context) error {
			cfg := app.LoadConfig()

			pemKey, err := os.ReadFile(c.String("key"))
			if err != nil {
				return fmt.Errorf("read key: %w", err)
			}
			signer, err := jwtx.NewSignerEdDSA(c.String("kid"), pemKey)
			if err != nil {
				return err
			}

			claims := jwtx.NewAccessClaims(
				c.String("sub"),
				c.StringSlice("scope"),
				c.Duration("ttl"),
				cfg.Issuer,
				cfg.Audience,
				time.Now(),
			)
			token, err := signer.Sign(claims)
			if err != nil {
				return err
			}

			fmt.Println(token)
			return nil
		},
	}
}
