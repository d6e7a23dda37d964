package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/DrGermanius/backoffice/internal"
	"github.com/DrGermanius/backoffice/internal/migrations"
	"github.com/DrGermanius/backoffice/internal/model"
	"github.com/DrGermanius/backoffice/internal/payout"
	"github.com/DrGermanius/backoffice/internal/vault"
)

var dbFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "db",
		Usage:  "postgres connection path",
		EnvVar: internal.DatabaseURI,
		Value:  internal.DefaultDatabaseURI(),
	},
}

var reconcileFlags = []cli.Flag{
	cli.StringFlag{
		Name:     "org",
		Usage:    "organization to reconcile",
		Required: true,
	},
	cli.StringFlag{
		Name:   "provider",
		Usage:  "payout provider address",
		EnvVar: internal.PayoutProviderAddress,
		Value:  "https://api.xendit.co",
	},
	cli.StringFlag{
		Name:   "provider-key",
		Usage:  "payout provider secret key",
		EnvVar: internal.PayoutProviderSecretKey,
	},
	cli.StringFlag{
		Name:   "secret",
		Usage:  "payment info secret",
		EnvVar: internal.PaymentInfoSecret,
	},
	cli.DurationFlag{
		Name:  "timeout",
		Usage: "payout provider request timeout",
		Value: 30 * time.Second,
	},
}

var tokenFlags = []cli.Flag{
	cli.StringFlag{Name: "user", Required: true, Usage: "user id (sub claim)"},
	cli.StringFlag{Name: "org", Required: true, Usage: "organization id"},
	cli.StringFlag{Name: "role", Value: model.RoleMember, Usage: "admin or member"},
	cli.StringFlag{Name: "jwt-secret", EnvVar: internal.JWTSecret, Usage: "HS256 secret"},
}

func main() {
	z, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	logger := z.Sugar()

	app := cli.NewApp()
	app.Name = "backofficectl"
	app.Usage = "Operate the withdrawal backoffice"
	app.Commands = []cli.Command{
		{
			Name:  "migrate",
			Usage: "Database migrations",
			Flags: dbFlags,
			Subcommands: []cli.Command{
				{
					Name:  "up",
					Usage: "migrates the database up",
					Flags: dbFlags,
					Action: withDB(func(c *cli.Context, db *sql.DB) error {
						return migrations.Up(db)
					}),
				},
				{
					Name:  "down",
					Usage: "rolls back the latest migration",
					Flags: dbFlags,
					Action: withDB(func(c *cli.Context, db *sql.DB) error {
						return migrations.Down(db)
					}),
				},
				{
					Name:  "status",
					Usage: "prints the migration status",
					Flags: dbFlags,
					Action: withDB(func(c *cli.Context, db *sql.DB) error {
						if err := migrations.Status(db); err != nil {
							return err
						}
						version, err := migrations.Version(db)
						if err != nil {
							return err
						}
						fmt.Printf("current version: %d\n", version)
						return nil
					}),
				},
			},
		},
		{
			Name:  "reconcile",
			Usage: "compares in-flight withdrawals of an organization with the payout provider",
			Flags: append(reconcileFlags, dbFlags...),
			Action: withDB(func(c *cli.Context, db *sql.DB) error {
				v, err := vault.New(c.String("secret"))
				if err != nil {
					return err
				}

				repo := &internal.Repository{Conn: db, Logger: logger}
				provider := payout.NewClient(c.String("provider"), c.String("provider-key"), c.Duration("timeout"), logger)
				service := internal.NewService(repo, provider, v, logger)

				report, err := service.Reconcile(context.Background(), c.String("org"))
				if err != nil {
					return err
				}
				return printJSON(report)
			}),
		},
		{
			Name:  "token",
			Usage: "signs a bearer token for local testing",
			Flags: tokenFlags,
			Action: func(c *cli.Context) error {
				secret := c.String("jwt-secret")
				if secret == "" {
					return cli.NewExitError("jwt secret is required", 22)
				}
				token, err := internal.NewToken(model.AuthContext{
					UserID:         c.String("user"),
					OrganizationID: c.String("org"),
					Role:           c.String("role"),
				}, []byte(secret))
				if err != nil {
					return err
				}
				fmt.Println(token)
				return nil
			},
		},
	}

	if err = app.Run(os.Args); err != nil {
		if len(os.Args) > 1 {
			_, _ = fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func withDB(action func(*cli.Context, *sql.DB) error) func(*cli.Context) error {
	return func(c *cli.Context) (err error) {
		db, err := sql.Open("pgx", c.String("db"))
		if err != nil {
			return errors.Wrap(err, "could not open database")
		}
		defer func() {
			if dbErr := db.Close(); dbErr != nil && err == nil {
				err = dbErr
			}
		}()
		return action(c, db)
	}
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
