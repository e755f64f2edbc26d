package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/davlatbek/go-catalog/app/configs"
	"github.com/davlatbek/go-catalog/app/db/seeders"
	"github.com/davlatbek/go-catalog/app/models"
	"github.com/davlatbek/go-catalog/app/models/migrations"
	"github.com/davlatbek/go-catalog/app/repositories"
	"github.com/urfave/cli/v3"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Fill the database with demo catalog data",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := seeders.DBSeed(db); err != nil {
						return err
					}
					log.Println("✅ Seeding complete")
					return nil
				},
			},
			{
				Name:  "create-admin",
				Usage: "Create a staff account for the admin surface",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
					&cli.BoolFlag{Name: "superuser", Usage: "grant the superuser role"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}

					role := models.RoleStaff
					if c.Bool("superuser") {
						role = models.RoleSuperuser
					}

					userRepo := repositories.NewUserRepository(db)
					user := &models.User{
						Email:    c.String("email"),
						Password: c.String("password"),
						Role:     role,
					}
					if err := userRepo.Create(ctx, user); err != nil {
						return err
					}
					fmt.Printf("✅ Created %s account %s\n", role, user.Email)
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session authentication and encryption keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateAndPrintSessionKeys(); err != nil {
						return err
					}
					log.Println("✅ Key generation complete. Please copy the keys to your .env file.")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
