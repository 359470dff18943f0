package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"blogapi/internal/config"
	"blogapi/internal/db"
	"blogapi/internal/repository"
	"blogapi/internal/service"
)

func main() {
	_ = godotenv.Load()

	var (
		file  string
		reset bool
	)

	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the blog database with users, posts and comments",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			data := demoData
			if file != "" {
				loaded, err := loadSeedFile(file)
				if err != nil {
					return err
				}
				data = loaded
			}

			gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			log.Printf("Connected to %s database", cfg.DBDriver)

			if reset || cfg.ResetDB {
				log.Println("Dropping all tables...")
				if err := db.Reset(gormDB); err != nil {
					return err
				}
			}
			if err := db.Migrate(gormDB); err != nil {
				return err
			}

			authService := service.NewAuthService(repository.NewUserRepository(gormDB), cfg.BcryptCost)
			postService := service.NewPostService(repository.NewPostRepository(gormDB), false)
			commentService := service.NewCommentService(postService, repository.NewCommentRepository(gormDB), false)

			s := &seeder{auth: authService, posts: postService, comments: commentService}
			stats, err := s.run(context.Background(), data)
			if err != nil {
				return err
			}

			log.Printf("Seed completed successfully!")
			log.Printf("  - New users created: %d", stats.usersCreated)
			log.Printf("  - Existing users reused: %d", stats.usersExisting)
			log.Printf("  - Posts created: %d", stats.posts)
			log.Printf("  - Comments created: %d", stats.comments)
			return nil
		},
	}
	rootCmd.Flags().StringVarP(&file, "file", "f", "", "JSON seed file (defaults to built-in demo data)")
	rootCmd.Flags().BoolVar(&reset, "reset", false, "drop all tables before seeding")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
