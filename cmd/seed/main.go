package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"matchtrack/internal/config"
	"matchtrack/internal/db"
	"matchtrack/internal/model"
	"matchtrack/internal/repository"
)

var demoPlayers = []model.Player{
	{Name: "Alice", Position: "Forward"},
	{Name: "Bruno", Position: "Goalkeeper"},
	{Name: "Chen", Position: "Midfielder"},
	{Name: "Dmitri", Position: "Defender"},
}

func main() {
	demo := flag.Bool("demo", false, "also seed demo players")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Player{},
		&model.Match{},
		&model.MatchPerformance{},
		&model.AuditEntry{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)

	if err := seedAdmin(ctx, userRepo, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	if *demo {
		playerRepo := repository.NewPlayerRepository(gormDB)
		created := seedDemoPlayers(ctx, playerRepo)
		log.Printf("Demo players created: %d", created)
	}

	log.Println("Seed completed successfully!")
}

// seedAdmin creates the bootstrap admin account unless it already exists.
func seedAdmin(ctx context.Context, repo repository.UserRepository, username, password string) error {
	existing, err := repo.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		log.Printf("Admin user %q already exists, skipping", username)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return err
	}
	admin := &model.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Admin user %q created", username)
	return nil
}

// seedDemoPlayers inserts the demo roster, skipping names already present.
func seedDemoPlayers(ctx context.Context, repo repository.PlayerRepository) int {
	created := 0
	for _, p := range demoPlayers {
		player := p
		if err := repo.Create(ctx, &player); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				log.Printf("Player %q already exists, skipping", p.Name)
				continue
			}
			log.Printf("Failed to create player %q: %v", p.Name, err)
			continue
		}
		created++
	}
	return created
}
