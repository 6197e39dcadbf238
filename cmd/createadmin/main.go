// Command createadmin bootstraps the initial administrator account. It
// replaces any existing account with the same username and always stores a
// bcrypt hash; the plaintext never touches the database.
package main

import (
	"context"
	"flag"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/epms/payroll-system/internal/core/auth"
	"github.com/epms/payroll-system/internal/core/domain"
	"github.com/epms/payroll-system/internal/infrastructure/config"
	mongodb "github.com/epms/payroll-system/internal/infrastructure/db/mongo"
	"github.com/epms/payroll-system/pkg/logger"
)

func main() {
	username := flag.String("username", "admin", "admin username")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	if *password == "" {
		log.Fatal().Msg("-password is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}

	hasher := auth.NewHasher(cfg.BcryptCost)
	hash, err := hasher.Hash(*password)
	if err != nil {
		log.Fatal().Err(err).Msg("password hashing failed")
	}

	// Replace any previous account with the same username.
	users := db.Collection("users")
	if _, err := users.DeleteOne(ctx, bson.M{"username": *username}); err != nil {
		log.Fatal().Err(err).Msg("removing existing admin failed")
	}

	now := time.Now().UTC().Unix()
	_, err = users.InsertOne(ctx, bson.M{
		"username":      *username,
		"password_hash": hash,
		"role":          string(domain.RoleAdmin),
		"created_at":    now,
		"updated_at":    now,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("creating admin failed")
	}

	log.Info().Str("username", *username).Msg("admin account created")
}
