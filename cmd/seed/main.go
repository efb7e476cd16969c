// Command seed creates a development user and session so the locale
// detection path can be exercised against a local stack.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"contra/internal/auth"
	"contra/internal/config"
	"contra/internal/database"
	redisx "contra/internal/redis"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}
	defer db.Close()

	redisClient, err := redisx.New(cfg.RedisURL)
	if err != nil {
		log.Fatalf("redis error: %v", err)
	}
	defer redisClient.Close()

	users := auth.NewUserRepository(db)

	email := "dev@example.com"
	user, err := users.FindByEmail(ctx, email)
	if err != nil {
		log.Fatalf("user lookup failed: %v", err)
	}
	if user == nil {
		name := "Dev User"
		user, err = users.Create(ctx, &name, email)
		if err != nil {
			log.Fatalf("user create failed: %v", err)
		}
		log.Printf("created user %s (%s)", user.ID, email)
	}

	sessions := &auth.SessionStore{Redis: redisClient}
	sess := auth.Session{
		ID:        auth.NewSessionID(),
		UserID:    user.ID,
		Role:      user.Role,
		LoginTime: time.Now(),
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}
	if err := sessions.Create(ctx, sess); err != nil {
		log.Fatalf("session create failed: %v", err)
	}

	log.Printf("session ready: set cookie %s=%s", auth.SessionCookieName, sess.ID)
}
