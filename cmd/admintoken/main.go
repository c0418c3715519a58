// Command admintoken prints a bearer token for the admin API, signed with
// ADMIN_JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/auth"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/config"
)

func main() {
	ttl := flag.Duration("ttl", 0, "token lifetime; defaults to ADMIN_TOKEN_TTL")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if !cfg.Admin.Enabled() {
		log.Fatal("ADMIN_JWT_SECRET is not set")
	}

	lifetime := cfg.Admin.TokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, expiresAt, err := auth.NewJWTService(cfg.Admin.JWTSecret, lifetime).GenerateToken(auth.AdminSubject)
	if err != nil {
		log.Fatalf("failed to sign token: %v", err)
	}

	fmt.Println(token)
	log.Printf("expires at %s", expiresAt.UTC().Format(time.RFC3339))
}
