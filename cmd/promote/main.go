// Command promote sets a user's role by email address. It is used to
// bootstrap the first admin; when the user does not exist yet and --name is
// given, the account is created.
//
// Usage:
//
//	promote --email=user@example.com [--role=admin] [--name="Full Name"] [--token]
//
// Reads the same configuration as the server. With --token the command also
// prints an access token signed with AUTH_JWT_SECRET.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/BhaveshChowdary07/ptas-api/internal/adapter/postgres"
	userrepo "github.com/BhaveshChowdary07/ptas-api/internal/adapter/postgres/user"
	"github.com/BhaveshChowdary07/ptas-api/internal/app"
	"github.com/BhaveshChowdary07/ptas-api/internal/auth"
	"github.com/BhaveshChowdary07/ptas-api/internal/config"
	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/user"
)

func main() {
	email := flag.String("email", "", "email of the user to promote")
	role := flag.String("role", string(domain.UserRoleAdmin), "role to assign")
	name := flag.String("name", "", "full name; creates the user when the email is unknown")
	printToken := flag.Bool("token", false, "print an access token for the user")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=admin] [--name=\"Full Name\"] [--token]")
		os.Exit(1)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := user.NewService(logger, userrepo.New(pool), auth.NewAuthorizer(domain.DefaultPolicy()))

	u, err := svc.Promote(ctx, user.PromoteInput{Email: *email, FullName: *name, Role: *role})
	if err != nil {
		logger.Error("promote user", slog.String("email", *email), slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("User %q now has role %s.\n", u.Email, u.Role)

	if *printToken {
		jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
		token, err := jwt.GenerateAccessToken(u.ID, string(u.Role))
		if err != nil {
			logger.Error("issue token", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Println(token)
	}
}
