// Command admin manages admin panel accounts and secrets.
//
//	admin -username root -password 's3cret-pass'
//	admin -gen-secret
package main

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"terea-store/internal/config"
	"terea-store/internal/db"
	"terea-store/internal/logger"
	"terea-store/internal/user"

	"go.uber.org/zap"
)

const secretBytes = 32

var openDBFunc = db.NewDatabase

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.L().Fatal("admin command failed", zap.Error(err))
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	fs.SetOutput(out)
	username := fs.String("username", "", "admin username to create")
	password := fs.String("password", "", "password for the new admin")
	genSecret := fs.Bool("gen-secret", false, "print a random URL-safe secret for JWT_SECRET and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *genSecret {
		secret, err := generateSecret(secretBytes)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, secret)
		return err
	}

	if *username == "" || *password == "" {
		return errors.New("both -username and -password are required")
	}

	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv, cfg.LogLevel)
	defer logger.Sync()

	database, err := openDBFunc(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	return createAdmin(context.Background(), database, cfg, *username, *password, out)
}

func createAdmin(ctx context.Context, database *sql.DB, cfg *config.Config, username, password string, out io.Writer) error {
	svc := user.NewService(user.NewRepository(database), cfg.JWTSecret, cfg.AdminTokenTTL)

	u, err := svc.CreateAdmin(ctx, username, password)
	if err != nil {
		return fmt.Errorf("create admin %q: %w", username, err)
	}

	_, err = fmt.Fprintf(out, "admin user %q created (id=%d)\n", u.Username, u.ID)
	return err
}

// generateSecret returns n random bytes encoded as unpadded URL-safe base64.
func generateSecret(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
