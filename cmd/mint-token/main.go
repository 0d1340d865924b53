// mint-token issues a signed bearer token for the gated GET /reports route.
//
// The signing secret defaults to JWT_SECRET (from the environment or a local
// .env file), matching what the server verifies against.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/voiceforher/report-intake/internal/config"
	"github.com/voiceforher/report-intake/internal/dto"
	"github.com/voiceforher/report-intake/internal/services"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	_ = godotenv.Load()
	cfg := config.Load()

	var subject, secret string
	var ttl time.Duration
	var asJSON bool

	flagSet := pflag.NewFlagSet("mint-token", pflag.ContinueOnError)
	flagSet.StringVar(&subject, "subject", "", "identity recorded in the token's sub claim (required)")
	flagSet.StringVar(&secret, "secret", cfg.JWTSecret, "HMAC signing secret (default: JWT_SECRET)")
	flagSet.DurationVar(&ttl, "ttl", cfg.JWTTokenTTL, "token lifetime")
	flagSet.BoolVar(&asJSON, "json", false, "print token, subject and expiry as JSON")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if ttl <= 0 {
		return fmt.Errorf("--ttl must be positive, got %s", ttl)
	}

	token, expiresAt, err := services.NewTokenService(secret).Issue(subject, ttl)
	if err != nil {
		return err
	}

	if !asJSON {
		_, err = fmt.Fprintln(out, token)
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.TokenResponse{
		Token:     token,
		Subject:   subject,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
}
