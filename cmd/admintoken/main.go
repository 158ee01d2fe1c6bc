// Command admintoken issues admin tokens and password hashes for operators.
//
//	admintoken -hash 's3cret'        prints a bcrypt hash for ADMIN_PASSWORD_HASH
//	admintoken -subject ops -ttl 1h  prints a token signed with ADMIN_JWT_SECRET
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"explorewithme/config"
	authadapter "explorewithme/internal/adapters/auth"
	"explorewithme/internal/domain"
)

func main() {
	password := flag.String("hash", "", "print the bcrypt hash of this password and exit")
	cost := flag.Int("cost", 0, "bcrypt cost (default bcrypt.DefaultCost)")
	subject := flag.String("subject", "", "token subject (default ADMIN_USERNAME)")
	ttl := flag.Duration("ttl", 0, "token lifetime (default ADMIN_TOKEN_TTL)")
	flag.Parse()

	if *password != "" {
		hash, err := authadapter.NewBcryptHasher(*cost).Hash(*password)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		fmt.Println(hash)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.AdminAuthEnabled() {
		fmt.Fprintln(os.Stderr, "ADMIN_JWT_SECRET is not set")
		os.Exit(1)
	}
	if *subject == "" {
		*subject = cfg.Admin.Username
	}
	expiry := cfg.Admin.TokenTTL
	if *ttl > 0 {
		expiry = *ttl
	}

	token, err := authadapter.NewJWTIssuer(cfg.Admin.JWTSecret).Issue(*subject, []string{domain.RoleAdmin}, expiry)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}
	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires %s\n", time.Now().Add(expiry).Format(domain.DateTimeLayout))
}
