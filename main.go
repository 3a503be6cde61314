package main

import (
	"log"
	"os"
	"strings"

	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/kwlam/faantally/internal/auth"
	dbpkg "github.com/kwlam/faantally/internal/db"
	"github.com/kwlam/faantally/internal/game"
	"github.com/kwlam/faantally/internal/history"
	"github.com/kwlam/faantally/internal/scoring"
	"github.com/kwlam/faantally/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment directly")
	}

	db := dbpkg.Open(env("DB_PATH", "faantally.db"))
	dbpkg.AutoMigrate(db, &auth.User{}, &auth.Session{}, &history.Match{}, &storage.Entry{})

	table := scoring.TableByName(env("PAYOUT_TABLE", "classic"))
	log.Printf("payout table: %s (base $%d, cap $%d from %d faan)", table.Name, table.Base, table.Cap, table.CapThreshold)

	store := storage.NewDBStore(db)
	games := game.NewService(store, table)
	games.Load()

	authRepo := auth.NewRepository(db)
	histSvc := history.NewService(history.NewRepo(db), games)

	r := gin.Default()
	// Configure explicit trusted proxies to avoid gin's trust-all warning.
	// Default trusts only loopback; override via TRUSTED_PROXIES (comma-separated CIDRs/IPs)
	tp := strings.Split(env("TRUSTED_PROXIES", "127.0.0.1,::1"), ",")
	for i := range tp {
		tp[i] = strings.TrimSpace(tp[i])
	}
	if err := r.SetTrustedProxies(tp); err != nil {
		log.Fatalf("trusted proxies: %v", err)
	}

	// Every auth transition wipes the local game slots: a new identity
	// starts without the previous player's half-played match.
	auth.RegisterRoutes(r, authRepo, games.Reset)

	scoring.RegisterRoutes(r, table)
	game.RegisterRoutes(r, games)
	storage.RegisterRoutes(r, store)
	history.RegisterRoutes(r, histSvc, func(c *gin.Context) (string, bool) {
		u, ok := auth.CurrentUser(c, authRepo)
		if !ok {
			return "", false
		}
		return u.ID, true
	})

	addr := env("ADDR", ":8080")
	log.Printf("listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
