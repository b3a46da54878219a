// Command filteredlog prints every row of the personal-data users table
// through the redacting user_data logger.
package main

import (
	"context"
	"os"
	"time"

	"github.com/Amadavid/alx-backend-user-data/internal/config"
	"github.com/Amadavid/alx-backend-user-data/internal/db"
	"github.com/Amadavid/alx-backend-user-data/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", map[string]any{"error": err.Error()})
	}
	logger.SetOutput(os.Stderr, cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pd := cfg.PersonalData
	conn, err := db.OpenPersonalData(ctx, pd.Username, pd.Password, pd.Host, pd.Name)
	if err != nil {
		logger.Fatal("failed to connect to personal data db", map[string]any{"error": err.Error()})
	}
	defer conn.Close()

	userData := logger.NewUserDataLogger(os.Stderr)

	n, err := db.EachRow(ctx, conn, "SELECT * FROM users", func(line string) {
		userData.Info().Msg(line)
	})
	if err != nil {
		logger.Fatal("failed to read users", map[string]any{"error": err.Error()})
	}

	logger.Info("users logged", map[string]any{"rows": n})
}
