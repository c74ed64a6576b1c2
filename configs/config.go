package configs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken      string
	DBDriver      string
	DBSource      string
	Port          string
	WebAppBaseURL string
	AdminIDs      []int64
	SeedOnStart   bool
}

func LoadConfig() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	return &Config{
		BotToken:      os.Getenv("BOT_TOKEN"),
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBSource:      getEnv("DB_SOURCE", "foodbot.db"),
		Port:          getEnv("PORT", "8080"),
		WebAppBaseURL: getEnv("WEBAPP_BASE_URL", "https://example.com"),
		AdminIDs:      parseAdminIDs(os.Getenv("ADMIN_IDS")),
		SeedOnStart:   getEnv("SEED_ON_START", "") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func parseAdminIDs(raw string) []int64 {
	if raw == "" {
		return nil
	}
	var out []int64
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			log.Printf("ignoring bad admin id %q", part)
			continue
		}
		out = append(out, id)
	}
	return out
}
