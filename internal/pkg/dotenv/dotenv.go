package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load читает .env и применяет флаг -port поверх переменной окружения PORT.
func Load() error {
	if err := godotenv.Load(); err != nil {
		return err
	}

	var portFlag string
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.Parse()

	if portFlag == "" {
		return nil
	}
	if err := os.Setenv("PORT", portFlag); err != nil {
		return fmt.Errorf("failed to set PORT environment variable: %w", err)
	}
	return nil
}
