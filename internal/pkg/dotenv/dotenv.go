package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const DefaultFile = ".env"

// Load подгружает переменные из файла, не перетирая уже заданные в окружении.
// Отсутствие файла не ошибка: loaded == false.
func Load(path string) (loaded bool, err error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	if err := godotenv.Load(path); err != nil {
		return false, fmt.Errorf("load %s: %w", path, err)
	}
	return true, nil
}

// OverridePort разбирает -port из args и, если он задан, перекрывает PORT.
func OverridePort(args []string) error {
	flags := flag.NewFlagSet("service", flag.ContinueOnError)
	port := flags.String("port", "", "Server port (overrides PORT environment variable)")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if *port == "" {
		return nil
	}
	if err := os.Setenv("PORT", *port); err != nil {
		return fmt.Errorf("failed to set PORT environment variable: %w", err)
	}
	return nil
}
