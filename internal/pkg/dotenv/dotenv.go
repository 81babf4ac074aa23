package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load читает .env (уже заданные переменные окружения не перетираются)
// и применяет флаги командной строки поверх: -port, -grpc-port.
func Load(args []string, filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}

	return applyFlags(args)
}

func applyFlags(args []string) error {
	fs := flag.NewFlagSet("orderdesk", flag.ContinueOnError)

	var portFlag, grpcPortFlag string
	fs.StringVar(&portFlag, "port", "", "HTTP server port (overrides PORT environment variable)")
	fs.StringVar(&grpcPortFlag, "grpc-port", "", "gRPC health port (overrides GRPC_HEALTH_PORT environment variable)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	overrides := map[string]string{
		"PORT":             portFlag,
		"GRPC_HEALTH_PORT": grpcPortFlag,
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}
