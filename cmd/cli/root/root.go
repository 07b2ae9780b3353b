package root

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/quiethours/momentswap/internal/config"
	"github.com/quiethours/momentswap/internal/db"
)

// Exported RootCmd
var RootCmd = &cobra.Command{
	Use:   "momentswap",
	Short: "Moment Swap admin CLI",
	Long:  "Command line interface for seeding and inspecting the Moment Swap database",
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// GetRoot returns the RootCmd for command registration.
func GetRoot() *cobra.Command {
	return RootCmd
}

// OpenDB connects to the database using the same env config as the server.
func OpenDB() (*sql.DB, error) {
	_ = godotenv.Load()
	cfg := config.Load()
	return db.Connect(
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBUser,
		cfg.DBPass,
		cfg.DBMaxOpenConns,
		cfg.DBMaxIdleConns,
	)
}
