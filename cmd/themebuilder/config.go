package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/themebuilder/internal/config"
	"github.com/thatcatcamp/themebuilder/internal/db"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage Themebuilder configuration",
	Long:  "View and modify Themebuilder configuration values",
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			exitWithError(err)
		}

		value := config.GetString(args[0])
		fmt.Println(value)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			exitWithError(err)
		}

		if err := config.Set(args[0], args[1]); err != nil {
			exitWithError(fmt.Errorf("setting config: %w", err))
		}

		success("Set %s = %s\n", args[0], args[1])
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			exitWithError(err)
		}

		all := config.GetAll()
		keys := make([]string, 0, len(all))
		for key := range all {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("%s: %v\n", key, all[key])
		}
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

// initConfig loads .env and initializes the configuration system
func initConfig() error {
	// A missing .env is normal
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	configPath := os.Getenv("THEMEBUILDER_CONFIG")
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(home, ".themebuilder", "config.yaml")
	}

	return config.InitConfig(configPath)
}

// initSystemDB loads config and opens the theme library database
func initSystemDB() error {
	if err := initConfig(); err != nil {
		return err
	}

	dbType := config.GetString("database.type")
	dbPath := config.GetString("database.path")

	return db.InitDB(dbType, dbPath)
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
)

// exitWithError prints "Error: ..." to stderr and exits 1
func exitWithError(err error) {
	errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func success(format string, a ...interface{}) {
	successColor.Printf(format, a...)
}

func warn(format string, a ...interface{}) {
	warnColor.Fprintf(os.Stderr, format, a...)
}
