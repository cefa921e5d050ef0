package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"newslens/internal/config"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the NewsAPI key",
}

var keySetCmd = &cobra.Command{
	Use:   "set <api-key>",
	Short: "Store the NewsAPI key",
	Long: `Write the key to the .env file in the config directory. The NEWS_API_KEY
environment variable, when set, takes precedence over the stored key.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SaveAPIKey(args[0]); err != nil {
			return err
		}
		fmt.Println("API key saved.")
		return nil
	},
}

var keyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the configured key, masked",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := config.LoadAPIKey()
		if errors.Is(err, config.ErrNoAPIKey) {
			fmt.Println("No API key configured.")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Println(maskKey(key))
		return nil
	},
}

func init() {
	keyCmd.AddCommand(keySetCmd)
	keyCmd.AddCommand(keyShowCmd)
}

// maskKey hides the middle of a key, keeping just enough to recognize it.
func maskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
