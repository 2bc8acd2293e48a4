package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/astralfront/supremacy/internal/client"
)

var (
	cfg       *Config
	apiClient *client.Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "supremacy",
		Short: "CLI tool for the galactic strategy game API",
		Long: `supremacy is a CLI tool for interacting with the galactic strategy
game JSON API.

It supports account management, token refresh, and game operations.
Issued tokens are stored on disk and rotated automatically when the
access token expires.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			clientID, err := cfg.ResolveClientID()
			if err != nil {
				return err
			}

			apiClient = client.New(client.Config{
				BaseURL:  cfg.ServerURL,
				ClientID: clientID,
				Tokens:   newFileTokenStore(cfg.TokenFile),
			})
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: SUPREMACY_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.ClientID, "client-id", cfg.ClientID, "Client ID (env: SUPREMACY_CLIENT_ID)")
	rootCmd.PersistentFlags().StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "Token file path (env: SUPREMACY_TOKEN_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
