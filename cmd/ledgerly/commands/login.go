package commands

import (
	"context"
	"fmt"
	"syscall"

	"github.com/ledgerly-io/ledgerly-go/v2/internal/constants"
	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerclient"
	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		apiKey  string
		baseURL string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to Ledgerly",
		Long:  "Store an API key after verifying it against the Ledgerly API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				apiKey = viper.GetString("api_key")
			}

			if apiKey == "" {
				fmt.Print("API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("reading API key: %w", err)
				}

				apiKey = string(byteKey)

				fmt.Println()
			}

			if baseURL == "" {
				baseURL = viper.GetString("base_url")
			}

			client, err := ledgerclient.New(&ledgerly.Config{
				APIKey:      apiKey,
				BaseURL:     baseURL,
				HTTPTimeout: constants.ShortHTTPTimeout,
			})
			if err != nil {
				return fmt.Errorf("creating client: %w", err)
			}

			if err := verifyCredentials(client); err != nil {
				return err
			}

			config := loadConfig()
			config.APIKey = apiKey
			config.BaseURL = baseURL

			if err := saveConfig(config); err != nil {
				return err
			}

			fmt.Println("Successfully logged in")

			return nil
		},
	}

	cmd.Flags().StringVarP(&apiKey, "api-key", "k", "", "API key")
	cmd.Flags().StringVarP(&baseURL, "base-url", "u", "", "API base URL")

	return cmd
}

// verifyCredentials makes one lightweight call so a bad key fails at login
// time instead of on the first real command.
func verifyCredentials(client ledgerly.Client) error {
	params := ledgerly.NewQueryParams()
	params.Limit = 1

	_, err := client.Websites().List(context.Background(), params)
	if err != nil {
		return fmt.Errorf("verifying credentials: %w", err)
	}

	return nil
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of Ledgerly",
		Long:  "Remove the stored API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.APIKey = ""

			if err := saveConfig(config); err != nil {
				return err
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}
