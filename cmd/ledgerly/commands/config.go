package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ledgerly-io/ledgerly-go/v2/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration persisted to disk.
type Config struct {
	APIKey  string `json:"api_key,omitempty"  yaml:"api_key,omitempty"`
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Output  string `json:"output,omitempty"   yaml:"output,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage Ledgerly CLI configuration including credentials and settings",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with credentials redacted",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			display := *config
			if display.APIKey != "" {
				display.APIKey = "[REDACTED]"
			}

			handled, err := encodeOutput(display)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("API Key", formatValue(display.APIKey))
			_ = table.Append("Base URL", formatValue(display.BaseURL))
			_ = table.Append("Output", formatValue(display.Output))

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a specific configuration value (api_key, base_url, output)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if err := setConfigValue(config, args[0], args[1]); err != nil {
				return err
			}

			if err := saveConfig(config); err != nil {
				return err
			}

			fmt.Printf("Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a specific configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if err := setConfigValue(config, args[0], ""); err != nil {
				return err
			}

			if err := saveConfig(config); err != nil {
				return err
			}

			fmt.Printf("Unset %s\n", args[0])

			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear configuration",
		Long:  "Remove all configuration settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile := viper.ConfigFileUsed()
			if configFile == "" {
				configFile = defaultConfigFile()
			}

			err := os.Remove(configFile)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("removing config file: %w", err)
			}

			fmt.Println("Cleared all configuration")

			return nil
		},
	}
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case "api_key":
		config.APIKey = value
	case "base_url":
		config.BaseURL = value
	case "output":
		config.Output = value
	default:
		return fmt.Errorf("%w: %s", errUnknownConfigKey, key)
	}

	return nil
}

var errUnknownConfigKey = fmt.Errorf("unknown configuration key")

func loadConfig() *Config {
	return &Config{
		APIKey:  viper.GetString("api_key"),
		BaseURL: viper.GetString("base_url"),
		Output:  viper.GetString("output"),
	}
}

func defaultConfigFile() string {
	home, _ := os.UserHomeDir()

	return filepath.Join(home, ".ledgerly", "config.yml")
}

func saveConfig(config *Config) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("getting user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".ledgerly")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
