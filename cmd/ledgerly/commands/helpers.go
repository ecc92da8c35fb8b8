package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ledgerly-io/ledgerly-go/v2/internal/constants"
	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerclient"
	"github.com/ledgerly-io/ledgerly-go/v2/pkg/ledgerly"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// createClient builds an SDK client from the effective CLI configuration.
func createClient() (ledgerly.Client, error) {
	apiKey := viper.GetString("api_key")
	if apiKey == "" {
		return nil, fmt.Errorf("%w, use 'ledgerly login' or --api-key", ledgerly.ErrAPIKeyRequired)
	}

	config := &ledgerly.Config{
		APIKey:  apiKey,
		BaseURL: viper.GetString("base_url"),
	}

	client, err := ledgerclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// encodeOutput writes value as JSON or YAML when one of those formats is
// selected, reporting whether it handled the output.
func encodeOutput(value interface{}) (bool, error) {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(value); err != nil {
			return true, fmt.Errorf("encoding JSON: %w", err)
		}

		return true, nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		if err := encoder.Encode(value); err != nil {
			return true, fmt.Errorf("encoding YAML: %w", err)
		}

		return true, nil
	default:
		return false, nil
	}
}

// listParams builds query parameters from the common list flags.
func listParams(limit, offset int, filters map[string]string) *ledgerly.QueryParams {
	params := ledgerly.NewQueryParams()
	params.Limit = limit
	params.Offset = offset

	for field, value := range filters {
		if value != "" {
			if params.Filter == nil {
				params.Filter = make(map[string]string)
			}

			params.Filter[field] = value
		}
	}

	return params
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}

	return t.Format(time.RFC3339)
}

func formatValue(value string) string {
	if value == "" {
		return "-"
	}

	return value
}

// formatAmount renders a minor-unit amount with its currency, e.g. 1999 USD
// as "19.99 USD".
func formatAmount(amount int64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%d", amount)
	}

	return fmt.Sprintf("%d.%02d %s", amount/100, amount%100, currency)
}

func pageFooter(collection *ledgerly.Collection) {
	if collection.HasMore() {
		fmt.Printf("\nShowing %d of %d. Use --offset and --limit to page.\n",
			collection.Offset+len(collection.Items), collection.Total)
	}
}
