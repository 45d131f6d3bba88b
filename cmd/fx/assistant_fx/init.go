package assistant_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"easytrip/pkg/utils"
)

var Module = fx.Provide(
	ProvideAssistantClient)

// AssistantConfig holds configuration for assistant clients
type AssistantConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideAssistantClient creates an assistant client based on environment variables
func ProvideAssistantClient() (utils.AssistantClientInterface, error) {
	config := getAssistantConfig()

	log.Printf("Initializing %s assistant client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIAssistantClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiAssistantClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported assistant provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

func getAssistantConfig() AssistantConfig {
	provider := getEnvWithDefault("ASSISTANT_PROVIDER", "openai")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
	default:
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
	}

	if apiKey == "" {
		log.Fatalf("Missing API key for assistant provider: %s", provider)
	}

	return AssistantConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
