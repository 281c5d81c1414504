// cmd/fx/chatfx/init.go
package chatfx

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/fx"

	"lankatrip/internal/repositories"
	"lankatrip/internal/services"
	"lankatrip/pkg/memcache"
	"lankatrip/pkg/metrics"
	"lankatrip/pkg/utils"
)

var Module = fx.Provide(
	ProvideAIClient,
	ProvideChatSessions,
	ProvideChatService,
)

// AIConfig holds configuration for the model provider
type AIConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideAIClient creates a chat/embedding client based on environment variables
func ProvideAIClient() (utils.AIClientInterface, error) {
	config := getAIConfig()

	log.Printf("Initializing %s AI client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

func ProvideChatSessions() memcache.ChatSessionStore {
	return memcache.NewChatSessions(30*time.Minute, 10)
}

func ProvideChatService(
	aiClient utils.AIClientInterface,
	embeddingRepo repositories.IAttractionEmbeddingRepository,
	attractionRepo repositories.AttractionRepository,
	sessions memcache.ChatSessionStore,
	registry *metrics.Registry,
) services.ChatServiceInterface {
	return services.NewChatService(aiClient, embeddingRepo, attractionRepo, sessions, registry)
}

// getAIConfig reads configuration from environment variables
func getAIConfig() AIConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return AIConfig{
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
