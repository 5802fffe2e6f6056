package factory

import (
	"fmt"
	"os"

	"github.com/harshil12345000/certifyr-sub001/pkg/llm"
	"github.com/harshil12345000/certifyr-sub001/pkg/llm/huggingface"
	"github.com/harshil12345000/certifyr-sub001/pkg/llm/ollama"
)

func NewLLMProvider(providerType, modelName, baseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "huggingface":
		return huggingface.NewHuggingFaceProvider(os.Getenv("HF_API_KEY"), baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
