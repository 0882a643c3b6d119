// services/generator.go - AI-assisted teaser generation
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sync"
	"time"
)

// GeneratedTeaser is the draft payload the model is asked to produce.
type GeneratedTeaser struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Solution    string `json:"solution"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type generatorClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

var (
	generator     *generatorClient
	generatorOnce sync.Once
)

const generatorSystemPrompt = `You are a brain teaser creator. Create a %s difficulty brain teaser based on the user's prompt.
The response should be in JSON format with the following structure:
{
  "title": "The title of the brain teaser",
  "description": "The full description of the brain teaser, including any necessary context or rules",
  "solution": "The solution to the brain teaser with a clear explanation"
}`

func getGenerator() *generatorClient {
	generatorOnce.Do(func() {
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			log.Println("Warning: OPENAI_API_KEY is not set. AI features will be disabled.")
			return
		}

		baseURL := os.Getenv("OPENAI_BASE_URL")
		if baseURL == "" {
			baseURL = "https://api.openai.com/v1"
		}
		model := os.Getenv("OPENAI_MODEL")
		if model == "" {
			model = "gpt-4"
		}

		generator = &generatorClient{
			apiKey:  apiKey,
			baseURL: baseURL,
			model:   model,
			httpClient: &http.Client{
				Timeout: 60 * time.Second,
			},
		}
	})
	return generator
}

// GeneratorEnabled reports whether AI generation is configured.
func GeneratorEnabled() bool {
	return getGenerator() != nil
}

// GenerateTeaser asks the model for a teaser draft at the given difficulty.
func GenerateTeaser(ctx context.Context, prompt, difficulty string) (*GeneratedTeaser, error) {
	client := getGenerator()
	if client == nil {
		return nil, fmt.Errorf("teaser generator is not configured")
	}

	req := chatRequest{
		Model: client.model,
		Messages: []chatMessage{
			{Role: "system", Content: fmt.Sprintf(generatorSystemPrompt, difficulty)},
			{Role: "user", Content: prompt},
		},
		Temperature:    0.7,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", client.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+client.apiKey)

	resp, err := client.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("Generator API returned status %d: %s", resp.StatusCode, string(respBody))
		return nil, fmt.Errorf("completion API error: status %d", resp.StatusCode)
	}

	var completion chatResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if completion.Error != nil {
		return nil, fmt.Errorf("completion API error: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("no choices in completion response")
	}

	var teaser GeneratedTeaser
	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), &teaser); err != nil {
		return nil, fmt.Errorf("model returned malformed teaser JSON: %w", err)
	}
	if teaser.Title == "" || teaser.Description == "" || teaser.Solution == "" {
		return nil, fmt.Errorf("model returned an incomplete teaser")
	}

	return &teaser, nil
}
