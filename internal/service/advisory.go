package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

// advisoryPrompt is sent verbatim to the generator and stripped from each
// completion before display.
const advisoryPrompt = "Medical advice for reducing hospital stay: "

// FallbackAdvisories is returned whenever the external generator is
// unavailable or fails. The texts are fixed; tests depend on them verbatim.
var FallbackAdvisories = []string{
	"Stay hydrated and follow your treatment plan.",
	"Communicate openly with your healthcare team.",
	"Get adequate rest to support your recovery.",
	"Follow all medication instructions precisely.",
	"Report any new symptoms to your nurse immediately.",
}

// AdvisoryService generates free-text suggestions through an external
// chat-completions API. Generation is best-effort: any failure yields the
// static fallback list and never surfaces to the caller.
type AdvisoryService struct {
	apiKey string
	apiURL string
	client *http.Client
}

// NewAdvisoryService builds the service from the environment. A missing API
// key does not fail construction; the service simply reports unavailable
// and serves the fallback list.
func NewAdvisoryService() *AdvisoryService {
	apiKey := os.Getenv("ADVISORY_API_KEY")
	if apiKey == "" {
		if apiKeyFile := os.Getenv("ADVISORY_API_KEY_FILE"); apiKeyFile != "" {
			if data, err := os.ReadFile(apiKeyFile); err == nil {
				apiKey = strings.TrimSpace(string(data))
			}
		}
	}

	apiURL := os.Getenv("ADVISORY_API_URL")
	if apiURL == "" {
		apiURL = "https://api.deepseek.com/v1/chat/completions"
	}

	return &AdvisoryService{
		apiKey: apiKey,
		apiURL: apiURL,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Available reports whether the external generator can be invoked at all
func (s *AdvisoryService) Available() bool {
	return s.apiKey != ""
}

// advisoryMessage represents a message in the chat
type advisoryMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// advisoryRequest represents a request to the completions API
type advisoryRequest struct {
	Model       string            `json:"model"`
	Messages    []advisoryMessage `json:"messages"`
	N           int               `json:"n"`
	Temperature float64           `json:"temperature"`
}

// GenerateAdvisories requests count independent completions of the advisory
// prompt. Each completion has the repeated prompt prefix stripped and
// whitespace trimmed. On the first failure of any kind the fixed fallback
// list is returned; there are no retries.
func (s *AdvisoryService) GenerateAdvisories(ctx context.Context, count int) []string {
	if !s.Available() {
		return fallbackAdvisories()
	}

	reqBody := advisoryRequest{
		Model: "deepseek-chat",
		Messages: []advisoryMessage{
			{Role: "user", Content: advisoryPrompt},
		},
		N:           count,
		Temperature: 0.9,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		log.Printf("advisory request marshal failed: %v", err)
		return fallbackAdvisories()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		log.Printf("advisory request build failed: %v", err)
		return fallbackAdvisories()
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("advisory request failed: %v", err)
		return fallbackAdvisories()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("advisory request failed with status %d", resp.StatusCode)
		return fallbackAdvisories()
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("advisory response decode failed: %v", err)
		return fallbackAdvisories()
	}
	if len(result.Choices) == 0 {
		log.Printf("advisory response contained no choices")
		return fallbackAdvisories()
	}

	advisories := make([]string, 0, len(result.Choices))
	for _, choice := range result.Choices {
		text := strings.TrimSpace(strings.ReplaceAll(choice.Message.Content, advisoryPrompt, ""))
		if text != "" {
			advisories = append(advisories, text)
		}
	}
	if len(advisories) == 0 {
		return fallbackAdvisories()
	}
	return advisories
}

func fallbackAdvisories() []string {
	return append([]string(nil), FallbackAdvisories...)
}
