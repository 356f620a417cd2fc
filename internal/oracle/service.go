// Package oracle is the client for the external LLM judgment service. It
// returns the model's raw text; parsing and the fail-open/fail-closed
// policies live in the pipeline, which treats this output as untrusted.
package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
	ProviderGroq   Provider = "groq"
	ProviderNone   Provider = "none"
)

const (
	openAIBaseURL = "https://api.openai.com/v1"
	groqBaseURL   = "https://api.groq.com/openai/v1"
	ollamaBaseURL = "http://localhost:11434"
)

type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

type Service struct {
	provider Provider
	apiKey   string
	model    string
	baseURL  string
	client   *http.Client
}

func NewService(provider, apiKey, model string) *Service {
	s := &Service{
		provider: Provider(provider),
		apiKey:   apiKey,
		model:    model,
		client:   &http.Client{Timeout: 120 * time.Second},
	}
	switch s.provider {
	case ProviderOpenAI:
		s.baseURL = openAIBaseURL
	case ProviderGroq:
		s.baseURL = groqBaseURL
	case ProviderOllama:
		s.baseURL = ollamaBaseURL
	}
	return s
}

// SetBaseURL points the client at a different endpoint. Tests use it to
// target a local fake.
func (s *Service) SetBaseURL(url string) {
	s.baseURL = strings.TrimSuffix(url, "/")
}

// ReviewResume asks the oracle to score a resume against the job context and
// returns the raw model output.
func (s *Service) ReviewResume(ctx context.Context, resumeText, jobTitle, jobDescription, jobRequirements string) (string, error) {
	prompt := buildResumePrompt(resumeText, jobTitle, jobDescription, jobRequirements)
	return s.generate(ctx, screenerSystemPrompt, prompt, true)
}

// ReviewTranscript asks the oracle to grade an interview transcript and
// returns the raw model output.
func (s *Service) ReviewTranscript(ctx context.Context, candidateName, transcript, jobTitle, jobRequirements string) (string, error) {
	prompt := buildTranscriptPrompt(candidateName, transcript, jobTitle, jobRequirements)
	return s.generate(ctx, graderSystemPrompt, prompt, true)
}

// Interview produces the interviewer's next message given the chat so far.
// An empty history yields the opening greeting.
func (s *Service) Interview(ctx context.Context, jobTitle, jobRequirements string, history []Message) (string, error) {
	system := interviewerSystemPrompt(jobTitle, jobRequirements)

	switch s.provider {
	case ProviderOpenAI, ProviderGroq:
		msgs := make([]map[string]string, 0, len(history)+2)
		msgs = append(msgs, map[string]string{"role": "system", "content": system})
		if len(history) == 0 {
			msgs = append(msgs, map[string]string{"role": "user", "content": "Hello, I am ready."})
		}
		for _, m := range history {
			msgs = append(msgs, map[string]string{"role": m.Role, "content": m.Content})
		}
		return s.chatCompletion(ctx, msgs, false)
	case ProviderOllama:
		// Ollama's generate endpoint takes one prompt, so the chat is
		// flattened into it.
		var b strings.Builder
		b.WriteString(system)
		b.WriteString("\n\nConversation so far:\n")
		for _, m := range history {
			role := "Candidate"
			if m.Role == "assistant" {
				role = "Interviewer"
			}
			fmt.Fprintf(&b, "%s: %s\n", role, m.Content)
		}
		b.WriteString("Interviewer:")
		return s.callOllama(ctx, b.String(), false)
	case ProviderNone:
		return "", fmt.Errorf("LLM provider not configured")
	default:
		return "", fmt.Errorf("unknown provider: %s", s.provider)
	}
}

func (s *Service) generate(ctx context.Context, system, prompt string, jsonOutput bool) (string, error) {
	start := time.Now()
	defer func() {
		log.Printf("[Oracle] %s call took %v", s.provider, time.Since(start))
	}()

	switch s.provider {
	case ProviderOpenAI, ProviderGroq:
		msgs := []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": prompt},
		}
		return s.chatCompletion(ctx, msgs, jsonOutput)
	case ProviderOllama:
		return s.callOllama(ctx, system+"\n\n"+prompt, jsonOutput)
	case ProviderNone:
		return "", fmt.Errorf("LLM provider not configured")
	default:
		return "", fmt.Errorf("unknown provider: %s", s.provider)
	}
}

func (s *Service) chatCompletion(ctx context.Context, messages []map[string]string, jsonOutput bool) (string, error) {
	reqBody := map[string]interface{}{
		"model":       s.model,
		"messages":    messages,
		"temperature": 0.1,
	}
	if jsonOutput {
		reqBody["response_format"] = map[string]string{"type": "json_object"}
	} else {
		reqBody["temperature"] = 0.7
	}

	jsonData, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s API error: %w", s.provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s API error: %d", s.provider, resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("%s error: %s", s.provider, result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from %s", s.provider)
	}

	return result.Choices[0].Message.Content, nil
}

func (s *Service) callOllama(ctx context.Context, prompt string, jsonOutput bool) (string, error) {
	reqBody := map[string]interface{}{
		"model":  s.model,
		"prompt": prompt,
		"stream": false,
	}
	if jsonOutput {
		reqBody["format"] = "json"
	}

	jsonData, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/api/generate", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("Ollama connection failed (is Ollama running?): %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Response string `json:"response"`
		Error    string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.Error != "" {
		return "", fmt.Errorf("Ollama error: %s", result.Error)
	}

	return result.Response, nil
}
