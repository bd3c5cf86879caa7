package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/courtcheck/courtcheck/src/shared/httpx"
	"github.com/courtcheck/courtcheck/src/webclient"
)

const (
	chatCompletionsURL = "https://api.openai.com/v1/chat/completions"
	responsesURL       = "https://api.openai.com/v1/responses"
)

type openAIClient struct {
	apiKey     string
	httpClient *http.Client
	defaults   Options
}

func newOpenAIClient(cfg FactoryConfig) *openAIClient {
	return &openAIClient{
		apiKey:     cfg.OpenAIKey,
		httpClient: httpx.NewDefault(120 * time.Second),
		defaults: Options{
			Model:               valueOrDefault(cfg.Model, "gpt-5-mini"),
			Temperature:         orFloat(cfg.Temperature, 1),
			MaxCompletionTokens: orInt(cfg.MaxCompletionTokens, 4000),
		},
	}
}

func (c *openAIClient) AnswerQuestion(ctx context.Context, system string, question string, opts Options) (string, error) {
	merged := c.merge(opts)
	messages := []map[string]string{}
	if system != "" {
		messages = append(messages, map[string]string{"role": "system", "content": system})
	}
	messages = append(messages, map[string]string{"role": "user", "content": question})

	reqBody := map[string]interface{}{
		"model":                 merged.Model,
		"messages":              messages,
		"temperature":           merged.Temperature,
		"max_completion_tokens": merged.MaxCompletionTokens,
	}

	body, err := c.post(ctx, chatCompletionsURL, reqBody)
	if err != nil {
		return "", err
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}
	return result.Choices[0].Message.Content, nil
}

func (c *openAIClient) Respond(ctx context.Context, input string, tools []Tool, opts Options) (*Response, error) {
	merged := c.merge(opts)
	payload := map[string]interface{}{
		"model":             merged.Model,
		"input":             input,
		"temperature":       merged.Temperature,
		"max_output_tokens": merged.MaxCompletionTokens,
	}
	if len(tools) > 0 {
		var toolPayload []map[string]interface{}
		for _, t := range tools {
			toolPayload = append(toolPayload, map[string]interface{}{"type": t.Type})
		}
		payload["tools"] = toolPayload
		payload["tool_choice"] = "auto"
	}

	body, err := c.post(ctx, responsesURL, payload)
	if err != nil {
		return nil, err
	}

	var result struct {
		Output []struct {
			Type    string `json:"type"`
			Content []struct {
				Type        string `json:"type"`
				Text        string `json:"text"`
				Annotations []struct {
					Type  string `json:"type"`
					Title string `json:"title"`
					URL   string `json:"url"`
				} `json:"annotations,omitempty"`
			} `json:"content"`
		} `json:"output"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	resp := &Response{}
	seen := make(map[string]bool)
	for _, item := range result.Output {
		for _, content := range item.Content {
			if content.Type == "output_text" && resp.Text == "" {
				resp.Text = content.Text
			}
			for _, ann := range content.Annotations {
				if ann.Type == "url_citation" && ann.URL != "" && !seen[ann.URL] {
					resp.Citations = append(resp.Citations, Citation{Title: ann.Title, URL: ann.URL})
					seen[ann.URL] = true
				}
			}
		}
	}
	if resp.Text == "" && len(resp.Citations) == 0 {
		return nil, fmt.Errorf("failed to parse OpenAI response")
	}
	return resp, nil
}

func (c *openAIClient) post(ctx context.Context, url string, payload interface{}) ([]byte, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	status, body, err := webclient.DoWithRetry(ctx, 3, 2*time.Second, func() (int, []byte, error) {
		req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
		if err != nil {
			return 0, nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return 0, nil, fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
		}
		return resp.StatusCode, b, nil
	})
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		var errorResp struct {
			Error struct {
				Message string `json:"message"`
				Type    string `json:"type"`
				Code    string `json:"code"`
			} `json:"error"`
		}
		if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error.Message != "" {
			return nil, fmt.Errorf("OpenAI API error: %s (type: %s, code: %s)",
				errorResp.Error.Message, errorResp.Error.Type, errorResp.Error.Code)
		}
		return nil, fmt.Errorf("OpenAI API error: status %d", status)
	}
	return body, nil
}

func (c *openAIClient) merge(opts Options) Options {
	out := c.defaults
	if opts.Model != "" {
		out.Model = opts.Model
	}
	if opts.Temperature != 0 {
		out.Temperature = opts.Temperature
	}
	if opts.MaxCompletionTokens != 0 {
		out.MaxCompletionTokens = opts.MaxCompletionTokens
	}
	if opts.SystemPrompt != "" {
		out.SystemPrompt = opts.SystemPrompt
	}
	return out
}

func valueOrDefault(val, def string) string {
	if val != "" {
		return val
	}
	return def
}

func orInt(v, d int) int {
	if v != 0 {
		return v
	}
	return d
}

func orFloat(v, d float64) float64 {
	if v != 0 {
		return v
	}
	return d
}
