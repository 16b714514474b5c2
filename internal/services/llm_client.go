package services

import (
  "bytes"
  "context"
  "encoding/json"
  "fmt"
  "io"
  "net/http"
  "time"

  "github.com/als8921/InfoU-backend/internal/logger"
  "github.com/als8921/InfoU-backend/internal/utils"
)

// LLMClient is the outbound generation provider. It is injected into the
// generation service so tests can substitute a fake.
type LLMClient interface {
  Generate(ctx context.Context, prompt string) (*LLMResult, error)
  Model() string
}

type LLMResult struct {
  Text       string
  TokensUsed int
}

type geminiClient struct {
  log        *logger.Logger
  baseURL    string
  apiKey     string
  model      string
  httpClient *http.Client
}

func NewGeminiClient(log *logger.Logger) (LLMClient, error) {
  serviceLog := log.With("service", "GeminiClient")

  apiKey := utils.GetEnv("GEMINI_API_KEY", "", log)
  if apiKey == "" {
    return nil, fmt.Errorf("GEMINI_API_KEY is not set")
  }
  baseURL := utils.GetEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com", log)
  model := utils.GetEnv("GEMINI_MODEL", "gemini-1.5-flash", log)
  timeoutSec := utils.GetEnvAsInt("GEMINI_TIMEOUT_SECONDS", 120, log)

  return &geminiClient{
    log:        serviceLog,
    baseURL:    baseURL,
    apiKey:     apiKey,
    model:      model,
    httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
  }, nil
}

func (c *geminiClient) Model() string {
  return c.model
}

type geminiGenerateRequest struct {
  Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
  Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
  Text string `json:"text"`
}

type geminiGenerateResponse struct {
  Candidates []struct {
    Content struct {
      Parts []geminiPart `json:"parts"`
    } `json:"content"`
  } `json:"candidates"`
  UsageMetadata struct {
    PromptTokenCount     int `json:"promptTokenCount"`
    CandidatesTokenCount int `json:"candidatesTokenCount"`
    TotalTokenCount      int `json:"totalTokenCount"`
  } `json:"usageMetadata"`
}

func (c *geminiClient) Generate(ctx context.Context, prompt string) (*LLMResult, error) {
  reqBody := geminiGenerateRequest{
    Contents: []geminiContent{
      {Parts: []geminiPart{{Text: prompt}}},
    },
  }

  var buf bytes.Buffer
  if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
    return nil, err
  }

  url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
  req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
  if err != nil {
    return nil, err
  }
  req.Header.Set("Content-Type", "application/json")
  req.Header.Set("x-goog-api-key", c.apiKey)

  resp, err := c.httpClient.Do(req)
  if err != nil {
    return nil, err
  }
  defer resp.Body.Close()

  raw, err := io.ReadAll(resp.Body)
  if err != nil {
    return nil, err
  }
  if resp.StatusCode < 200 || resp.StatusCode >= 300 {
    return nil, fmt.Errorf("gemini http %d: %s", resp.StatusCode, string(raw))
  }

  var parsed geminiGenerateResponse
  if err := json.Unmarshal(raw, &parsed); err != nil {
    return nil, fmt.Errorf("gemini decode error: %w", err)
  }

  var text string
  for _, cand := range parsed.Candidates {
    for _, part := range cand.Content.Parts {
      text += part.Text
    }
    break
  }

  tokens := parsed.UsageMetadata.TotalTokenCount
  if tokens == 0 {
    tokens = parsed.UsageMetadata.PromptTokenCount + parsed.UsageMetadata.CandidatesTokenCount
  }

  return &LLMResult{Text: text, TokensUsed: tokens}, nil
}
