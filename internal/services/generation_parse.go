package services

import (
  "encoding/json"
  "math"
  "regexp"
  "strings"
  "unicode/utf8"
)

// GeneratedSubTopicPayload is one parsed item from the provider response.
type GeneratedSubTopicPayload struct {
  Title                    string   `json:"title"`
  Description              string   `json:"description"`
  Keywords                 []string `json:"keywords"`
  LearningObjectives       []string `json:"learning_objectives"`
  Prerequisites            []string `json:"prerequisites"`
  EstimatedDurationMinutes int      `json:"estimated_duration_minutes"`
  DifficultyScore          int      `json:"difficulty_score"`
}

type generationPayload struct {
  SubTopics []GeneratedSubTopicPayload `json:"sub_topics"`
}

var (
  fencedJSONPattern = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
  fencedPattern     = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
)

// extractJSONFromMarkdown strips a fenced code block (with or without a
// language tag) around the provider's JSON payload. Without a fence the
// trimmed input is returned unchanged.
func extractJSONFromMarkdown(content string) string {
  if m := fencedJSONPattern.FindStringSubmatch(content); m != nil {
    return strings.TrimSpace(m[1])
  }
  if m := fencedPattern.FindStringSubmatch(content); m != nil {
    return strings.TrimSpace(m[1])
  }
  return strings.TrimSpace(content)
}

// parseGeneratedSubTopics extracts the sub topic list from the provider's
// text payload. A payload that does not parse yields an empty list and
// ok=false; the caller decides what that means for the request lifecycle.
func parseGeneratedSubTopics(content string) ([]GeneratedSubTopicPayload, bool) {
  jsonText := extractJSONFromMarkdown(content)

  var payload generationPayload
  if err := json.Unmarshal([]byte(jsonText), &payload); err != nil {
    return nil, false
  }
  return payload.SubTopics, true
}

// Blended Gemini 1.5 Flash rate: ($0.075 input + $0.30 output) / 2 per
// million tokens. Cost is always recomputed from token usage with this one
// constant, never taken from the provider.
const costPerMillionTokensUSD = 0.1875

func calculateCostUSD(tokensUsed int) float64 {
  return float64(tokensUsed) / 1000000.0 * costPerMillionTokensUSD
}

// calculateQualityScore grades field completeness: each item earns one
// point per satisfied check (title length, description length, non-empty
// keywords, non-empty objectives), normalized to 0-10 and rounded to two
// decimals. No items scores 0.0.
func calculateQualityScore(items []GeneratedSubTopicPayload) float64 {
  if len(items) == 0 {
    return 0.0
  }

  score := 0
  for _, item := range items {
    if utf8.RuneCountInString(item.Title) > 5 {
      score++
    }
    if utf8.RuneCountInString(item.Description) > 10 {
      score++
    }
    if len(item.Keywords) > 0 {
      score++
    }
    if len(item.LearningObjectives) > 0 {
      score++
    }
  }

  maxScore := len(items) * 4
  normalized := float64(score) / float64(maxScore) * 10
  return math.Round(normalized*100) / 100
}
