package services

import (
  "encoding/json"
  "fmt"
  "strings"
)

// PersonalizationData is the recognized personalization vocabulary. Extra
// fields in the stored document are ignored on decode.
type PersonalizationData struct {
  LearningLevel       string   `json:"learning_level,omitempty"`
  LearningGoals       []string `json:"learning_goals,omitempty"`
  PreferredDifficulty string   `json:"preferred_difficulty,omitempty"`
  TimePreference      string   `json:"time_preference,omitempty"`
  Style               string   `json:"style,omitempty"`
}

type GenerationParameters struct {
  Count int `json:"count,omitempty"`
}

const defaultGenerationCount = 10

func decodePersonalization(raw []byte) PersonalizationData {
  var data PersonalizationData
  if len(raw) == 0 {
    return data
  }
  _ = json.Unmarshal(raw, &data)
  return data
}

func decodeParameters(raw []byte) GenerationParameters {
  params := GenerationParameters{Count: defaultGenerationCount}
  if len(raw) == 0 {
    return params
  }
  _ = json.Unmarshal(raw, &params)
  if params.Count <= 0 {
    params.Count = defaultGenerationCount
  }
  return params
}

const subTopicSystemPrompt = `You are an education expert. Given a main topic, produce sub topics a learner can follow in a systematic order.

Respond with pure JSON only. No markdown, no surrounding text.

JSON shape:
{
  "sub_topics": [
    {
      "title": "sub topic title",
      "description": "short description",
      "keywords": ["keyword"],
      "learning_objectives": ["objective"],
      "prerequisites": ["prerequisite"],
      "estimated_duration_minutes": 30,
      "difficulty_score": 5
    }
  ]
}

Rules:
1. Order sub topics from fundamentals to advanced.
2. Respond with pure JSON only (no code fences or extra text).`

func buildSubTopicPrompt(topicTitle, topicDescription string, personalization PersonalizationData, count int) string {
  var b strings.Builder

  b.WriteString(subTopicSystemPrompt)
  b.WriteString("\n\n")

  fmt.Fprintf(&b, "Main topic: %s\n", topicTitle)
  if topicDescription != "" {
    fmt.Fprintf(&b, "Main topic description: %s\n", topicDescription)
  }
  if personalization.LearningLevel != "" {
    fmt.Fprintf(&b, "Learner level: %s\n", personalization.LearningLevel)
  }
  if len(personalization.LearningGoals) > 0 {
    fmt.Fprintf(&b, "Learning goals: %s\n", strings.Join(personalization.LearningGoals, ", "))
  }
  if personalization.PreferredDifficulty != "" {
    fmt.Fprintf(&b, "Preferred difficulty: %s\n", personalization.PreferredDifficulty)
  }
  if personalization.TimePreference != "" {
    fmt.Fprintf(&b, "Time available: %s\n", personalization.TimePreference)
  }
  if personalization.Style != "" {
    fmt.Fprintf(&b, "Preferred style: %s\n", personalization.Style)
  }

  fmt.Fprintf(&b, "\nGenerate %d sub topics for the main topic above.", count)

  return b.String()
}
