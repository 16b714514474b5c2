package services

import (
	"strings"
	"testing"
)

func TestExtractJSONFromMarkdown(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "json fence",
			content: "```json\n{\"a\": 1}\n```",
			want:    `{"a": 1}`,
		},
		{
			name:    "bare fence",
			content: "```\n{\"a\": 1}\n```",
			want:    `{"a": 1}`,
		},
		{
			name:    "fence with surrounding prose",
			content: "Here you go:\n```json\n{\"a\": 1}\n```\nHope it helps.",
			want:    `{"a": 1}`,
		},
		{
			name:    "no fence",
			content: "  {\"a\": 1}  ",
			want:    `{"a": 1}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSONFromMarkdown(tc.content); got != tc.want {
				t.Fatalf("extractJSONFromMarkdown(%q) = %q, want %q", tc.content, got, tc.want)
			}
		})
	}
}

func TestParseGeneratedSubTopics(t *testing.T) {
	items, ok := parseGeneratedSubTopics("```json\n{\"sub_topics\": [{\"title\": \"t\", \"description\": \"d\"}]}\n```")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if len(items) != 1 || items[0].Title != "t" {
		t.Fatalf("items = %v", items)
	}

	if _, ok := parseGeneratedSubTopics("not json at all"); ok {
		t.Fatal("expected parse to fail on prose")
	}

	items, ok = parseGeneratedSubTopics(`{"sub_topics": []}`)
	if !ok || len(items) != 0 {
		t.Fatalf("empty list: items=%v ok=%v", items, ok)
	}
}

func TestCalculateCostUSD(t *testing.T) {
	if got := calculateCostUSD(1000000); got != 0.1875 {
		t.Fatalf("cost for 1M tokens = %v, want 0.1875", got)
	}
	if got := calculateCostUSD(0); got != 0 {
		t.Fatalf("cost for 0 tokens = %v, want 0", got)
	}
}

func TestCalculateQualityScore(t *testing.T) {
	full := GeneratedSubTopicPayload{
		Title:              "A long enough title",
		Description:        "A description longer than ten characters.",
		Keywords:           []string{"k"},
		LearningObjectives: []string{"o"},
	}
	empty := GeneratedSubTopicPayload{}

	cases := []struct {
		name  string
		items []GeneratedSubTopicPayload
		want  float64
	}{
		{"no items", nil, 0.0},
		{"all checks pass", []GeneratedSubTopicPayload{full}, 10.0},
		{"no checks pass", []GeneratedSubTopicPayload{empty}, 0.0},
		{"half pass", []GeneratedSubTopicPayload{full, empty}, 5.0},
		{
			// 5 of 8 checks: 5/8*10 = 6.25.
			"partial item",
			[]GeneratedSubTopicPayload{full, {Title: "Another full title"}},
			6.25,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := calculateQualityScore(tc.items); got != tc.want {
				t.Fatalf("quality = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCalculateQualityScoreCountsRunes(t *testing.T) {
	// Seven Hangul syllables pass the title check; three must fail it even
	// though their byte length alone would have passed.
	long := GeneratedSubTopicPayload{Title: "파이썬기초학습", Keywords: []string{"k"}, LearningObjectives: []string{"o"}}
	short := GeneratedSubTopicPayload{Title: "파이썬", Keywords: []string{"k"}, LearningObjectives: []string{"o"}}

	if got := calculateQualityScore([]GeneratedSubTopicPayload{long}); got != 7.5 {
		t.Fatalf("long hangul title quality = %v, want 7.5", got)
	}
	if got := calculateQualityScore([]GeneratedSubTopicPayload{short}); got != 5.0 {
		t.Fatalf("short hangul title quality = %v, want 5.0", got)
	}
}

func TestBuildSubTopicPrompt(t *testing.T) {
	personalization := PersonalizationData{
		LearningLevel: "beginner",
		LearningGoals: []string{"read code", "write services"},
	}

	prompt := buildSubTopicPrompt("Go", "The Go programming language", personalization, 5)

	for _, fragment := range []string{
		"Main topic: Go",
		"Main topic description: The Go programming language",
		"Learner level: beginner",
		"read code, write services",
		"Generate 5 sub topics",
	} {
		if !strings.Contains(prompt, fragment) {
			t.Fatalf("prompt missing %q:\n%s", fragment, prompt)
		}
	}
}

func TestDecodeParameters(t *testing.T) {
	if got := decodeParameters(nil).Count; got != 10 {
		t.Fatalf("default count = %d, want 10", got)
	}
	if got := decodeParameters([]byte(`{"count": 3}`)).Count; got != 3 {
		t.Fatalf("count = %d, want 3", got)
	}
	if got := decodeParameters([]byte(`{"count": -1}`)).Count; got != 10 {
		t.Fatalf("non-positive count = %d, want default 10", got)
	}
	if got := decodeParameters([]byte(`not json`)).Count; got != 10 {
		t.Fatalf("garbage parameters count = %d, want default 10", got)
	}
}
