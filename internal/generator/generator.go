// Package generator obtains question sets for practice sessions. It asks the
// Gemini API first and falls back to a bundled per-topic question bank on any
// upstream failure, so session creation never depends on the network.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"regexp"
	"time"

	"github.com/Mrvatsan/APTITUDE-AI/internal/models"
)

type Generator struct {
	Client  *http.Client
	BaseURL string
	APIKey  string
	Model   string
}

func New(baseURL, apiKey, model string, timeout time.Duration) *Generator {
	return &Generator{
		Client:  &http.Client{Timeout: timeout},
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		Temperature     float64 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type questionSet struct {
	Questions []models.Question `json:"questions"`
}

var jsonFence = regexp.MustCompile("```json\\s*([\\s\\S]*?)\\s*```")
var jsonBlock = regexp.MustCompile(`\{[\s\S]*\}`)

// Generate returns n questions for the topic. Upstream failures of any kind
// (network, timeout, malformed body, unparseable JSON) are logged and covered
// by the fallback bank; the caller never sees them. The fallback path may
// under-fill when the bank itself has fewer than n entries.
func (g *Generator) Generate(ctx context.Context, topic, milestone string, n int, difficulty models.Difficulty) []models.Question {
	questions, err := g.generateUpstream(ctx, topic, milestone, n, difficulty)
	if err != nil {
		log.Printf("[AI Generator] Failed to generate questions for %q: %v", topic, err)
		questions = FallbackQuestions(topic, n, difficulty)
		log.Printf("[AI Generator] Serving %d fallback questions for %q", len(questions), topic)
	}
	return questions
}

func (g *Generator) generateUpstream(ctx context.Context, topic, milestone string, n int, difficulty models.Difficulty) ([]models.Question, error) {
	if g.APIKey == "" {
		return nil, fmt.Errorf("no API key configured")
	}

	prompt := fmt.Sprintf(`You are an expert aptitude trainer. Generate %d MCQs for %q. Rules:
1. Output valid JSON only.
2. Each: "question", "options" (4), "correctOptionIndex" (0-3), "solution", "difficulty", "category".
3. Vary scenarios. Use metric units. ALL questions MUST be about %q only.

Generate %d aptitude MCQs for %q, milestone %q, difficulty: %s.
Return: { "category": %q, "milestone": %q, "questions": [...] }`,
		n, topic, topic, n, topic, milestone, difficulty, topic, milestone)

	var reqBody geminiRequest
	reqBody.Contents = []geminiContent{{Parts: []geminiPart{{Text: prompt}}}}
	reqBody.GenerationConfig.Temperature = 0.9
	reqBody.GenerationConfig.MaxOutputTokens = 6000

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.BaseURL, g.Model, g.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("upstream status %d: %s", resp.StatusCode, body)
	}

	var gr geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, err
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty candidate response")
	}

	text := gr.Candidates[0].Content.Parts[0].Text
	raw := text
	if m := jsonFence.FindStringSubmatch(text); m != nil {
		raw = m[1]
	} else if m := jsonBlock.FindString(text); m != "" {
		raw = m
	}

	var set questionSet
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		return nil, fmt.Errorf("parsing model output: %w", err)
	}
	for i, q := range set.Questions {
		if len(q.Options) != 4 || q.CorrectOptionIndex < 0 || q.CorrectOptionIndex > 3 {
			return nil, fmt.Errorf("malformed question at index %d", i)
		}
	}
	if len(set.Questions) == 0 {
		return nil, fmt.Errorf("model returned no questions")
	}
	if len(set.Questions) > n {
		set.Questions = set.Questions[:n]
	}
	return set.Questions, nil
}

// FallbackQuestions selects n questions for a topic from the static bank.
// A specific difficulty filters the bank, but the filter is dropped when it
// leaves fewer than n candidates. The selection is a uniform shuffle; when
// the bank itself is smaller than n the whole bank is returned.
func FallbackQuestions(topic string, n int, difficulty models.Difficulty) []models.Question {
	bank, ok := fallbackBank[topic]
	if !ok {
		bank = defaultBank
	}

	if difficulty != models.DifficultyMixed && difficulty != "" {
		filtered := make([]models.Question, 0, len(bank))
		for _, q := range bank {
			if q.Difficulty == string(difficulty) {
				filtered = append(filtered, q)
			}
		}
		if len(filtered) >= n {
			bank = filtered
		}
	}

	shuffled := make([]models.Question, len(bank))
	copy(shuffled, bank)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
