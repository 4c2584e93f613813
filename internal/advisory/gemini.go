package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"purelift/server/internal/domain"
	"purelift/server/internal/progression"

	"github.com/sirupsen/logrus"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.0-flash"
	defaultTimeout = 15 * time.Second
)

// GeminiClient implements Gateway against the Google generative language API.
// Responses are requested as JSON and pushed through the validating decoders;
// any failure along the way falls back to the static defaults and logs a
// warning instead of surfacing an error.
type GeminiClient struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
}

// NewGeminiClient creates a Gateway backed by the Gemini API. baseURL and
// model may be empty to use the defaults.
func NewGeminiClient(apiKey, baseURL, model string, timeout time.Duration) *GeminiClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &GeminiClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *GeminiClient) ClassifyExercise(ctx context.Context, freeText string) Classification {
	prompt := fmt.Sprintf(
		`Analyze this exercise input: %q. Categorize it into one of these muscle groups: %s. `+
			`Provide a suggested starting weight in kg for an intermediate lifter. `+
			`Respond with a JSON object: {"name": corrected formal exercise name, "muscleGroup": one of the groups, "suggestedWeight": number}.`,
		freeText, muscleGroupList(),
	)

	raw, err := c.generateJSON(ctx, prompt)
	if err != nil {
		logrus.Warnf("advisory: exercise classification failed, using fallback: %v", err)
		return fallbackClassification(freeText)
	}
	classification, ok := decodeClassification(raw, freeText)
	if !ok {
		logrus.Warnf("advisory: unusable classification payload for %q, using fallback", freeText)
		return fallbackClassification(freeText)
	}
	return classification
}

func (c *GeminiClient) SuggestAlternatives(ctx context.Context, exerciseName string, muscleGroup domain.MuscleGroup) []Alternative {
	prompt := fmt.Sprintf(
		`The user is at the gym and the machine for %q (%s) is unavailable. `+
			`Suggest 3 direct alternatives targeting the same muscle group. `+
			`Respond with a JSON array of objects: [{"name": exercise name, "reason": very brief reason it is a good swap}].`,
		exerciseName, muscleGroup,
	)

	raw, err := c.generateJSON(ctx, prompt)
	if err != nil {
		logrus.Warnf("advisory: alternatives lookup failed for %q: %v", exerciseName, err)
		return nil
	}
	alts, ok := decodeAlternatives(raw)
	if !ok {
		logrus.Warnf("advisory: unusable alternatives payload for %q", exerciseName)
		return nil
	}
	return alts
}

func (c *GeminiClient) GetFormTips(ctx context.Context, exerciseName string) []string {
	prompt := fmt.Sprintf(
		`Give 3 short, practical form tips for performing %q safely and effectively. `+
			`Respond with a JSON array of strings.`,
		exerciseName,
	)

	raw, err := c.generateJSON(ctx, prompt)
	if err != nil {
		logrus.Warnf("advisory: form tips failed for %q, using canned tips: %v", exerciseName, err)
		return fallbackFormTips()
	}
	tips, ok := decodeFormTips(raw)
	if !ok {
		return fallbackFormTips()
	}
	return tips
}

func (c *GeminiClient) GenerateRoutine(ctx context.Context, userPrompt string) RoutineSuggestion {
	prompt := fmt.Sprintf(
		`Design a weight training routine for this request: %q. Muscle groups must be one of: %s. `+
			`Respond with a JSON object: {"routineName": short name, "exercises": [{"name": exercise name, `+
			`"muscleGroup": group, "suggestedWeight": starting weight in kg for an intermediate lifter, `+
			`"targetSets": number, "targetReps": number}]}. Use 4 to 6 exercises.`,
		userPrompt, muscleGroupList(),
	)

	raw, err := c.generateJSON(ctx, prompt)
	if err != nil {
		logrus.Warnf("advisory: routine generation failed, using fallback template: %v", err)
		return fallbackRoutine()
	}
	suggestion, ok := decodeRoutineSuggestion(raw, userPrompt)
	if !ok {
		logrus.Warn("advisory: unusable routine payload, using fallback template")
		return fallbackRoutine()
	}
	return suggestion
}

func (c *GeminiClient) GetCoachInsight(ctx context.Context, volumes []progression.WeeklyVolume) string {
	summary := make([]string, 0, len(volumes))
	for _, v := range volumes {
		summary = append(summary, fmt.Sprintf("%s: %d/%d sets", v.MuscleGroup, v.Count, v.Goal))
	}
	prompt := fmt.Sprintf(
		`You are an expert bodybuilding coach named "PureCoach". Based on this week's volume: %s, `+
			`give a very short (max 2 sentences), encouraging, professional insight. `+
			`Focus on what's missing or congratulate on high volume. Direct, minimalist tone. Respond with plain text.`,
		strings.Join(summary, ", "),
	)

	text, err := c.generateText(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			logrus.Warnf("advisory: coach insight failed, using fallback: %v", err)
		}
		return fallbackInsight
	}
	return strings.TrimSpace(text)
}

// --- Gemini wire format ---

type geminiRequest struct {
	Contents         []geminiContent   `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generateJSON asks the model for an application/json response and returns
// the raw JSON text of the first candidate.
func (c *GeminiClient) generateJSON(ctx context.Context, prompt string) ([]byte, error) {
	text, err := c.generate(ctx, prompt, "application/json")
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

func (c *GeminiClient) generateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, prompt, "")
}

func (c *GeminiClient) generate(ctx context.Context, prompt, mimeType string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	if mimeType != "" {
		reqBody.GenerationConfig = &generationConfig{ResponseMIMEType: mimeType}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func muscleGroupList() string {
	groups := domain.AllMuscleGroups()
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = string(g)
	}
	return strings.Join(names, ", ")
}
