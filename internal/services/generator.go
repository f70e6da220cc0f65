package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"alfredoptarigan/ai-interviewer/internal/models"
)

type QuestionService interface {
	GenerateQuestions(ctx context.Context, jobDescription, cvContent string) ([]string, error)
}

type questionService struct {
	gemini             GeminiService
	promptBuilder      *PromptBuilder
	questionCount      int
	minCodingQuestions int
}

func NewQuestionService(gemini GeminiService, questionCount, minCodingQuestions int) QuestionService {
	return &questionService{
		gemini:             gemini,
		promptBuilder:      NewPromptBuilder(),
		questionCount:      questionCount,
		minCodingQuestions: minCodingQuestions,
	}
}

type taggedQuestion struct {
	Question string          `json:"question"`
	Type     models.Category `json:"type"`
}

// GenerateQuestions asks the model for a tagged question list and parses it.
// A model-call failure propagates untouched. An unparseable response falls
// back to heuristic text extraction, which may legitimately yield nothing;
// the caller decides whether an empty list is an error.
func (s *questionService) GenerateQuestions(ctx context.Context, jobDescription, cvContent string) ([]string, error) {
	prompt := s.promptBuilder.BuildQuestionGenerationPrompt(
		jobDescription,
		cvContent,
		s.questionCount,
		s.minCodingQuestions,
	)

	text, err := s.gemini.GenerateText(ctx, prompt, 0.7)
	if err != nil {
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	return parseQuestions(text), nil
}

// parseQuestions tries the structured forms first: a JSON array of
// {question, type} objects, then a JSON array of plain strings. Anything
// else goes through the text heuristics.
func parseQuestions(text string) []string {
	raw := extractJSON(text)

	var tagged []taggedQuestion
	if err := json.Unmarshal([]byte(raw), &tagged); err == nil && len(tagged) > 0 && tagged[0].Question != "" {
		questions := make([]string, 0, len(tagged))
		for _, item := range tagged {
			questions = append(questions, fmt.Sprintf("[%s] %s", item.Type, item.Question))
		}
		return questions
	}

	var plain []string
	if err := json.Unmarshal([]byte(raw), &plain); err == nil {
		return plain
	}

	return extractQuestionsFromText(text)
}

var numberedLinePattern = regexp.MustCompile(`^\s*\d+[.)]\s*(.+)$`)

// extractQuestionsFromText recovers questions from free-form model output.
// Numbered items are matched line by line rather than with a greedy
// multiline pattern so one question cannot bleed into the next. If no
// numbered list is found, question-looking lines are selected instead.
func extractQuestionsFromText(text string) []string {
	lines := strings.Split(text, "\n")

	var numbered []string
	for _, line := range lines {
		if m := numberedLinePattern.FindStringSubmatch(line); m != nil {
			numbered = append(numbered, strings.TrimSpace(m[1]))
		}
	}

	if len(numbered) > 0 {
		return numbered
	}

	var questions []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) > 20 &&
			strings.Contains(line, "?") &&
			!strings.HasPrefix(line, "{") &&
			!strings.HasPrefix(line, "[") &&
			!strings.HasPrefix(line, "```") {
			questions = append(questions, line)
		}
	}

	return questions
}

// extractJSON strips markdown fences and trims to the outermost JSON object
// or array, since the model often wraps its answer in prose.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startArr != -1 && endArr != -1 && endArr > startArr && (startObj == -1 || startArr < startObj) {
		return text[startArr : endArr+1]
	}
	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	}

	return text
}
