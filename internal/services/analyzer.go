package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"alfredoptarigan/ai-interviewer/internal/models"
)

// ErrAnalysisExtraction is returned when the model response could not be
// parsed as JSON and the heuristic extractor found nothing usable either.
var ErrAnalysisExtraction = errors.New("failed to parse interview analysis and could not extract structured data")

type AnalyzerService interface {
	AnalyzeInterview(ctx context.Context, messages []models.Message, responseTimes map[int]int64, jobDescription, cvContent string) (*models.EvaluationResult, error)
}

type analyzerService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
}

func NewAnalyzerService(gemini GeminiService) AnalyzerService {
	return &analyzerService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
	}
}

// AnalyzeInterview reconciles the message log into a transcript, has the
// model grade it, and parses the result. Parsing is recovered one level deep
// (structured JSON, then heuristic text extraction); past that the analysis
// fails as a whole. No partial results are ever returned.
func (s *analyzerService) AnalyzeInterview(
	ctx context.Context,
	messages []models.Message,
	responseTimes map[int]int64,
	jobDescription, cvContent string,
) (*models.EvaluationResult, error) {
	transcript := BuildTranscript(messages, responseTimes)

	// Coding question count is prompt context only; it never gates scoring.
	codingQuestions := 0
	for _, entry := range transcript {
		if entry.Type == models.CategoryCoding {
			codingQuestions++
		}
	}

	transcriptJSON, err := json.Marshal(transcript)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize transcript: %w", err)
	}

	responseTimesJSON, err := json.Marshal(responseTimes)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize response times: %w", err)
	}

	prompt := s.promptBuilder.BuildInterviewEvaluationPrompt(
		jobDescription,
		cvContent,
		string(transcriptJSON),
		string(responseTimesJSON),
		codingQuestions,
	)

	text, err := s.gemini.GenerateText(ctx, prompt, 0.9)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze interview: %w", err)
	}

	results, err := parseEvaluationResult(text)
	if err != nil {
		log.Printf("⚠️  Structured parse of evaluation failed: %v", err)

		results = extractResultFromText(text)
		if results == nil {
			return nil, ErrAnalysisExtraction
		}
	}

	if results.ResponseTimes == nil || *results.ResponseTimes == (models.ResponseTimeStats{}) {
		results.ResponseTimes = computeResponseTimeStats(responseTimes)
	}

	// The model's transcript echo is not authoritative; always attach the
	// locally reconciled one.
	results.Transcript = transcript

	return results, nil
}

func parseEvaluationResult(text string) (*models.EvaluationResult, error) {
	normalized := normalizeModelJSON(text)

	var results models.EvaluationResult
	if err := json.Unmarshal([]byte(normalized), &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal evaluation: %w", err)
	}

	return &results, nil
}

// normalizeModelJSON repairs model output that pretty-prints JSON in ways
// that break strict parsing: code fences are stripped and single newlines
// that do not sit next to a structural bracket are collapsed into spaces.
func normalizeModelJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '\n' {
			b.WriteByte(c)
			continue
		}

		afterOpen := i > 0 && (text[i-1] == '{' || text[i-1] == '[' || text[i-1] == ',')
		beforeClose := i+1 < len(text) && (text[i+1] == '}' || text[i+1] == ']')
		if afterOpen || beforeClose {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}

	return strings.TrimSpace(b.String())
}

// computeResponseTimeStats derives the aggregates from the recorded values.
// An empty map yields zero-valued stats; the caller is expected to have
// rejected sessions without response times at the boundary.
func computeResponseTimeStats(responseTimes map[int]int64) *models.ResponseTimeStats {
	stats := &models.ResponseTimeStats{}
	if len(responseTimes) == 0 {
		return stats
	}

	var sum int64
	first := true
	for _, t := range responseTimes {
		sum += t
		if first {
			stats.Fastest = float64(t)
			stats.Slowest = float64(t)
			first = false
			continue
		}
		if float64(t) < stats.Fastest {
			stats.Fastest = float64(t)
		}
		if float64(t) > stats.Slowest {
			stats.Slowest = float64(t)
		}
	}

	stats.Average = float64(sum) / float64(len(responseTimes))
	return stats
}

var (
	overallScorePattern   = regexp.MustCompile(`(?i)overall\s+score:?\s*(\d+)`)
	technicalPattern      = regexp.MustCompile(`(?i)technical\s+acumen:?\s*(\d+)`)
	codingPattern         = regexp.MustCompile(`(?i)coding\s+proficiency:?\s*(\d+)`)
	communicationPattern  = regexp.MustCompile(`(?i)communication\s+skills:?\s*(\d+)`)
	responsivenessPattern = regexp.MustCompile(`(?i)responsiveness:?\s*(\d+)`)
	problemSolvingPattern = regexp.MustCompile(`(?i)problem.?solving:?\s*(\d+)`)
	culturalFitPattern    = regexp.MustCompile(`(?i)cultural\s+fit:?\s*(\d+)`)

	sectionHeaderPattern      = regexp.MustCompile(`(?i)(strengths|key\s+strengths|improvements|areas\s+for\s+improvement):`)
	improvementsHeaderPattern = regexp.MustCompile(`(?i)(improvements|areas\s+for\s+improvement):`)
	strengthsHeaderPattern    = regexp.MustCompile(`(?i)(strengths|key\s+strengths):`)
	bulletLinePattern         = regexp.MustCompile(`^[-*•]\s`)
	numberedBulletPattern     = regexp.MustCompile(`^\d+[.)]\s`)
	bulletPrefixPattern       = regexp.MustCompile(`^[-*•\d.)\s]+`)
)

// extractResultFromText is the best-effort recovery path for unstructured
// model output. The overall score is the required anchor; without it the
// extraction fails and nil is returned. Category scores that cannot be
// located default to 70, a documented neutral placeholder rather than a
// computed value, so recovered results are intentionally lower fidelity
// than the structured path.
func extractResultFromText(text string) *models.EvaluationResult {
	overall, ok := matchScore(overallScorePattern, text)
	if !ok {
		return nil
	}

	results := &models.EvaluationResult{
		OverallScore: overall,
		Categories: models.CategoryScores{
			TechnicalAcumen:            matchScoreOrDefault(technicalPattern, text, 70),
			CodingProficiency:          matchScoreOrDefault(codingPattern, text, 70),
			CommunicationSkills:        matchScoreOrDefault(communicationPattern, text, 70),
			ResponsivenessAgility:      matchScoreOrDefault(responsivenessPattern, text, 70),
			ProblemSolvingAdaptability: matchScoreOrDefault(problemSolvingPattern, text, 70),
			CulturalFitSoftSkills:      matchScoreOrDefault(culturalFitPattern, text, 70),
		},
		Summary:      extractSummary(text),
		Strengths:    extractBulletSection(text, strengthsHeaderPattern, improvementsHeaderPattern),
		Improvements: extractBulletSection(text, improvementsHeaderPattern, nil),
	}

	if results.Summary == "" {
		results.Summary = "Analysis extracted from unstructured text."
	}
	if len(results.Strengths) == 0 {
		results.Strengths = []string{"Technical knowledge", "Communication approach"}
	}
	if len(results.Improvements) == 0 {
		results.Improvements = []string{"Could be more specific", "Response timing"}
	}

	return results
}

func matchScore(pattern *regexp.Regexp, text string) (float64, bool) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}

	score, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}

	return float64(score), true
}

func matchScoreOrDefault(pattern *regexp.Regexp, text string, def float64) float64 {
	if score, ok := matchScore(pattern, text); ok {
		return score
	}
	return def
}

// extractSummary returns the text between a "summary:" label and the next
// strengths/improvements section header.
func extractSummary(text string) string {
	lower := strings.ToLower(text)
	start := strings.Index(lower, "summary:")
	if start < 0 {
		return ""
	}

	rest := text[start+len("summary:"):]
	if loc := sectionHeaderPattern.FindStringIndex(rest); loc != nil {
		rest = rest[:loc[0]]
	}

	return strings.TrimSpace(rest)
}

// extractBulletSection collects bullet or numbered list lines following a
// section header, stopping at the next section when one is given.
func extractBulletSection(text string, header, stop *regexp.Regexp) []string {
	loc := header.FindStringIndex(text)
	if loc == nil {
		return nil
	}

	var items []string
	lines := strings.Split(text[loc[0]:], "\n")
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if stop != nil && stop.MatchString(line) {
			break
		}
		if bulletLinePattern.MatchString(line) || numberedBulletPattern.MatchString(line) {
			items = append(items, strings.TrimSpace(bulletPrefixPattern.ReplaceAllString(line, "")))
		}
	}

	return items
}
