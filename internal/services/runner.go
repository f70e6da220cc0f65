package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrUnsupportedLanguage is returned for code submissions in a language no
// runner is registered for.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// ExecutionResult is what a code run produced. Simulated stays visible all
// the way to the API response so a caller can never mistake a canned
// output for a real run.
type ExecutionResult struct {
	Output    string
	Simulated bool
	Duration  time.Duration
}

// CodeRunner executes a single language's submissions.
type CodeRunner interface {
	Run(ctx context.Context, code string) (*ExecutionResult, error)
}

type CodeRunnerService interface {
	Run(ctx context.Context, language, code string) (*ExecutionResult, error)
	Languages() []string
}

type codeRunnerService struct {
	runners map[string]CodeRunner
}

// interviewLanguages are the languages the interview code editor offers.
var interviewLanguages = []string{
	"javascript",
	"typescript",
	"python",
	"java",
	"csharp",
	"cpp",
	"go",
	"ruby",
	"php",
	"swift",
	"rust",
	"kotlin",
}

// NewCodeRunnerService registers a simulated runner per supported language.
// Real in-process execution of submitted code is an unbounded-trust
// operation and is not offered; a real runner would have to live in an
// isolated subprocess with resource and time limits.
func NewCodeRunnerService(delay time.Duration) CodeRunnerService {
	runners := make(map[string]CodeRunner, len(interviewLanguages))
	for _, lang := range interviewLanguages {
		runners[lang] = &simulatedRunner{language: lang, delay: delay}
	}

	return &codeRunnerService{runners: runners}
}

func (s *codeRunnerService) Run(ctx context.Context, language, code string) (*ExecutionResult, error) {
	runner, ok := s.runners[strings.ToLower(language)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, language)
	}

	return runner.Run(ctx, code)
}

func (s *codeRunnerService) Languages() []string {
	languages := make([]string, 0, len(s.runners))
	for lang := range s.runners {
		languages = append(languages, lang)
	}
	sort.Strings(languages)
	return languages
}

// simulatedRunner waits out an artificial "compile and run" delay and
// returns a clearly labeled canned output.
type simulatedRunner struct {
	language string
	delay    time.Duration
}

func (r *simulatedRunner) Run(ctx context.Context, code string) (*ExecutionResult, error) {
	start := time.Now()

	timer := time.NewTimer(r.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("code run cancelled: %w", ctx.Err())
	case <-timer.C:
	}

	output := fmt.Sprintf(
		"[Simulated %s Execution]\n\nCode appears to compile successfully.\nOutput would display here after execution.",
		strings.ToUpper(r.language),
	)

	return &ExecutionResult{
		Output:    output,
		Simulated: true,
		Duration:  time.Since(start),
	}, nil
}
