package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGemini satisfies GeminiService with a canned response. Shared by the
// generator and analyzer tests.
type fakeGemini struct {
	text string
	err  error
}

func (f *fakeGemini) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	return f.text, f.err
}

func TestGenerateQuestionsTaggedObjects(t *testing.T) {
	gemini := &fakeGemini{text: `[
		{"question": "Implement a rate limiter", "type": "coding"},
		{"question": "How does garbage collection work in Go?", "type": "technical"}
	]`}
	svc := NewQuestionService(gemini, 10, 4)

	questions, err := svc.GenerateQuestions(context.Background(), "job", "cv")

	require.NoError(t, err)
	assert.Equal(t, []string{
		"[coding] Implement a rate limiter",
		"[technical] How does garbage collection work in Go?",
	}, questions)
}

func TestGenerateQuestionsTaggedObjectsInMarkdownFence(t *testing.T) {
	gemini := &fakeGemini{text: "```json\n[{\"question\": \"Implement a queue\", \"type\": \"coding\"}]\n```"}
	svc := NewQuestionService(gemini, 10, 4)

	questions, err := svc.GenerateQuestions(context.Background(), "job", "cv")

	require.NoError(t, err)
	assert.Equal(t, []string{"[coding] Implement a queue"}, questions)
}

func TestGenerateQuestionsPlainStringArray(t *testing.T) {
	gemini := &fakeGemini{text: `["What is a goroutine?", "Describe your last project."]`}
	svc := NewQuestionService(gemini, 10, 4)

	questions, err := svc.GenerateQuestions(context.Background(), "job", "cv")

	require.NoError(t, err)
	assert.Equal(t, []string{"What is a goroutine?", "Describe your last project."}, questions)
}

func TestGenerateQuestionsNumberedListFallback(t *testing.T) {
	gemini := &fakeGemini{text: "1. What is a closure?\n2. Explain your last project.\n"}
	svc := NewQuestionService(gemini, 10, 4)

	questions, err := svc.GenerateQuestions(context.Background(), "job", "cv")

	require.NoError(t, err)
	assert.Equal(t, []string{"What is a closure?", "Explain your last project."}, questions)
}

func TestGenerateQuestionsQuestionLineFallback(t *testing.T) {
	gemini := &fakeGemini{text: "Here are some ideas.\n" +
		"Can you explain how TCP handshakes work in detail?\n" +
		"{not a question}\n" +
		"short?\n" +
		"What trade-offs did you weigh when choosing a database?"}
	svc := NewQuestionService(gemini, 10, 4)

	questions, err := svc.GenerateQuestions(context.Background(), "job", "cv")

	require.NoError(t, err)
	assert.Equal(t, []string{
		"Can you explain how TCP handshakes work in detail?",
		"What trade-offs did you weigh when choosing a database?",
	}, questions)
}

func TestGenerateQuestionsUnparseableYieldsEmptyWithoutError(t *testing.T) {
	// Non-question prose is not an error at this layer; the handler decides
	// how to surface an empty list.
	gemini := &fakeGemini{text: "I could not come up with anything."}
	svc := NewQuestionService(gemini, 10, 4)

	questions, err := svc.GenerateQuestions(context.Background(), "job", "cv")

	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestGenerateQuestionsModelFailurePropagates(t *testing.T) {
	modelErr := errors.New("rate limited")
	svc := NewQuestionService(&fakeGemini{err: modelErr}, 10, 4)

	_, err := svc.GenerateQuestions(context.Background(), "job", "cv")

	require.Error(t, err)
	assert.ErrorIs(t, err, modelErr)
}

func TestExtractQuestionsFromTextParenthesisNumbering(t *testing.T) {
	questions := extractQuestionsFromText("1) First question\n2) Second question")

	assert.Equal(t, []string{"First question", "Second question"}, questions)
}
