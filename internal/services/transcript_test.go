package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/ai-interviewer/internal/models"
)

func TestBuildTranscriptPairsQuestionAndAnswer(t *testing.T) {
	messages := []models.Message{
		{ID: "q-0", Role: models.RoleAssistant, Content: "Q1"},
		{ID: "a-0", Role: models.RoleUser, Content: "A1"},
	}
	responseTimes := map[int]int64{0: 3000}

	transcript := BuildTranscript(messages, responseTimes)

	require.Len(t, transcript, 1)
	assert.Equal(t, models.TranscriptEntry{
		Question:     "Q1",
		Answer:       "A1",
		ResponseTime: 3000,
		Type:         ClassifyQuestion("Q1"),
	}, transcript[0])
}

func TestBuildTranscriptExcludesWelcomeAndFinal(t *testing.T) {
	messages := []models.Message{
		{ID: "welcome", Role: models.RoleAssistant, Content: "Welcome to your interview!"},
		{ID: "q-0", Role: models.RoleAssistant, Content: "[technical] Explain how DNS works"},
		{ID: "a-0", Role: models.RoleUser, Content: "It resolves names"},
		{ID: "final", Role: models.RoleAssistant, Content: "Thanks, we are done."},
	}
	responseTimes := map[int]int64{0: 4200}

	transcript := BuildTranscript(messages, responseTimes)

	require.Len(t, transcript, 1)
	assert.Equal(t, "[technical] Explain how DNS works", transcript[0].Question)
	assert.Equal(t, models.CategoryTechnical, transcript[0].Type)
	assert.Equal(t, int64(4200), transcript[0].ResponseTime)
}

func TestBuildTranscriptMultipleQuestions(t *testing.T) {
	messages := []models.Message{
		{ID: "welcome", Role: models.RoleAssistant, Content: "Hello"},
		{ID: "q-0", Role: models.RoleAssistant, Content: "[coding] Implement a stack"},
		{ID: "m-1", Role: models.RoleUser, Content: "Here is my stack"},
		{ID: "q-1", Role: models.RoleAssistant, Content: "Tell me about your role on a recent project"},
		{ID: "m-2", Role: models.RoleUser, Content: "I led the backend work"},
	}
	responseTimes := map[int]int64{0: 60000, 1: 25000}

	transcript := BuildTranscript(messages, responseTimes)

	require.Len(t, transcript, 2)
	assert.Equal(t, int64(60000), transcript[0].ResponseTime)
	assert.Equal(t, models.CategoryCoding, transcript[0].Type)
	assert.Equal(t, int64(25000), transcript[1].ResponseTime)
	assert.Equal(t, models.CategoryExperience, transcript[1].Type)
}

func TestBuildTranscriptDropsStrayUserMessages(t *testing.T) {
	messages := []models.Message{
		{ID: "m-0", Role: models.RoleUser, Content: "hello?"},
		{ID: "q-0", Role: models.RoleAssistant, Content: "Q1"},
		{ID: "m-1", Role: models.RoleUser, Content: "A1"},
		{ID: "m-2", Role: models.RoleUser, Content: "also this"},
	}

	transcript := BuildTranscript(messages, map[int]int64{0: 1000})

	require.Len(t, transcript, 1)
	assert.Equal(t, "A1", transcript[0].Answer)
}

func TestBuildTranscriptMissingResponseTimeDefaultsToZero(t *testing.T) {
	messages := []models.Message{
		{ID: "q-7", Role: models.RoleAssistant, Content: "Q"},
		{ID: "m-1", Role: models.RoleUser, Content: "A"},
	}

	transcript := BuildTranscript(messages, map[int]int64{})

	require.Len(t, transcript, 1)
	assert.Equal(t, int64(0), transcript[0].ResponseTime)
}

func TestBuildTranscriptIdempotent(t *testing.T) {
	messages := []models.Message{
		{ID: "q-0", Role: models.RoleAssistant, Content: "Q1"},
		{ID: "m-1", Role: models.RoleUser, Content: "A1"},
		{ID: "q-1", Role: models.RoleAssistant, Content: "Q2"},
		{ID: "m-2", Role: models.RoleUser, Content: "A2"},
	}
	responseTimes := map[int]int64{0: 1000, 1: 2000}

	first := BuildTranscript(messages, responseTimes)
	second := BuildTranscript(messages, responseTimes)

	assert.Equal(t, first, second)
}

func TestQuestionIndex(t *testing.T) {
	assert.Equal(t, 0, questionIndex("q-0"))
	assert.Equal(t, 12, questionIndex("q-12"))
	assert.Equal(t, 0, questionIndex("welcome"))
	assert.Equal(t, 0, questionIndex("q-"))
	assert.Equal(t, 0, questionIndex("q-abc"))
}
