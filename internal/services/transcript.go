package services

import (
	"strconv"
	"strings"

	"alfredoptarigan/ai-interviewer/internal/models"
)

// BuildTranscript pairs assistant questions with the user answers that
// follow them and attaches the recorded response time and question type.
// Assistant messages with the welcome/final IDs never become questions, and
// user messages arriving with no pending question are dropped. The function
// is pure; re-running it on the same inputs yields an identical transcript.
func BuildTranscript(messages []models.Message, responseTimes map[int]int64) []models.TranscriptEntry {
	transcript := []models.TranscriptEntry{}
	currentQuestion := ""

	for i, message := range messages {
		switch {
		case message.Role == models.RoleAssistant &&
			message.ID != models.MessageIDWelcome &&
			message.ID != models.MessageIDFinal:
			currentQuestion = message.Content

		case message.Role == models.RoleUser && currentQuestion != "":
			index := 0
			if i > 0 {
				index = questionIndex(messages[i-1].ID)
			}

			transcript = append(transcript, models.TranscriptEntry{
				Question:     currentQuestion,
				Answer:       message.Content,
				ResponseTime: responseTimes[index],
				Type:         ClassifyQuestion(currentQuestion),
			})
			currentQuestion = ""
		}
	}

	return transcript
}

// questionIndex parses the numeral after the "q-" prefix of an assistant
// message ID. Malformed IDs resolve to index 0.
func questionIndex(id string) int {
	parts := strings.SplitN(id, "-", 2)
	if len(parts) < 2 {
		return 0
	}

	index, err := strconv.Atoi(parts[1])
	if err != nil || index < 0 {
		return 0
	}

	return index
}
