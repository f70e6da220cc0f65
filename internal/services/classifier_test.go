package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/ai-interviewer/internal/models"
)

func TestClassifyQuestionExplicitTagWinsOverKeywords(t *testing.T) {
	// The tag takes priority even when the text is full of technical keywords.
	assert.Equal(t, models.CategoryCoding, ClassifyQuestion("[coding] Explain what a closure is"))
	assert.Equal(t, models.CategorySoftSkills, ClassifyQuestion("[soft_skills] Write a function to reverse a list"))
	assert.Equal(t, models.CategoryTechnical, ClassifyQuestion("[TECHNICAL] anything"))
	assert.Equal(t, models.CategoryExperience, ClassifyQuestion("[Experience] anything"))
}

func TestClassifyQuestionKeywords(t *testing.T) {
	tests := []struct {
		question string
		want     models.Category
	}{
		{"Write a function that merges two sorted lists", models.CategoryCoding},
		{"Implement an LRU cache", models.CategoryCoding},
		{"Explain how binary search works", models.CategoryTechnical},
		{"What is the difference between a process and a thread?", models.CategoryTechnical},
		{"Tell me about your role on your last project", models.CategoryExperience},
		{"Tell me about a time you missed a deadline", models.CategoryExperience},
		{"How do you handle conflict in a team?", models.CategorySoftSkills},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyQuestion(tt.question), "question: %s", tt.question)
	}
}

func TestClassifyQuestionKeywordOrder(t *testing.T) {
	// Coding keywords are tested before technical ones, so a question
	// containing both classifies as coding.
	assert.Equal(t, models.CategoryCoding, ClassifyQuestion("Explain your code for the sorting algorithm"))
}

func TestClassifyQuestionDefault(t *testing.T) {
	assert.Equal(t, models.CategorySoftSkills, ClassifyQuestion("Are you a morning person?"))
	assert.Equal(t, models.CategorySoftSkills, ClassifyQuestion(""))
}

func TestFormatQuestionText(t *testing.T) {
	assert.Equal(t, "Write a binary search", FormatQuestionText("[coding] Write a binary search"))
	assert.Equal(t, "Why this company?", FormatQuestionText("  [Soft_Skills] Why this company?  "))
	assert.Equal(t, "No tag here", FormatQuestionText("No tag here"))
}

func TestFormatQuestionTextDoesNotAffectClassification(t *testing.T) {
	original := "[coding] How do you handle conflict in a team?"

	// Classification always runs on the untouched original text.
	assert.Equal(t, models.CategoryCoding, ClassifyQuestion(original))
	assert.Equal(t, models.CategorySoftSkills, ClassifyQuestion(FormatQuestionText(original)))
}
