package services

import (
	"regexp"
	"strings"

	"alfredoptarigan/ai-interviewer/internal/models"
)

// Explicit bracket tags win over any keyword match. Checked in this order.
var categoryTags = []struct {
	tag      string
	category models.Category
}{
	{"[coding]", models.CategoryCoding},
	{"[technical]", models.CategoryTechnical},
	{"[experience]", models.CategoryExperience},
	{"[soft_skills]", models.CategorySoftSkills},
}

// Keyword table, tested in order; the first matching set wins. Anything
// that matches nothing is soft_skills.
var categoryKeywords = []struct {
	keywords []string
	category models.Category
}{
	{
		keywords: []string{
			"write a function",
			"implement",
			"code",
			"algorithm",
			"programming",
			"write code",
			"solve this problem",
		},
		category: models.CategoryCoding,
	},
	{
		keywords: []string{
			"explain",
			"difference between",
			"how does",
			"what is",
			"describe",
		},
		category: models.CategoryTechnical,
	},
	{
		keywords: []string{
			"tell me about a time",
			"previous experience",
			"project",
			"worked on",
			"your role",
		},
		category: models.CategoryExperience,
	},
}

var questionTagPattern = regexp.MustCompile(`(?i)\[(coding|technical|experience|soft_skills)\]`)

// ClassifyQuestion maps a question to its category. Deterministic and total:
// it never fails and always runs on the untouched original text.
func ClassifyQuestion(question string) models.Category {
	questionLower := strings.ToLower(question)

	for _, t := range categoryTags {
		if strings.Contains(questionLower, t.tag) {
			return t.category
		}
	}

	for _, set := range categoryKeywords {
		for _, keyword := range set.keywords {
			if strings.Contains(questionLower, keyword) {
				return set.category
			}
		}
	}

	return models.CategorySoftSkills
}

// FormatQuestionText strips the category tags for display. Classification
// must never run on its output.
func FormatQuestionText(question string) string {
	return strings.TrimSpace(questionTagPattern.ReplaceAllString(question, ""))
}
