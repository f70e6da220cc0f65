package services

import (
	"fmt"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildQuestionGenerationPrompt creates the prompt for interview question
// generation from a job description and CV.
func (pb *PromptBuilder) BuildQuestionGenerationPrompt(jobDescription, cvContent string, questionCount, minCodingQuestions int) string {
	return fmt.Sprintf(`You are an expert AI technical interviewer. Based on the following job description and candidate CV,
generate %d relevant interview questions that will help assess the candidate's fit for the role.

The questions should cover:
- Technical and coding skills (at least %d coding-specific questions)
- Relevant experience
- Problem-solving abilities
- System design (if applicable)
- Soft skills and team collaboration

Ensure the coding questions are specific and challenging based on the technologies mentioned in the job description and CV.

Job Description:
%s

Candidate CV:
%s

Return the questions as a JSON array of objects, where each object has the following structure:
{
  "question": "The interview question text",
  "type": "coding" | "technical" | "experience" | "soft_skills"
}

Make sure to properly classify each question as either "coding" (requires writing code), "technical" (knowledge-based), "experience" (about past work), or "soft_skills" (behavioral or team-related).`,
		questionCount, minCodingQuestions, jobDescription, cvContent)
}

// BuildInterviewEvaluationPrompt creates the prompt for scoring a completed
// interview. The transcript and response times are passed pre-serialized.
func (pb *PromptBuilder) BuildInterviewEvaluationPrompt(jobDescription, cvContent, transcriptJSON, responseTimesJSON string, codingQuestionCount int) string {
	return fmt.Sprintf(`You are an expert AI technical interviewer and evaluator. Analyze the following interview transcript
and provide a comprehensive evaluation of the candidate's performance. Check each answer strictly.

Job Description:
%s

Candidate CV:
%s

Interview Transcript:
%s

Response Times (in milliseconds):
%s

Number of coding questions: %d

Provide an evaluation with the following structure:
1. Overall score (0-100)
2. Scores for categories: Technical Acumen, Coding Proficiency, Communication Skills, Responsiveness & Agility, Problem-Solving & Adaptability, Cultural Fit & Soft Skills
3. A summary of the candidate's performance
4. Key strengths (list)
5. Areas for improvement (list)

Return your evaluation as a JSON object with the following structure:
{
  "overallScore": number,
  "categories": {
    "technicalAcumen": number,
    "codingProficiency": number,
    "communicationSkills": number,
    "responsivenessAgility": number,
    "problemSolvingAdaptability": number,
    "culturalFitSoftSkills": number
  },
  "responseTimes": {
    "average": number,
    "fastest": number,
    "slowest": number
  },
  "summary": string,
  "strengths": string[],
  "improvements": string[]
}`,
		jobDescription, cvContent, transcriptJSON, responseTimesJSON, codingQuestionCount)
}
