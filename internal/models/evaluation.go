package models

// TranscriptEntry pairs an assistant question with the user answer that
// followed it, the recorded response time and the classified question type.
// Entries are derived from the message log and never mutated afterwards.
type TranscriptEntry struct {
	Question     string   `json:"question"`
	Answer       string   `json:"answer"`
	ResponseTime int64    `json:"responseTime"`
	Type         Category `json:"type"`
}

// CategoryScores holds the per-dimension scores (0-100) of an evaluation.
// CodingProficiency is only meaningful when the interview contained coding
// questions.
type CategoryScores struct {
	TechnicalAcumen            float64 `json:"technicalAcumen"`
	CodingProficiency          float64 `json:"codingProficiency,omitempty"`
	CommunicationSkills        float64 `json:"communicationSkills"`
	ResponsivenessAgility      float64 `json:"responsivenessAgility"`
	ProblemSolvingAdaptability float64 `json:"problemSolvingAdaptability"`
	CulturalFitSoftSkills      float64 `json:"culturalFitSoftSkills"`
}

// ResponseTimeStats aggregates the per-question response times in
// milliseconds. When the model omits them they are recomputed locally from
// the recorded values.
type ResponseTimeStats struct {
	Average float64 `json:"average"`
	Fastest float64 `json:"fastest"`
	Slowest float64 `json:"slowest"`
}

// EvaluationResult is the terminal artifact of an interview session.
type EvaluationResult struct {
	OverallScore  float64            `json:"overallScore"`
	Categories    CategoryScores     `json:"categories"`
	ResponseTimes *ResponseTimeStats `json:"responseTimes,omitempty"`
	Summary       string             `json:"summary"`
	Strengths     []string           `json:"strengths"`
	Improvements  []string           `json:"improvements"`
	Transcript    []TranscriptEntry  `json:"transcript,omitempty"`
}
