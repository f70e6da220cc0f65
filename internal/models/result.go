package models

type GenerateQuestionsRequest struct {
	JobDescription string `json:"jobDescription" validate:"required"`
	CVContent      string `json:"cvContent" validate:"required"`
}

type GenerateQuestionsResponse struct {
	Success   bool     `json:"success"`
	Questions []string `json:"questions"`
}

type AnalyzeInterviewRequest struct {
	Messages       []Message     `json:"messages" validate:"required"`
	ResponseTimes  map[int]int64 `json:"responseTimes" validate:"required"`
	JobDescription string        `json:"jobDescription"`
	CVContent      string        `json:"cvContent"`
}

type AnalyzeInterviewResponse struct {
	Success bool              `json:"success"`
	Results *EvaluationResult `json:"results"`
}

type ParseCVResponse struct {
	Success  bool   `json:"success"`
	FileName string `json:"fileName"`
	Content  string `json:"content"`
}

type RunCodeRequest struct {
	Code     string `json:"code" validate:"required"`
	Language string `json:"language" validate:"required"`
}

type RunCodeResponse struct {
	Success    bool   `json:"success"`
	Output     string `json:"output"`
	Simulated  bool   `json:"simulated"`
	DurationMs int64  `json:"duration_ms"`
}
