package models

type Role string

const (
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

// Special message IDs that mark non-question assistant turns. They never
// become transcript questions.
const (
	MessageIDWelcome = "welcome"
	MessageIDFinal   = "final"
)

// Message is one turn of the interview conversation. Assistant question
// messages carry an ID of the form "q-<index>"; the index keys into the
// response-time map recorded by the client.
type Message struct {
	ID             string          `json:"id"`
	Role           Role            `json:"role"`
	Content        string          `json:"content"`
	Timestamp      int64           `json:"timestamp"`
	QuestionType   Category        `json:"questionType,omitempty"`
	CodeSubmission *CodeSubmission `json:"codeSubmission,omitempty"`
}

// CodeSubmission is attached to a user answer when the candidate used the
// code editor for a coding question.
type CodeSubmission struct {
	Code     string `json:"code"`
	Language string `json:"language"`
	Output   string `json:"output,omitempty"`
}
