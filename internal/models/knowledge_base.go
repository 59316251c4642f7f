package models

// KnowledgeBase is the static FAQ table consulted by the chat widget.
// It is loaded once at startup and never mutated afterwards.
type KnowledgeBase struct {
	Categories []Category `json:"knowledge_base"`
}

type Category struct {
	Category  string          `json:"category"`
	Questions []QuestionEntry `json:"questions"`
}

type QuestionEntry struct {
	Keywords []string `json:"keywords"`
	Answer   string   `json:"answer"`
}
