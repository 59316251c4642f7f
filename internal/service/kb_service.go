package service

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"college-hub/internal/models"

	"go.uber.org/zap"
)

// KBService answers common questions from the static FAQ table without
// touching the network.
type KBService struct {
	kb     *models.KnowledgeBase
	logger *zap.Logger
}

func NewKBService(kb *models.KnowledgeBase, logger *zap.Logger) *KBService {
	return &KBService{
		kb:     kb,
		logger: logger,
	}
}

// LoadKnowledgeBase reads the FAQ table from disk. A missing file yields an
// empty knowledge base, so the matcher simply never fires.
func LoadKnowledgeBase(path string) (*models.KnowledgeBase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &models.KnowledgeBase{}, nil
		}
		return nil, fmt.Errorf("read knowledge base: %w", err)
	}

	var kb models.KnowledgeBase
	if err := json.Unmarshal(data, &kb); err != nil {
		return nil, fmt.Errorf("parse knowledge base: %w", err)
	}
	return &kb, nil
}

// Match returns the answer of the first question whose any keyword appears
// as a substring of the message. Categories and questions are scanned in
// declaration order; reordering entries changes behavior.
func (s *KBService) Match(message string) (string, bool) {
	msg := strings.ToLower(message)

	for _, category := range s.kb.Categories {
		for _, q := range category.Questions {
			for _, keyword := range q.Keywords {
				if keyword != "" && strings.Contains(msg, keyword) {
					return q.Answer, true
				}
			}
		}
	}
	return "", false
}
