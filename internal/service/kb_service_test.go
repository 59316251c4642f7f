package service

import (
	"testing"

	"college-hub/internal/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testKnowledgeBase() *models.KnowledgeBase {
	return &models.KnowledgeBase{
		Categories: []models.Category{
			{
				Category: "Admissions",
				Questions: []models.QuestionEntry{
					{
						Keywords: []string{"admission", "apply"},
						Answer:   "Admissions open in May.",
					},
					{
						Keywords: []string{"fee"},
						Answer:   "Contact the office for fee details.",
					},
				},
			},
			{
				Category: "General",
				Questions: []models.QuestionEntry{
					{
						// Deliberately overlaps with the first category to pin
						// down declaration-order precedence.
						Keywords: []string{"admission", "timing"},
						Answer:   "The office is open 9 to 5.",
					},
				},
			},
		},
	}
}

func TestKBServiceMatch(t *testing.T) {
	s := NewKBService(testKnowledgeBase(), zap.NewNop())

	t.Run("keyword substring matches", func(t *testing.T) {
		answer, ok := s.Match("what are the admission dates")
		assert.True(t, ok)
		assert.Equal(t, "Admissions open in May.", answer)
	})

	t.Run("matching is case insensitive", func(t *testing.T) {
		answer, ok := s.Match("TELL ME ABOUT ADMISSION")
		assert.True(t, ok)
		assert.Equal(t, "Admissions open in May.", answer)
	})

	t.Run("first match wins across categories", func(t *testing.T) {
		// "admission" appears in both categories; the earlier one answers.
		answer, ok := s.Match("admission timing please")
		assert.True(t, ok)
		assert.Equal(t, "Admissions open in May.", answer)
	})

	t.Run("later entries still reachable", func(t *testing.T) {
		answer, ok := s.Match("college timing today")
		assert.True(t, ok)
		assert.Equal(t, "The office is open 9 to 5.", answer)
	})

	t.Run("no keyword means no match", func(t *testing.T) {
		_, ok := s.Match("tell me about the campus library hours")
		assert.False(t, ok)
	})

	t.Run("empty message never matches", func(t *testing.T) {
		_, ok := s.Match("")
		assert.False(t, ok)
	})

	t.Run("empty knowledge base never matches", func(t *testing.T) {
		empty := NewKBService(&models.KnowledgeBase{}, zap.NewNop())
		_, ok := empty.Match("admission")
		assert.False(t, ok)
	})
}
