package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrGeneratorDisabled means no generation capability was configured.
	ErrGeneratorDisabled = errors.New("chat generation is not configured")
	// ErrGenerationFailed wraps any failure of the generation call.
	ErrGenerationFailed = errors.New("chat generation failed")
)

const promptForInputReply = "Please ask something about the college 😊"

// ChatService resolves a free-text question by layering the keyword
// matcher, the website snapshot cache and the generative model, in that
// order. Each layer is terminal on success.
type ChatService struct {
	kb        *KBService
	snapshot  *SnapshotService
	generator Generator
	factsJSON string
	logger    *zap.Logger
}

// NewChatService wires the pipeline. A nil generator marks the capability
// as absent; Answer then fails fast with ErrGeneratorDisabled. The college
// facts are serialized once since they are immutable after load.
func NewChatService(kb *KBService, snapshot *SnapshotService, generator Generator, facts map[string]any, logger *zap.Logger) *ChatService {
	factsJSON := "{}"
	if data, err := marshalFacts(facts); err == nil {
		factsJSON = string(data)
	} else {
		logger.Warn("Failed to serialize college info", zap.Error(err))
	}

	return &ChatService{
		kb:        kb,
		snapshot:  snapshot,
		generator: generator,
		factsJSON: factsJSON,
		logger:    logger,
	}
}

// Answer runs the resolution pipeline. The capability check comes first,
// before even the matcher, so an unconfigured deployment surfaces as
// disabled instead of silently answering a subset of questions.
func (s *ChatService) Answer(ctx context.Context, message string) (string, error) {
	if s.generator == nil {
		return "", ErrGeneratorDisabled
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return promptForInputReply, nil
	}

	if answer, ok := s.kb.Match(message); ok {
		s.logger.Debug("Answered from knowledge base")
		return answer, nil
	}

	prompt := composePrompt(s.factsJSON, s.snapshot.Get(ctx), message)
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("Generation failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return text, nil
}

// composePrompt merges the structured facts, the snapshot text and the user
// question into labeled sections. Deterministic; no truncation beyond what
// the snapshot cache already applied.
func composePrompt(factsJSON, websiteData, question string) string {
	return fmt.Sprintf("College Info: %s\nWebsite Data: %s\nUser Question: %s", factsJSON, websiteData, question)
}

// LoadCollegeInfo reads the structured facts handed to the prompt
// composer. A missing file yields an empty map.
func LoadCollegeInfo(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("read college info: %w", err)
	}

	var info map[string]any
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("parse college info: %w", err)
	}
	return info, nil
}

func marshalFacts(facts map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(facts); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
