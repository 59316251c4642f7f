// Command seed writes starter data files into the configured data
// directory: a small chatbot knowledge base, the structured college facts
// used by the prompt composer, and an empty CMS content blob. Existing
// files are left untouched.
package main

import (
	"bytes"
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"college-hub/pkg/config"
	"college-hub/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	if err := os.MkdirAll(cfg.Store.DataDir, 0o755); err != nil {
		appLogger.Fatal("Failed to create data dir", zap.Error(err))
	}

	seeds := map[string]any{
		cfg.Store.ChatbotKBFile: map[string]any{
			"knowledge_base": []map[string]any{
				{
					"category": "Admissions",
					"questions": []map[string]any{
						{
							"keywords": []string{"admission", "apply", "application"},
							"answer":   "Admissions open in May. Visit the <strong>Admissions</strong> page or the college office for the application form.",
						},
						{
							"keywords": []string{"fee", "fees", "cost"},
							"answer":   "Fee details depend on the course. Please contact the college office for the current fee structure.",
						},
					},
				},
				{
					"category": "General",
					"questions": []map[string]any{
						{
							"keywords": []string{"timing", "hours", "open"},
							"answer":   "The college is open <strong>Monday to Saturday, 9:00 AM to 5:00 PM</strong>.",
						},
						{
							"keywords": []string{"contact", "phone", "email"},
							"answer":   "You can reach the office through the <strong>Contact</strong> page of this website.",
						},
					},
				},
			},
		},
		cfg.Store.CollegeInfoFile: map[string]any{
			"college_name": "National College, Bagepalli",
			"established":  "July 1978",
			"managed_by":   "National Education Society of Karnataka (NES)",
		},
		"content.json": map[string]any{},
	}

	for name, payload := range seeds {
		path := filepath.Join(cfg.Store.DataDir, name)
		if _, err := os.Stat(path); err == nil {
			appLogger.Info("File exists, skipping", zap.String("path", path))
			continue
		}

		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(payload); err != nil {
			appLogger.Fatal("Failed to encode seed file", zap.String("path", path), zap.Error(err))
		}
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			appLogger.Fatal("Failed to write seed file", zap.String("path", path), zap.Error(err))
		}
		appLogger.Info("Seeded", zap.String("path", path))
	}

	appLogger.Info("Seeding completed")
}
