package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server Server
	Admin  AdminConfig
	JWT    JWTConfig
	Gemini GeminiConfig
	Site   SiteConfig
	Store  StoreConfig
	Logger LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type Server struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type AdminConfig struct {
	Username string
	Password string
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
}

type GeminiConfig struct {
	APIKey    string
	Model     string
	Timeout   time.Duration
	MaxTokens int32
}

// SiteConfig controls the website snapshot cache.
type SiteConfig struct {
	WebsiteURL   string
	CacheTTL     time.Duration
	FetchTimeout time.Duration
	MaxChars     int
}

// StoreConfig points at the directory holding the JSON data files.
type StoreConfig struct {
	DataDir         string
	CollegeInfoFile string
	ChatbotKBFile   string
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	genTimeout, _ := strconv.Atoi(getEnv("GEMINI_TIMEOUT", "30"))
	maxTokens, _ := strconv.Atoi(getEnv("GEMINI_MAX_TOKENS", "500"))
	cacheTTL, _ := strconv.Atoi(getEnv("WEBSITE_CACHE_TTL", "300"))
	fetchTimeout, _ := strconv.Atoi(getEnv("WEBSITE_FETCH_TIMEOUT", "6"))
	maxChars, _ := strconv.Atoi(getEnv("WEBSITE_MAX_CHARS", "8000"))

	return &Config{
		Server: Server{
			Port:         getEnv("SERVER_PORT", "5000"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", "National@2026Secure"),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("SECRET_KEY", "super-secret-key-change-this-in-production"),
			Expiration: time.Duration(jwtExp) * time.Hour,
		},
		Gemini: GeminiConfig{
			APIKey:    getEnv("GEMINI_API_KEY", ""),
			Model:     getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			Timeout:   time.Duration(genTimeout) * time.Second,
			MaxTokens: int32(maxTokens),
		},
		Site: SiteConfig{
			WebsiteURL:   getEnv("COLLEGE_WEBSITE", "https://nationalcollege.ac.in/"),
			CacheTTL:     time.Duration(cacheTTL) * time.Second,
			FetchTimeout: time.Duration(fetchTimeout) * time.Second,
			MaxChars:     maxChars,
		},
		Store: StoreConfig{
			DataDir:         getEnv("DATA_DIR", "."),
			CollegeInfoFile: getEnv("COLLEGE_INFO_FILE", "college_info.json"),
			ChatbotKBFile:   getEnv("CHATBOT_KB_FILE", "chatbot_kb.json"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
