package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	SMTP      SMTPConfig
	Ai        AIConfig
	Speech    SpeechConfig
	Interview InterviewConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	JWTSecret          string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type AIConfig struct {
	LLMProvider   string // "anthropic", "openai" or "ollama"
	LLMModel      string
	LLMAPIKey     string
	OllamaBaseURL string
}

type SpeechConfig struct {
	STTProvider   string // "deepgram" or "whisper"
	STTFallback   string
	TTSProvider   string // "elevenlabs" or "openai"
	TTSFallback   string
	DeepgramKey   string
	DeepgramModel string
	OpenAIKey     string
	WhisperModel  string
	ElevenLabsKey string
	VoiceID       string
	TTSModel      string
}

type InterviewConfig struct {
	MaxSessions        int
	SessionTTLMinutes  int
	MaxQuestions       int
	HistoryLimit       int
	SentenceMinChars   int
	MaxAudioBytes      int
	MaxCodeChars       int
	StreamingEnabled   bool
	SandboxTimeoutSecs int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			JWTSecret:          getEnv("JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "AI Interview"),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:      getEnv("LLM_MODEL", "llama3"),
			LLMAPIKey:     getEnv("LLM_API_KEY", ""),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
		Speech: SpeechConfig{
			STTProvider:   getEnv("STT_PROVIDER", "deepgram"),
			STTFallback:   getEnv("STT_FALLBACK", "whisper"),
			TTSProvider:   getEnv("TTS_PROVIDER", "elevenlabs"),
			TTSFallback:   getEnv("TTS_FALLBACK", "openai"),
			DeepgramKey:   getEnv("DEEPGRAM_API_KEY", ""),
			DeepgramModel: getEnv("DEEPGRAM_MODEL", "nova-2"),
			OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
			WhisperModel:  getEnv("WHISPER_MODEL", "whisper-1"),
			ElevenLabsKey: getEnv("ELEVENLABS_API_KEY", ""),
			VoiceID:       getEnv("ELEVENLABS_VOICE_ID", "21m00Tcm4TlvDq8ikWAM"),
			TTSModel:      getEnv("TTS_MODEL", "eleven_turbo_v2"),
		},
		Interview: InterviewConfig{
			MaxSessions:        getEnvAsInt("INTERVIEW_MAX_SESSIONS", 100),
			SessionTTLMinutes:  getEnvAsInt("INTERVIEW_SESSION_TTL_MINUTES", 120),
			MaxQuestions:       getEnvAsInt("INTERVIEW_MAX_QUESTIONS", 5),
			HistoryLimit:       getEnvAsInt("INTERVIEW_HISTORY_LIMIT", 20),
			SentenceMinChars:   getEnvAsInt("INTERVIEW_SENTENCE_MIN_CHARS", 15),
			MaxAudioBytes:      getEnvAsInt("INTERVIEW_MAX_AUDIO_BYTES", 10*1024*1024),
			MaxCodeChars:       getEnvAsInt("INTERVIEW_MAX_CODE_CHARS", 20000),
			StreamingEnabled:   getEnvAsBool("INTERVIEW_STREAMING_ENABLED", true),
			SandboxTimeoutSecs: getEnvAsInt("SANDBOX_TIMEOUT_SECONDS", 30),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
