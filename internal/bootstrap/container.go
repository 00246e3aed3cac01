package bootstrap

import (
	"context"
	"log"
	"time"

	"ai-interview-be/internal/config"
	"ai-interview-be/internal/controller"
	"ai-interview-be/internal/pkg/logger"
	"ai-interview-be/internal/pkg/mailer"
	"ai-interview-be/internal/repository/unitofwork"
	"ai-interview-be/internal/service"
	"ai-interview-be/internal/websocket"
	"ai-interview-be/pkg/coding"
	"ai-interview-be/pkg/coding/sandbox"
	"ai-interview-be/pkg/interview"
	llmfactory "ai-interview-be/pkg/llm/factory"
	"ai-interview-be/pkg/resume"
	speechfactory "ai-interview-be/pkg/speech/factory"

	pktNats "ai-interview-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// transcriptTopic feeds the async persistence consumer; the voice loop
// publishes here instead of writing to the database directly.
const transcriptTopic = "interview.transcripts"

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	UserController    controller.IUserController
	SessionController controller.ISessionController
	ResumeController  controller.IResumeController

	// WebSocket protocol handler
	InterviewHandler *websocket.Handler

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis (sandbox code-execution queue)
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 3. AI Providers
	llmProvider, err := llmfactory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.LLMAPIKey,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	interviewLogger := logger.NewIsolatedLogger("logs/interview.log")

	speechCfg := speechfactory.Config{
		STTProvider:       cfg.Speech.STTProvider,
		STTFallback:       cfg.Speech.STTFallback,
		TTSProvider:       cfg.Speech.TTSProvider,
		TTSFallback:       cfg.Speech.TTSFallback,
		DeepgramAPIKey:    cfg.Speech.DeepgramKey,
		DeepgramModel:     cfg.Speech.DeepgramModel,
		OpenAIAPIKey:      cfg.Speech.OpenAIKey,
		WhisperModel:      cfg.Speech.WhisperModel,
		TTSModel:          cfg.Speech.TTSModel,
		TTSVoice:          "alloy",
		ElevenLabsAPIKey:  cfg.Speech.ElevenLabsKey,
		ElevenLabsVoiceID: cfg.Speech.VoiceID,
		ElevenLabsModelID: cfg.Speech.TTSModel,
	}
	transcriber, err := speechfactory.NewTranscriber(speechCfg, interviewLogger)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize transcriber: %v", err)
	}
	synthesizer, err := speechfactory.NewSynthesizer(speechCfg, interviewLogger)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize synthesizer: %v", err)
	}
	log.Printf("[INFO] Using STT: %s (fallback %s), TTS: %s (fallback %s)",
		cfg.Speech.STTProvider, cfg.Speech.STTFallback, cfg.Speech.TTSProvider, cfg.Speech.TTSFallback)

	// 4. Interview Engine
	registry := interview.NewRegistry(
		cfg.Interview.MaxSessions,
		time.Duration(cfg.Interview.SessionTTLMinutes)*time.Minute,
		cfg.Interview.MaxQuestions,
		cfg.Interview.HistoryLimit,
		interviewLogger,
	)
	pipeline := interview.NewPipeline(
		transcriber,
		synthesizer,
		llmProvider,
		cfg.Interview.SentenceMinChars,
		16,
		interviewLogger,
	)
	roundEvaluator := interview.NewEvaluator(llmProvider, interviewLogger)
	problemSelector := coding.NewSelector(interviewLogger)
	codeEvaluator := coding.NewEvaluator(llmProvider, interviewLogger)
	sandboxExecutor := sandbox.NewExecutor(
		rdb,
		time.Duration(cfg.Interview.SandboxTimeoutSecs)*time.Second,
		interviewLogger,
	)
	resumeParser := resume.NewParser(llmProvider, sysLogger)

	// 5. Services
	publisherService := service.NewPublisherService(pubSub, transcriptTopic)
	consumerService := service.NewConsumerService(pubSub, transcriptTopic, uowFactory)

	userService := service.NewUserService(uowFactory, natsPub)
	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	interviewService := service.NewInterviewService(uowFactory, publisherService, natsPub, emailService)

	// 6. Protocol Handler
	interviewHandler := websocket.NewHandler(
		registry,
		pipeline,
		llmProvider,
		synthesizer,
		roundEvaluator,
		problemSelector,
		codeEvaluator,
		sandboxExecutor,
		interviewService,
		cfg.Interview,
		cfg.App.JWTSecret,
		interviewLogger,
	)

	// 7. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(authService),
		UserController:    controller.NewUserController(userService),
		SessionController: controller.NewSessionController(interviewService),
		ResumeController:  controller.NewResumeController(resumeParser),

		InterviewHandler: interviewHandler,

		ConsumerService: consumerService,
	}
}
