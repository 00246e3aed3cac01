package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"ai-interview-be/internal/entity"
	"ai-interview-be/internal/repository/unitofwork"
	"ai-interview-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.InterviewSessionRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Session Repository", func(t *testing.T) {
		count, err := uow.InterviewSessionRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Session count: %d", count)
	})

	t.Run("Check Transactional Session Lifecycle", func(t *testing.T) {
		// Sessions may be anonymous, but exercise the FK path with a real user.
		userId := uuid.New()
		user := &entity.User{
			Id:       userId,
			Email:    "test-integration-" + uuid.New().String() + "@example.com",
			FullName: "Integration Test User",
			Role:     "user",
			Status:   "active",
		}

		err := uow.UserRepository().Create(context.Background(), user)
		assert.NoError(t, err)

		// Transaction Test
		ctx := context.Background()
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		now := time.Now()
		targetRole := "Backend Engineer"
		sessionId := uuid.New()
		session := &entity.InterviewSession{
			Id:             sessionId,
			UserId:         &userId,
			InterviewType:  entity.InterviewTypeTechnical,
			InterviewMode:  "technical",
			Difficulty:     entity.DifficultyMedium,
			CurrentRound:   1,
			Phase:          "introduction",
			QuestionsAsked: 0,
			MaxQuestions:   5,
			TargetRole:     &targetRole,
			StartedAt:      &now,
		}

		err = uow.InterviewSessionRepository().Create(ctx, session)
		assert.NoError(t, err)

		transcript := &entity.Transcript{
			Id:        uuid.New(),
			SessionId: sessionId,
			Role:      "interviewer",
			Content:   "Welcome! Tell me a bit about yourself.",
			Sequence:  1,
		}

		err = uow.TranscriptRepository().Create(ctx, transcript)
		assert.NoError(t, err)

		evaluation := &entity.Evaluation{
			Id:        uuid.New(),
			SessionId: sessionId,
			Round:     1,
			Score:     78.5,
			Passed:    true,
			Feedback:  "Solid communication, could go deeper on tradeoffs.",
		}

		err = uow.EvaluationRepository().Create(ctx, evaluation)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		// Preloaded read back
		loaded, err := uow.InterviewSessionRepository().GetWithDetails(context.Background(), sessionId)
		assert.NoError(t, err)
		assert.Len(t, loaded.Transcripts, 1)
		assert.Len(t, loaded.Evaluations, 1)

		// Paginated listing
		later := now.Add(time.Minute)
		second := &entity.InterviewSession{
			Id:            uuid.New(),
			UserId:        &userId,
			InterviewType: entity.InterviewTypeBehavioral,
			InterviewMode: "behavioral",
			Difficulty:    entity.DifficultyMedium,
			CurrentRound:  1,
			Phase:         "introduction",
			MaxQuestions:  5,
			StartedAt:     &later,
		}
		err = uow.InterviewSessionRepository().Create(context.Background(), second)
		assert.NoError(t, err)

		page, err := uow.InterviewSessionRepository().GetUserSessions(context.Background(), userId, 1, 0)
		assert.NoError(t, err)
		assert.Len(t, page, 1)

		total, err := uow.InterviewSessionRepository().CountUserSessions(context.Background(), userId)
		assert.NoError(t, err)
		assert.EqualValues(t, 2, total)

		t.Log("Successfully created Session with Transcript and Evaluation in Transaction")
	})
}
