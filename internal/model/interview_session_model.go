package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type InterviewSession struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         *uuid.UUID `gorm:"type:uuid;index"`
	InterviewType  string     `gorm:"type:varchar(50);not null;default:'behavioral'"`
	InterviewMode  string     `gorm:"type:varchar(50);not null;default:'full'"`
	Difficulty     string     `gorm:"type:varchar(20);not null;default:'medium'"`
	CurrentRound   int        `gorm:"not null;default:1"`
	Phase          string     `gorm:"type:varchar(50);not null;default:'introduction'"`
	QuestionsAsked int        `gorm:"not null;default:0"`
	MaxQuestions   int        `gorm:"not null;default:5"`
	TargetRole     *string    `gorm:"type:varchar(200)"`
	ResumeData     datatypes.JSON
	StartedAt      *time.Time
	EndedAt        *time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`

	Transcripts     []Transcript     `gorm:"foreignKey:SessionId;constraint:OnDelete:CASCADE"`
	Evaluations     []Evaluation     `gorm:"foreignKey:SessionId;constraint:OnDelete:CASCADE"`
	CodeSubmissions []CodeSubmission `gorm:"foreignKey:SessionId;constraint:OnDelete:CASCADE"`
}

func (InterviewSession) TableName() string {
	return "interview_sessions"
}

type Transcript struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId uuid.UUID `gorm:"type:uuid;not null;index"`
	Role      string    `gorm:"type:varchar(20);not null"`
	Content   string    `gorm:"type:text;not null"`
	Sequence  int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Transcript) TableName() string {
	return "transcripts"
}

type Evaluation struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Round          int       `gorm:"not null"`
	Score          float64   `gorm:"not null"`
	Passed         bool      `gorm:"not null;default:false"`
	Feedback       string    `gorm:"type:text"`
	DetailedScores datatypes.JSON
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (Evaluation) TableName() string {
	return "evaluations"
}

type CodeSubmission struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId uuid.UUID `gorm:"type:uuid;not null;index"`
	ProblemId string    `gorm:"type:varchar(100);not null"`
	Code      string    `gorm:"type:text;not null"`
	Language  string    `gorm:"type:varchar(30);not null"`
	Correct   *bool
	Score     *float64
	Feedback  *string `gorm:"type:text"`
	Analysis  datatypes.JSON
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (CodeSubmission) TableName() string {
	return "code_submissions"
}
