package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Tables below are owned by the companion CRUD layer. The gamification
// engine only ever reads them, as counter inputs for challenge progress
// and leaderboard scores.

const (
	EnrollmentCompleted = "completed"

	TrackStandard = "standard"
	TrackK9       = "k9"
)

type TrainingEnrollment struct {
	bun.BaseModel `bun:"table:training_enrollment"`
	ID            string     `bun:"id,pk" json:"id"`
	UserID        string     `bun:"user_id" json:"user_id"`
	LessonID      string     `bun:"lesson_id" json:"lesson_id"`
	Track         string     `bun:"track" json:"track"`
	Status        string     `bun:"status" json:"status"`
	StartedAt     time.Time  `bun:"started_at" json:"started_at"`
	CompletedAt   *time.Time `bun:"completed_at" json:"completed_at"`
}

type DailyTask struct {
	bun.BaseModel `bun:"table:daily_task"`
	ID            string     `bun:"id,pk" json:"id"`
	UserID        string     `bun:"user_id" json:"user_id"`
	Title         string     `bun:"title" json:"title"`
	Date          string     `bun:"date" json:"date"` // YYYY-MM-DD
	IsCompleted   bool       `bun:"is_completed" json:"is_completed"`
	CompletedAt   *time.Time `bun:"completed_at" json:"completed_at"`
}

type HealthRecord struct {
	bun.BaseModel `bun:"table:health_record"`
	ID            string    `bun:"id,pk" json:"id"`
	UserID        string    `bun:"user_id" json:"user_id"`
	RecordType    string    `bun:"record_type" json:"record_type"`
	Title         string    `bun:"title" json:"title"`
	RecordedAt    time.Time `bun:"recorded_at" json:"recorded_at"`
}

type PetState struct {
	bun.BaseModel `bun:"table:pet_state"`
	UserID        string    `bun:"user_id,pk" json:"user_id"`
	XP            int       `bun:"xp" json:"xp"`
	UpdatedAt     time.Time `bun:"updated_at" json:"updated_at"`
}
