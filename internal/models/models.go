package models

import (
	"time"
)

// User is the only entity whose fields change across ingestion runs; rating
// and contribution move over time, everything else is write-once.
type User struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Handle           string    `json:"handle" gorm:"size:32;uniqueIndex;not null"`
	Contribution     int       `json:"contribution" gorm:"not null"`
	Rank             Rank      `json:"rank" gorm:"type:smallint;not null"`
	Rating           int       `json:"rating" gorm:"not null"`
	MaxRank          Rank      `json:"max_rank" gorm:"type:smallint;not null"`
	MaxRating        int       `json:"max_rating" gorm:"not null"`
	LastOnlineTime   time.Time `json:"last_online_time" gorm:"not null"`
	RegistrationTime time.Time `json:"registration_time" gorm:"not null"`
	FriendOfCount    int       `json:"friend_of_count" gorm:"not null"`
}

// Contest IDs are assigned upstream.
type Contest struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	StartTime time.Time `json:"start_time" gorm:"not null"`
}

// Problem statements repeat across mirrored contests sharing a start time,
// so name + contest start time is the identity.
type Problem struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"size:128;not null;uniqueIndex:idx_problems_name_start"`
	ContestStartTime time.Time `json:"contest_start_time" gorm:"not null;uniqueIndex:idx_problems_name_start"`
	Rating           *int      `json:"rating"`
	Tags             string    `json:"tags" gorm:"size:255;not null"`
}

type ContestProblem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	ContestID int     `json:"contest_id" gorm:"not null;uniqueIndex:idx_contest_problems_contest_index"`
	Index     string  `json:"index" gorm:"size:8;not null;uniqueIndex:idx_contest_problems_contest_index"`
	ProblemID uint    `json:"problem_id" gorm:"not null"`
	Contest   Contest `json:"contest,omitempty" gorm:"foreignKey:ContestID"`
	Problem   Problem `json:"problem,omitempty" gorm:"foreignKey:ProblemID"`
}

func (ContestProblem) TableName() string {
	return "contest_problems"
}

type RanklistRow struct {
	ID                    uint            `json:"id" gorm:"primaryKey"`
	ContestID             int             `json:"contest_id" gorm:"not null;uniqueIndex:idx_ranklist_contest_user_type"`
	UserID                uint            `json:"user_id" gorm:"not null;uniqueIndex:idx_ranklist_contest_user_type"`
	ParticipantType       ParticipantType `json:"participant_type" gorm:"type:smallint;not null;uniqueIndex:idx_ranklist_contest_user_type"`
	Rank                  int             `json:"rank" gorm:"not null"`
	Points                float64         `json:"points" gorm:"not null"`
	Penalty               int             `json:"penalty" gorm:"not null"`
	SuccessfulHackCount   int             `json:"successful_hack_count" gorm:"not null"`
	UnsuccessfulHackCount int             `json:"unsuccessful_hack_count" gorm:"not null"`
	Contest               Contest         `json:"contest,omitempty" gorm:"foreignKey:ContestID"`
	User                  User            `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

type ProblemResult struct {
	ID                        uint    `json:"id" gorm:"primaryKey"`
	ContestID                 int     `json:"contest_id" gorm:"not null;uniqueIndex:idx_problem_results_contest_user_index"`
	UserID                    uint    `json:"user_id" gorm:"not null;uniqueIndex:idx_problem_results_contest_user_index"`
	ProblemIndex              string  `json:"problem_index" gorm:"size:8;not null;uniqueIndex:idx_problem_results_contest_user_index"`
	Points                    float64 `json:"points" gorm:"not null"`
	Penalty                   int     `json:"penalty" gorm:"not null"`
	RejectedAttemptCount      int     `json:"rejected_attempt_count" gorm:"not null"`
	BestSubmissionTimeSeconds int     `json:"best_submission_time_seconds" gorm:"not null"`
	Contest                   Contest `json:"contest,omitempty" gorm:"foreignKey:ContestID"`
	User                      User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// Hack IDs are assigned upstream.
type Hack struct {
	ID               int64          `json:"id" gorm:"primaryKey;autoIncrement:false"`
	ContestID        int            `json:"contest_id" gorm:"not null;index"`
	ContestProblemID uint           `json:"contest_problem_id" gorm:"not null"`
	HackerID         uint           `json:"hacker_id" gorm:"not null"`
	DefenderID       uint           `json:"defender_id" gorm:"not null"`
	Verdict          HackVerdict    `json:"verdict" gorm:"type:smallint;not null"`
	Contest          Contest        `json:"contest,omitempty" gorm:"foreignKey:ContestID"`
	ContestProblem   ContestProblem `json:"contest_problem,omitempty" gorm:"foreignKey:ContestProblemID"`
	Hacker           User           `json:"hacker,omitempty" gorm:"foreignKey:HackerID"`
	Defender         User           `json:"defender,omitempty" gorm:"foreignKey:DefenderID"`
}

type RatingChange struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ContestID  int       `json:"contest_id" gorm:"not null;uniqueIndex:idx_rating_changes_contest_user"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_rating_changes_contest_user"`
	Rank       int       `json:"rank" gorm:"not null"`
	OldRating  int       `json:"old_rating" gorm:"not null"`
	NewRating  int       `json:"new_rating" gorm:"not null"`
	UpdateTime time.Time `json:"update_time" gorm:"not null"`
	Contest    Contest   `json:"contest,omitempty" gorm:"foreignKey:ContestID"`
	User       User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// Submission IDs are assigned upstream.
type Submission struct {
	ID                  int64           `json:"id" gorm:"primaryKey;autoIncrement:false"`
	ContestID           int             `json:"contest_id" gorm:"not null;index"`
	ContestProblemID    uint            `json:"contest_problem_id" gorm:"not null"`
	AuthorID            uint            `json:"author_id" gorm:"not null;index"`
	ParticipantType     ParticipantType `json:"participant_type" gorm:"type:smallint;not null"`
	ProgrammingLanguage string          `json:"programming_language" gorm:"size:64;not null"`
	Verdict             Verdict         `json:"verdict" gorm:"type:smallint;not null"`
	Testset             Testset         `json:"testset" gorm:"type:smallint;not null"`
	PassedTestCount     int             `json:"passed_test_count" gorm:"not null"`
	TimeConsumedMillis  int             `json:"time_consumed_millis" gorm:"not null"`
	MemoryConsumedBytes int64           `json:"memory_consumed_bytes" gorm:"not null"`
	Contest             Contest         `json:"contest,omitempty" gorm:"foreignKey:ContestID"`
	ContestProblem      ContestProblem  `json:"contest_problem,omitempty" gorm:"foreignKey:ContestProblemID"`
	Author              User            `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

// All returns every model in migration order: referenced tables first.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Contest{},
		&Problem{},
		&ContestProblem{},
		&RanklistRow{},
		&ProblemResult{},
		&Hack{},
		&RatingChange{},
		&Submission{},
	}
}
