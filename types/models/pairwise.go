package models

import (
	"encoding/json"
	"time"
)

type PairwiseSessionStatus string

const (
	PairwiseSessionActive    PairwiseSessionStatus = "active"
	PairwiseSessionCompleted PairwiseSessionStatus = "completed"
	PairwiseSessionAbandoned PairwiseSessionStatus = "abandoned"
)

// PairwiseSession is one user-feedback task: a sequence of A/B candidate
// comparisons used to update the user's taste state (C13).
type PairwiseSession struct {
	ID        uint64 `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID   uint64 `json:"userId" gorm:"index"`
	Prompt   string `json:"prompt"`
	ListType string `json:"listType"`

	// CandidatePool is the snapshot of candidate IDs the session samples
	// pairs from; frozen at session creation so the pool can't shift
	// under the user mid-session.
	CandidatePool Uint64Slice `json:"candidatePool" gorm:"type:jsonb;serializer:json"`

	TotalPairs     int                   `json:"totalPairs"`
	CompletedPairs int                   `json:"completedPairs"`
	Status         PairwiseSessionStatus `json:"status" gorm:"type:varchar(20);default:active"`
	StartedAt      time.Time             `json:"startedAt"`

	// JudgedPairs tracks unordered (a,b) pairs already served by next_pair
	// so the round-robin never repeats one within a session.
	JudgedPairs JudgedPairSet `json:"-" gorm:"type:jsonb;serializer:json"`
}

func (PairwiseSession) TableName() string { return "pairwise_sessions" }

// Uint64Slice is a JSON-serializable []uint64.
type Uint64Slice []uint64

type JudgedPairSet map[string]struct{}

func PairKey(a, b uint64) string {
	if a > b {
		a, b = b, a
	}
	buf, _ := json.Marshal([2]uint64{a, b})
	return string(buf)
}

type PairwiseWinner string

const (
	WinnerA       PairwiseWinner = "a"
	WinnerB       PairwiseWinner = "b"
	WinnerSkip    PairwiseWinner = "skip"
	WinnerBoth    PairwiseWinner = "both"
	WinnerNeither PairwiseWinner = "neither"
)

// PairwiseJudgment records one A/B decision within a session.
type PairwiseJudgment struct {
	ID        uint64 `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time

	SessionID     uint64         `json:"sessionId" gorm:"index"`
	CandidateA    uint64         `json:"candidateA"`
	CandidateB    uint64         `json:"candidateB"`
	Winner        PairwiseWinner `json:"winner" gorm:"type:varchar(10)"`
	Confidence    *float64       `json:"confidence,omitempty"`
	ResponseTimeMs int           `json:"responseTimeMs,omitempty"`
	Explanation   string         `json:"explanation,omitempty" gorm:"type:text"`
}

func (PairwiseJudgment) TableName() string { return "pairwise_judgments" }

// PersonaDelta is one rolling micro-update summarizing a completed
// session, kept as the last 10 per user (§4.13).
type PersonaDelta struct {
	ID        uint64 `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time

	UserID    uint64 `json:"userId" gorm:"index"`
	SessionID uint64 `json:"sessionId"`
	Summary   string `json:"summary" gorm:"type:text"`
}

func (PersonaDelta) TableName() string { return "persona_deltas" }
