package models

import "time"

// CuratedList is a user-owned, ordered set of candidate ids: the
// persistence suggest_for_list's ListLookup reads from. Distinct from
// the teacher's client-sync list types in lists.go, which track
// per-client playlist mirrors rather than this core's own candidate ids.
type CuratedList struct {
	ID        uint64 `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID uint64 `json:"userId" gorm:"index"`
	Name   string `json:"name"`

	CandidateIDs []uint64 `json:"candidateIds" gorm:"type:jsonb;serializer:json"`
}

func (CuratedList) TableName() string { return "curated_lists" }
