package models

import "time"

type PhaseType string

const (
	PhaseActive     PhaseType = "active"
	PhaseMinor      PhaseType = "minor"
	PhaseHistorical PhaseType = "historical"
)

// ViewingPhase is a labeled, scored time window during which a user's
// watch history clustered semantically (C15).
type ViewingPhase struct {
	ID        uint64 `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID uint64 `json:"userId" gorm:"index"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`

	StartAt time.Time  `json:"startAt"`
	EndAt   *time.Time `json:"endAt,omitempty"`

	Members         Uint64Slice `json:"members" gorm:"type:jsonb;serializer:json"`
	DominantGenres  []string    `json:"dominantGenres,omitempty" gorm:"type:jsonb;serializer:json"`
	DominantKeywords []string   `json:"dominantKeywords,omitempty" gorm:"type:jsonb;serializer:json"`

	FranchiseID   string `json:"franchiseId,omitempty"`
	FranchiseName string `json:"franchiseName,omitempty"`

	Cohesion            float64 `json:"cohesion"`
	WatchDensity        float64 `json:"watchDensity"`
	FranchiseDominance  float64 `json:"franchiseDominance"`
	ThematicConsistency float64 `json:"thematicConsistency"`
	PhaseScore          float64 `json:"phaseScore"`

	PhaseType   PhaseType `json:"phaseType" gorm:"type:varchar(12)"`
	Explanation string    `json:"explanation,omitempty" gorm:"type:text"`

	RepresentativePosters []string `json:"representativePosters,omitempty" gorm:"type:jsonb;serializer:json"`
}

func (ViewingPhase) TableName() string { return "viewing_phases" }

// IsActive reports whether a phase is currently open.
func (p *ViewingPhase) IsActive() bool { return p.EndAt == nil }

// Window returns the phase's closed interval, substituting now for a nil
// EndAt, per spec §8's invariant on active-phase membership.
func (p *ViewingPhase) Window(now time.Time) (time.Time, time.Time) {
	if p.EndAt != nil {
		return p.StartAt, *p.EndAt
	}
	return p.StartAt, now
}
