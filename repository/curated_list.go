package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"suasor/recommend/retrieval"
	"suasor/types/models"
)

// CuratedListRepository resolves a user's curated candidate list for
// suggest_for_list, satisfying recommend.ListLookup.
type CuratedListRepository interface {
	GetListItems(ctx context.Context, listID uint64) (userID uint64, items []retrieval.ListItem, err error)
}

type curatedListRepository struct {
	db *gorm.DB
}

// NewCuratedListRepository builds a CuratedListRepository over db.
func NewCuratedListRepository(db *gorm.DB) CuratedListRepository {
	return &curatedListRepository{db: db}
}

func (r *curatedListRepository) GetListItems(ctx context.Context, listID uint64) (uint64, []retrieval.ListItem, error) {
	var list models.CuratedList
	if err := r.db.WithContext(ctx).First(&list, listID).Error; err != nil {
		return 0, nil, fmt.Errorf("curated list repository: %w", err)
	}
	if len(list.CandidateIDs) == 0 {
		return list.UserID, nil, nil
	}

	var candidates []*models.Candidate
	if err := r.db.WithContext(ctx).Where("id IN ?", list.CandidateIDs).Find(&candidates).Error; err != nil {
		return 0, nil, fmt.Errorf("curated list repository: loading candidates: %w", err)
	}

	items := make([]retrieval.ListItem, len(candidates))
	for i, c := range candidates {
		items[i] = retrieval.ListItem{CandidateID: c.ID, Genres: c.Genres.Slice()}
	}
	return list.UserID, items, nil
}
