// app/recommend.go
package app

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"suasor/cache"
	"suasor/jobs"
	"suasor/recommend"
	"suasor/recommend/embedding"
	"suasor/recommend/history"
	"suasor/recommend/intent"
	"suasor/recommend/judge"
	"suasor/recommend/lexical"
	"suasor/recommend/multivector"
	"suasor/recommend/pairwise"
	"suasor/recommend/phase"
	"suasor/recommend/profile"
	"suasor/recommend/retrieval"
	"suasor/recommend/textproc"
	"suasor/recommend/vectorindex"
	"suasor/repository"
)

// RecommendDependencies wires the fifteen recommendation components
// (C1-C15), their repository adapters, and the background job layer
// into one recommend.Core, the same db/cache-driven construction style
// Initialize's service registrar uses for the rest of the app. No AI
// client is wired in yet: every component that accepts one already
// falls back to its rule-based path when it is nil (recommend.Core's
// own ai field documents this), so omitting it here only means chat
// lists and judging run rule-based-only until a client is selected.
type RecommendDependencies struct {
	Core        *recommend.Core
	JobHandlers *jobs.Handlers
	Enqueuer    *jobs.Enqueuer
	redisOpt    asynq.RedisClientOpt
}

// InitializeRecommend builds RecommendDependencies over db and redis.
// dataDir holds the dense/multi-vector/lexical index snapshot files.
func InitializeRecommend(ctx context.Context, db *gorm.DB, redisAddr, redisPassword string, redisDB int, dataDir string) (*RecommendDependencies, error) {
	store := cache.New(redisAddr, redisPassword, redisDB)

	dense, err := vectorindex.Load(ctx, dataDir+"/dense_index.gob")
	if err != nil {
		return nil, fmt.Errorf("recommend wiring: loading dense index: %w", err)
	}
	multi, err := multivector.Load(dataDir + "/multivector_index.gob")
	if err != nil {
		return nil, fmt.Errorf("recommend wiring: loading multi-vector index: %w", err)
	}
	lex, err := lexical.NewOnDisk(dataDir + "/lexical_index.bleve")
	if err != nil {
		return nil, fmt.Errorf("recommend wiring: opening lexical index: %w", err)
	}

	encoder := embedding.NewService(0)
	candidates := repository.NewCandidateRepository(db)
	lists := repository.NewCuratedListRepository(db)
	historyStore := history.NewStore(db)
	proc := textproc.NewProcessor()

	profileSvc := profile.New(db, historyStore, candidates, dense)
	phaseDetector := phase.New(db, historyStore, candidates, dense, dense, nil, store)
	retrievalSvc := retrieval.New(encoder, dense, lex, candidates, profileSvc, store, candidates)
	extractor := intent.New(nil, store, proc)
	judgeSvc := judge.New(nil, store)
	ranker := pairwise.NewRanker(nil)
	trainer := pairwise.NewTrainer(db, store, candidates, nil)

	core := recommend.New(
		proc, extractor, encoder, retrievalSvc, dense,
		judgeSvc, ranker, trainer, profileSvc, historyStore,
		phaseDetector, lists, store, nil,
	)

	redisOpt := asynq.RedisClientOpt{Addr: redisAddr, Password: redisPassword, DB: redisDB}
	jobHandlers := jobs.NewHandlers(db, dense, multi, encoder, phaseDetector, trainer, core, store)
	enqueuer := jobs.NewEnqueuer(redisOpt)

	return &RecommendDependencies{
		Core:        core,
		JobHandlers: jobHandlers,
		Enqueuer:    enqueuer,
		redisOpt:    redisOpt,
	}, nil
}

// StartWorker launches the asynq worker server and periodic scheduler
// for the background job layer as background goroutines; it returns
// once both are started, not once they stop.
func (d *RecommendDependencies) StartWorker() error {
	mux := asynq.NewServeMux()
	d.JobHandlers.Register(mux)

	server := asynq.NewServer(d.redisOpt, asynq.Config{Concurrency: 5})
	go func() {
		if err := server.Run(mux); err != nil {
			log.Error().Err(err).Msg("recommend worker: asynq server stopped")
		}
	}()

	scheduler := asynq.NewScheduler(d.redisOpt, nil)
	if err := jobs.RegisterPeriodic(scheduler); err != nil {
		return fmt.Errorf("recommend wiring: registering periodic jobs: %w", err)
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Error().Err(err).Msg("recommend scheduler: stopped")
		}
	}()
	return nil
}

// Close releases the background job enqueuer's redis connection.
func (d *RecommendDependencies) Close() error {
	return d.Enqueuer.Close()
}
