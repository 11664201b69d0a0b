package match

import (
	"context"
	"sort"
	"sync"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// Scorer produces one match verdict per (query, resume) pair. A Scorer
// must be total: any internal failure is absorbed into a tagged fallback
// MatchResult rather than surfacing an error.
type Scorer interface {
	ScoreResume(ctx context.Context, query string, rec engine.ResumeRecord) engine.MatchResult
}

// KeywordScorer is the deterministic rule-based scorer.
type KeywordScorer struct{}

func (KeywordScorer) ScoreResume(_ context.Context, query string, rec engine.ResumeRecord) engine.MatchResult {
	return ScoreResumeKeyword(query, rec)
}

// RankResumes scores every resume against the query with the given
// scorer and returns the results sorted by score descending. Scoring
// runs on a bounded worker pool; the sort is stable so equal scores keep
// their original relative order.
func RankResumes(ctx context.Context, query string, recs []engine.ResumeRecord, scorer Scorer) []engine.RankedResume {
	engine.IncrRankRequests()

	ranked := make([]engine.RankedResume, len(recs))
	workers := engine.Cfg.RankWorkers
	if workers < 1 {
		workers = 1
	}
	if workers > len(recs) {
		workers = len(recs)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				ranked[i] = engine.RankedResume{
					Resume: recs[i],
					Match:  scorer.ScoreResume(ctx, query, recs[i]),
				}
			}
		}()
	}
	for i := range recs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Match.Score > ranked[j].Match.Score
	})
	return ranked
}
