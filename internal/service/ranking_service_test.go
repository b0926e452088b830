package service

import (
	"Marquee/internal/model"
	"Marquee/internal/pkg/consts"
	"Marquee/internal/ranking"
	"Marquee/internal/repository"
	"context"
	"math"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"
)

// memoryRankingStore 测试用的内存榜单，语义对齐 Redis ZSet
type memoryRankingStore struct {
	mu   sync.Mutex
	sets map[string]map[string]float64
}

func newMemoryRankingStore() *memoryRankingStore {
	return &memoryRankingStore{sets: make(map[string]map[string]float64)}
}

func (s *memoryRankingStore) Upsert(ctx context.Context, key, member string, score float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sets[key] == nil {
		s.sets[key] = make(map[string]float64)
	}
	s.sets[key][member] = score
	return nil
}

func (s *memoryRankingStore) UpsertBatch(ctx context.Context, key string, entries []ranking.Entry) error {
	for _, e := range entries {
		if err := s.Upsert(ctx, key, e.Member, e.Score); err != nil {
			return err
		}
	}
	return nil
}

func (s *memoryRankingStore) Remove(ctx context.Context, key, member string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sets[key], member)
	return nil
}

func (s *memoryRankingStore) TopN(ctx context.Context, key string, n int64) ([]ranking.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]ranking.Entry, 0, len(s.sets[key]))
	for member, score := range s.sets[key] {
		entries = append(entries, ranking.Entry{Member: member, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	if int64(len(entries)) > n {
		entries = entries[:n]
	}
	return entries, nil
}

func (s *memoryRankingStore) score(key, member string) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	score, ok := s.sets[key][member]
	return score, ok
}

func newTestRankingService(t *testing.T, db *gorm.DB, store ranking.Store, now time.Time) *rankingServiceImpl {
	t.Helper()
	svc := NewRankingService(
		store,
		repository.NewReviewRepo(db),
		repository.NewSummaryRepo(db),
		1.8, 7, 50,
	).(*rankingServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func TestUpdateReviewScore(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	store := newMemoryRankingStore()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestRankingService(t, db, store, now)

	review := &model.Review{MovieID: 1, UserID: 1, Rating: 8, Content: "x", CreatedAt: now.Add(-1 * time.Hour)}
	if err := repository.NewReviewRepo(db).CreateReview(ctx, review); err != nil {
		t.Fatalf("create review: %v", err)
	}
	if err := repository.NewSummaryRepo(db).IncrReviewSummary(ctx, review.ID, 3, 0); err != nil {
		t.Fatalf("incr summary: %v", err)
	}

	if err := svc.UpdateReviewScore(ctx, review.ID); err != nil {
		t.Fatalf("update score: %v", err)
	}

	score, ok := store.score(consts.PopularReviewKey, strconv.FormatUint(review.ID, 10))
	if !ok {
		t.Fatal("member not upserted")
	}
	want := 3 / math.Pow(3, 1.8)
	if math.Abs(score-want) > 1e-9 {
		t.Fatalf("score = %v, want %v", score, want)
	}
}

func TestUpdateReviewScoreNoSummaryRow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	store := newMemoryRankingStore()
	now := time.Now()
	svc := newTestRankingService(t, db, store, now)

	review := &model.Review{MovieID: 1, UserID: 1, Rating: 8, Content: "x", CreatedAt: now.Add(-time.Hour)}
	if err := repository.NewReviewRepo(db).CreateReview(ctx, review); err != nil {
		t.Fatalf("create review: %v", err)
	}

	if err := svc.UpdateReviewScore(ctx, review.ID); err != nil {
		t.Fatalf("update score: %v", err)
	}

	// 无汇总行按零赞处理
	score, ok := store.score(consts.PopularReviewKey, strconv.FormatUint(review.ID, 10))
	if !ok || score != 0 {
		t.Fatalf("score = %v ok=%v, want 0 with member present", score, ok)
	}
}

func TestUpdateReviewScoreMissingReviewRemoves(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	store := newMemoryRankingStore()
	svc := newTestRankingService(t, db, store, time.Now())

	_ = store.Upsert(ctx, consts.PopularReviewKey, "42", 0.5)

	if err := svc.UpdateReviewScore(ctx, 42); err != nil {
		t.Fatalf("update score: %v", err)
	}
	if _, ok := store.score(consts.PopularReviewKey, "42"); ok {
		t.Fatal("missing review should be removed from ranking")
	}
}

func TestRemoveReview(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	store := newMemoryRankingStore()
	svc := newTestRankingService(t, db, store, time.Now())

	_ = store.Upsert(ctx, consts.PopularReviewKey, "7", 1.0)
	if err := svc.RemoveReview(ctx, 7); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := store.score(consts.PopularReviewKey, "7"); ok {
		t.Fatal("member still present after remove")
	}
}

func TestRefreshRecentWindow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	store := newMemoryRankingStore()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestRankingService(t, db, store, now)
	reviewRepo := repository.NewReviewRepo(db)
	summaryRepo := repository.NewSummaryRepo(db)

	recent := &model.Review{MovieID: 1, UserID: 1, Rating: 8, Content: "x", CreatedAt: now.Add(-24 * time.Hour)}
	stale := &model.Review{MovieID: 1, UserID: 2, Rating: 8, Content: "x", CreatedAt: now.Add(-10 * 24 * time.Hour)}
	for _, r := range []*model.Review{recent, stale} {
		if err := reviewRepo.CreateReview(ctx, r); err != nil {
			t.Fatalf("create review: %v", err)
		}
		if err := summaryRepo.IncrReviewSummary(ctx, r.ID, 5, 0); err != nil {
			t.Fatalf("incr summary: %v", err)
		}
	}

	count, err := svc.RefreshRecent(ctx)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if count != 1 {
		t.Fatalf("refreshed %d entries, want 1", count)
	}
	if _, ok := store.score(consts.PopularReviewKey, strconv.FormatUint(recent.ID, 10)); !ok {
		t.Fatal("recent review missing from ranking")
	}
	if _, ok := store.score(consts.PopularReviewKey, strconv.FormatUint(stale.ID, 10)); ok {
		t.Fatal("review outside the window should not be refreshed")
	}
}

func TestGetPopularReviewsFiltersDeleted(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	store := newMemoryRankingStore()
	now := time.Now()
	svc := newTestRankingService(t, db, store, now)
	reviewRepo := repository.NewReviewRepo(db)

	var reviews []*model.Review
	for i := 0; i < 3; i++ {
		r := &model.Review{MovieID: 1, UserID: uint64(i + 1), Rating: 8, Content: "x", CreatedAt: now.Add(-time.Hour)}
		if err := reviewRepo.CreateReview(ctx, r); err != nil {
			t.Fatalf("create review: %v", err)
		}
		reviews = append(reviews, r)
		_ = store.Upsert(ctx, consts.PopularReviewKey, strconv.FormatUint(r.ID, 10), float64(3-i))
	}

	// 榜上第二名被软删，读侧要过滤掉
	if _, err := reviewRepo.SoftDeleteReview(ctx, reviews[1].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	out, err := svc.GetPopularReviews(ctx, 10)
	if err != nil {
		t.Fatalf("get popular: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d entries, want 2", len(out))
	}
	if out[0].ReviewID != reviews[0].ID || out[1].ReviewID != reviews[2].ID {
		t.Fatalf("wrong order: %d, %d", out[0].ReviewID, out[1].ReviewID)
	}
	if out[0].Score < out[1].Score {
		t.Fatal("entries not sorted by score desc")
	}
}

func TestGetPopularReviewsLimitClamped(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	store := newMemoryRankingStore()
	now := time.Now()
	svc := newTestRankingService(t, db, store, now)
	svc.maxLimit = 2
	reviewRepo := repository.NewReviewRepo(db)

	for i := 0; i < 4; i++ {
		r := &model.Review{MovieID: 1, UserID: uint64(i + 1), Rating: 8, Content: "x", CreatedAt: now.Add(-time.Hour)}
		if err := reviewRepo.CreateReview(ctx, r); err != nil {
			t.Fatalf("create review: %v", err)
		}
		_ = store.Upsert(ctx, consts.PopularReviewKey, strconv.FormatUint(r.ID, 10), float64(i))
	}

	out, err := svc.GetPopularReviews(ctx, 100)
	if err != nil {
		t.Fatalf("get popular: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d entries, want clamp to 2", len(out))
	}
}
