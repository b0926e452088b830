package repository

import (
	"Marquee/internal/model"
	"context"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.Movie{},
		&model.Review{},
		&model.ReviewComment{},
		&model.ReviewLike{},
		&model.CommentLike{},
		&model.MovieSummary{},
		&model.ReviewSummary{},
		&model.CommentSummary{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestIncrMovieSummaryCreatesRow(t *testing.T) {
	repo := NewSummaryRepo(newTestDB(t))
	ctx := context.Background()

	if err := repo.IncrMovieSummary(ctx, 1, 1, 8); err != nil {
		t.Fatalf("incr: %v", err)
	}

	summary, err := repo.GetMovieSummary(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if summary == nil {
		t.Fatal("summary row not created")
	}
	if summary.ReviewCount != 1 || summary.RatingSum != 8 {
		t.Fatalf("got count=%d sum=%d, want count=1 sum=8", summary.ReviewCount, summary.RatingSum)
	}
}

func TestIncrReviewSummaryAccumulates(t *testing.T) {
	repo := NewSummaryRepo(newTestDB(t))
	ctx := context.Background()

	steps := []struct{ like, comment int64 }{
		{1, 0}, {1, 0}, {0, 1}, {-1, 0}, {1, 1},
	}
	for _, s := range steps {
		if err := repo.IncrReviewSummary(ctx, 7, s.like, s.comment); err != nil {
			t.Fatalf("incr: %v", err)
		}
	}

	summary, err := repo.GetReviewSummary(ctx, 7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if summary.LikeCount != 2 || summary.CommentCount != 2 {
		t.Fatalf("got like=%d comment=%d, want like=2 comment=2", summary.LikeCount, summary.CommentCount)
	}
}

func TestIncrReviewSummaryConcurrent(t *testing.T) {
	repo := NewSummaryRepo(newTestDB(t))
	ctx := context.Background()

	const n = 16
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.IncrReviewSummary(ctx, 42, 1, 0)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("incr: %v", err)
		}
	}

	summary, err := repo.GetReviewSummary(ctx, 42)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if summary.LikeCount != n {
		t.Fatalf("lost updates: like=%d, want %d", summary.LikeCount, n)
	}
}

func TestIncrCommentSummaryNegativeDelta(t *testing.T) {
	repo := NewSummaryRepo(newTestDB(t))
	ctx := context.Background()

	if err := repo.IncrCommentSummary(ctx, 3, 2); err != nil {
		t.Fatalf("incr: %v", err)
	}
	if err := repo.IncrCommentSummary(ctx, 3, -1); err != nil {
		t.Fatalf("incr: %v", err)
	}

	summary, err := repo.GetCommentSummary(ctx, 3)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if summary.LikeCount != 1 {
		t.Fatalf("like=%d, want 1", summary.LikeCount)
	}
}

func TestReconcileMovieSummaryOverwrites(t *testing.T) {
	repo := NewSummaryRepo(newTestDB(t))
	ctx := context.Background()

	// 先制造漂移
	if err := repo.IncrMovieSummary(ctx, 5, 99, 999); err != nil {
		t.Fatalf("incr: %v", err)
	}
	err := repo.ReconcileMovieSummary(ctx, &model.MovieSummary{
		MovieID:     5,
		ReviewCount: 3,
		RatingSum:   21,
	})
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	summary, err := repo.GetMovieSummary(ctx, 5)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if summary.ReviewCount != 3 || summary.RatingSum != 21 {
		t.Fatalf("got count=%d sum=%d, want count=3 sum=21", summary.ReviewCount, summary.RatingSum)
	}
}

func TestReconcileReviewSummaryCreatesMissingRow(t *testing.T) {
	repo := NewSummaryRepo(newTestDB(t))
	ctx := context.Background()

	err := repo.ReconcileReviewSummary(ctx, &model.ReviewSummary{
		ReviewID:  11,
		LikeCount: 4,
	})
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	summary, err := repo.GetReviewSummary(ctx, 11)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if summary == nil || summary.LikeCount != 4 {
		t.Fatalf("got %+v, want like=4", summary)
	}
}

func TestGetSummaryMissingReturnsNil(t *testing.T) {
	repo := NewSummaryRepo(newTestDB(t))
	ctx := context.Background()

	summary, err := repo.GetReviewSummary(ctx, 404)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if summary != nil {
		t.Fatalf("got %+v, want nil", summary)
	}
}

func TestListReviewIDsWithSummary(t *testing.T) {
	repo := NewSummaryRepo(newTestDB(t))
	ctx := context.Background()

	for _, id := range []uint64{1, 2, 3} {
		if err := repo.IncrReviewSummary(ctx, id, 1, 0); err != nil {
			t.Fatalf("incr: %v", err)
		}
	}

	ids, err := repo.ListReviewIDsWithSummary(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("got %v, want 3 ids", ids)
	}
}
