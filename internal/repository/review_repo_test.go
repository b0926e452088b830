package repository

import (
	"Marquee/internal/model"
	"context"
	"testing"
	"time"
)

func TestSoftDeleteReviewRowsAffected(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepo(db)
	ctx := context.Background()

	review := &model.Review{MovieID: 1, UserID: 1, Rating: 8, Content: "great"}
	if err := repo.CreateReview(ctx, review); err != nil {
		t.Fatalf("create: %v", err)
	}

	rows, err := repo.SoftDeleteReview(ctx, review.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rows != 1 {
		t.Fatalf("rows = %d, want 1", rows)
	}

	// 重复删除不再计入
	rows, err = repo.SoftDeleteReview(ctx, review.ID)
	if err != nil {
		t.Fatalf("delete again: %v", err)
	}
	if rows != 0 {
		t.Fatalf("second delete rows = %d, want 0", rows)
	}

	if _, err := repo.GetReviewByID(ctx, review.ID); err == nil {
		t.Fatal("deleted review still readable")
	}
}

func TestGetRatingSumExcludesDeleted(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepo(db)
	ctx := context.Background()

	ratings := []int{6, 7, 8}
	for _, r := range ratings {
		if err := repo.CreateReview(ctx, &model.Review{MovieID: 9, UserID: 1, Rating: r, Content: "x"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	deleted := &model.Review{MovieID: 9, UserID: 2, Rating: 10, Content: "x"}
	if err := repo.CreateReview(ctx, deleted); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.SoftDeleteReview(ctx, deleted.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	count, err := repo.GetReviewCountByMovieID(ctx, 9)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}

	sum, err := repo.GetRatingSumByMovieID(ctx, 9)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if sum != 21 {
		t.Fatalf("sum = %d, want 21", sum)
	}
}

func TestGetRatingSumEmptyMovie(t *testing.T) {
	repo := NewReviewRepo(newTestDB(t))
	ctx := context.Background()

	sum, err := repo.GetRatingSumByMovieID(ctx, 404)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if sum != 0 {
		t.Fatalf("sum = %d, want 0", sum)
	}
}

func TestListReviewsCreatedSince(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepo(db)
	ctx := context.Background()

	now := time.Now()
	recent := &model.Review{MovieID: 1, UserID: 1, Rating: 8, Content: "x", CreatedAt: now.Add(-24 * time.Hour)}
	stale := &model.Review{MovieID: 1, UserID: 2, Rating: 8, Content: "x", CreatedAt: now.Add(-10 * 24 * time.Hour)}
	for _, r := range []*model.Review{recent, stale} {
		if err := repo.CreateReview(ctx, r); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	reviews, err := repo.ListReviewsCreatedSince(ctx, now.Add(-7*24*time.Hour))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(reviews) != 1 || reviews[0].ID != recent.ID {
		t.Fatalf("got %d reviews, want only the recent one", len(reviews))
	}
}

func TestGetReviewsByIDsFiltersDeleted(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepo(db)
	ctx := context.Background()

	alive := &model.Review{MovieID: 1, UserID: 1, Rating: 8, Content: "x"}
	dead := &model.Review{MovieID: 1, UserID: 2, Rating: 8, Content: "x"}
	for _, r := range []*model.Review{alive, dead} {
		if err := repo.CreateReview(ctx, r); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if _, err := repo.SoftDeleteReview(ctx, dead.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	reviews, err := repo.GetReviewsByIDs(ctx, []uint64{alive.ID, dead.ID})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(reviews) != 1 || reviews[0].ID != alive.ID {
		t.Fatalf("got %d reviews, want only the live one", len(reviews))
	}
}
