package service

import (
	"Marquee/internal/api/dto"
	"Marquee/internal/event"
	"Marquee/internal/model"
	"Marquee/internal/repository"
	"context"
	"errors"
	"sync"
	"testing"

	"gorm.io/gorm"
)

// eventSink 收集投递到总线的事件
type eventSink struct {
	mu     sync.Mutex
	events []event.Event
}

func (s *eventSink) subscribeAll(bus *event.Bus) {
	handler := func(ctx context.Context, e event.Event) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.events = append(s.events, e)
	}
	for _, name := range []string{
		event.MovieReviewed,
		event.ReviewLiked,
		event.ReviewCommented,
		event.ReviewDeleted,
		event.CommentLiked,
	} {
		bus.Subscribe(name, handler)
	}
}

func (s *eventSink) all() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]event.Event, len(s.events))
	copy(out, s.events)
	return out
}

func newTestReviewService(db *gorm.DB, bus *event.Bus) ReviewService {
	return NewReviewService(
		db,
		bus,
		repository.NewMovieRepo(db),
		repository.NewReviewRepo(db),
		repository.NewReviewActionRepo(db),
	)
}

func createTestMovie(t *testing.T, db *gorm.DB) *model.Movie {
	t.Helper()
	movie := &model.Movie{Title: "Solaris"}
	if err := db.Create(movie).Error; err != nil {
		t.Fatalf("create movie: %v", err)
	}
	return movie
}

func TestCreateReviewPublishesAfterCommit(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	bus := event.NewBus()
	sink := &eventSink{}
	sink.subscribeAll(bus)
	svc := newTestReviewService(db, bus)
	movie := createTestMovie(t, db)

	out, err := svc.CreateReview(ctx, 1, movie.ID, &dto.CreateReviewDTO{Rating: 8, Content: "great"})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	if out.ID == 0 || out.Rating != 8 {
		t.Fatalf("unexpected dto: %+v", out)
	}
	bus.Drain()

	events := sink.all()
	if len(events) != 1 {
		t.Fatalf("delivered %d events, want 1", len(events))
	}
	evt, ok := events[0].(event.MovieReviewedEvent)
	if !ok {
		t.Fatalf("unexpected event type %T", events[0])
	}
	if evt.MovieID != movie.ID || evt.ReviewDelta != 1 || evt.RatingDelta != 8 {
		t.Fatalf("unexpected event: %+v", evt)
	}
}

func TestCreateReviewMovieMissing(t *testing.T) {
	db := newTestDB(t)
	bus := event.NewBus()
	svc := newTestReviewService(db, bus)

	_, err := svc.CreateReview(context.Background(), 1, 404, &dto.CreateReviewDTO{Rating: 8, Content: "x"})
	if !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("err = %v, want ErrMovieNotFound", err)
	}
}

func TestDeleteReviewPublishesReversal(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	bus := event.NewBus()
	sink := &eventSink{}
	svc := newTestReviewService(db, bus)
	movie := createTestMovie(t, db)

	out, err := svc.CreateReview(ctx, 1, movie.ID, &dto.CreateReviewDTO{Rating: 8, Content: "x"})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	bus.Drain()
	sink.subscribeAll(bus)

	if err := svc.DeleteReview(ctx, 1, out.ID); err != nil {
		t.Fatalf("delete review: %v", err)
	}
	bus.Drain()

	events := sink.all()
	if len(events) != 2 {
		t.Fatalf("delivered %d events, want 2", len(events))
	}
	reviewed, ok := events[0].(event.MovieReviewedEvent)
	if !ok || reviewed.ReviewDelta != -1 || reviewed.RatingDelta != -8 {
		t.Fatalf("unexpected first event: %+v", events[0])
	}
	if _, ok := events[1].(event.ReviewDeletedEvent); !ok {
		t.Fatalf("unexpected second event: %+v", events[1])
	}

	// 再删一次：影评已不可见
	if err := svc.DeleteReview(ctx, 1, out.ID); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("second delete err = %v, want ErrReviewNotFound", err)
	}
}

func TestDeleteReviewNotOwner(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	bus := event.NewBus()
	svc := newTestReviewService(db, bus)
	movie := createTestMovie(t, db)

	out, err := svc.CreateReview(ctx, 1, movie.ID, &dto.CreateReviewDTO{Rating: 8, Content: "x"})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	bus.Drain()

	if err := svc.DeleteReview(ctx, 2, out.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("err = %v, want ErrNotOwner", err)
	}
}

func TestLikeReviewDuplicateDiscardsEvent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	bus := event.NewBus()
	sink := &eventSink{}
	svc := newTestReviewService(db, bus)
	movie := createTestMovie(t, db)

	out, err := svc.CreateReview(ctx, 1, movie.ID, &dto.CreateReviewDTO{Rating: 8, Content: "x"})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	bus.Drain()
	sink.subscribeAll(bus)

	if err := svc.LikeReview(ctx, 5, out.ID); err != nil {
		t.Fatalf("like: %v", err)
	}
	// 同一用户重复点赞：唯一键冲突，事务回滚，事件不投递
	if err := svc.LikeReview(ctx, 5, out.ID); err == nil {
		t.Fatal("duplicate like should fail")
	}
	bus.Drain()

	likeEvents := 0
	for _, e := range sink.all() {
		if _, ok := e.(event.ReviewLikedEvent); ok {
			likeEvents++
		}
	}
	if likeEvents != 1 {
		t.Fatalf("delivered %d like events, want 1", likeEvents)
	}
}

func TestCancelLikeWithoutExistingLike(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	bus := event.NewBus()
	sink := &eventSink{}
	svc := newTestReviewService(db, bus)
	movie := createTestMovie(t, db)

	out, err := svc.CreateReview(ctx, 1, movie.ID, &dto.CreateReviewDTO{Rating: 8, Content: "x"})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	bus.Drain()
	sink.subscribeAll(bus)

	// 没点过赞，取消是幂等空操作
	if err := svc.CancelLikeReview(ctx, 5, out.ID); err != nil {
		t.Fatalf("cancel like: %v", err)
	}
	bus.Drain()

	if n := len(sink.all()); n != 0 {
		t.Fatalf("delivered %d events, want 0", n)
	}
}
