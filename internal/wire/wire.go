package wire

import (
	"Marquee/internal/aggregate"
	"Marquee/internal/api"
	"Marquee/internal/api/config"
	"Marquee/internal/api/handler"
	"Marquee/internal/event"
	"Marquee/internal/job"
	"Marquee/internal/pkg/cron"
	"Marquee/internal/ranking"
	"Marquee/internal/repository"
	"Marquee/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	Bus     *event.Bus
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	bus := event.NewBus()

	movieRepo := repository.NewMovieRepo(db)
	reviewRepo := repository.NewReviewRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	actionRepo := repository.NewReviewActionRepo(db)
	summaryRepo := repository.NewSummaryRepo(db)

	rankingStore := ranking.NewRedisStore()
	rankingService := service.NewRankingService(
		rankingStore,
		reviewRepo,
		summaryRepo,
		cfg.Ranking.Gravity,
		cfg.Ranking.WindowDays,
		cfg.Ranking.Limit,
	)

	movieService := service.NewMovieService(db, bus, movieRepo, summaryRepo)
	reviewService := service.NewReviewService(db, bus, movieRepo, reviewRepo, actionRepo)
	commentService := service.NewCommentService(db, bus, reviewRepo, commentRepo, actionRepo)
	summaryService := service.NewSummaryService(summaryRepo)
	reconcileService := service.NewReconcileService(db, movieRepo, reviewRepo, commentRepo, actionRepo, summaryRepo)

	// 聚合处理器挂到总线上，事件在事务提交后异步消费
	aggregate.NewMovieAggregator(summaryRepo).Register(bus)
	aggregate.NewReviewAggregator(summaryRepo, rankingService).Register(bus)
	aggregate.NewCommentAggregator(summaryRepo).Register(bus)

	handlers := &api.HandlersGroup{
		MovieHandler:   handler.NewMovieHandler(movieService, summaryService),
		ReviewHandler:  handler.NewReviewHandler(reviewService, summaryService, rankingService),
		CommentHandler: handler.NewCommentHandler(commentService, summaryService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(
		cfg.Jobs,
		job.NewMovieReconcileJob(reconcileService),
		job.NewReviewReconcileJob(reconcileService),
		job.NewCommentReconcileJob(reconcileService),
		job.NewRankingRefreshJob(rankingService),
	)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		Bus:     bus,
		CronMgr: cronMgr,
	}, nil
}
