package main

import (
	"context"
	"net/http"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/Replant-Application/Replant-BE-sub001/config"
	"github.com/Replant-Application/Replant-BE-sub001/internal/domain"
	"github.com/Replant-Application/Replant-BE-sub001/internal/domain/notification"
	"github.com/Replant-Application/Replant-BE-sub001/internal/domain/recommend"
	"github.com/Replant-Application/Replant-BE-sub001/internal/domain/reward"
	"github.com/Replant-Application/Replant-BE-sub001/internal/entity"
	"github.com/Replant-Application/Replant-BE-sub001/internal/model"
	"github.com/Replant-Application/Replant-BE-sub001/internal/repository"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/authenticator"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/kafka"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/logger"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/pubsub"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/router"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App
	ctx context.Context

	userRepo           repository.UserRepository
	missionRepo        repository.MissionRepository
	userMissionRepo    repository.UserMissionRepository
	recordRepo         repository.VerificationRecordRepository
	postRepo           repository.VerificationPostRepository
	voteRepo           repository.VerificationVoteRepository
	rewardRepo         repository.MissionRewardRepository
	badgeRepo          repository.BadgeRepository
	mealMissionRepo    repository.MealMissionRepository
	recommendationRepo repository.RecommendationRepository

	userMissionDomain domain.UserMissionDomain
	consensusDomain   domain.ConsensusDomain
	mealMissionDomain domain.MealMissionDomain

	publisher         pubsub.Publisher
	accessTokenEngine authenticator.TokenEngine[model.AccessToken]

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig(cctx *cli.Context) {
	cfg := config.Default()

	path := cctx.String("config")
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			panic(err)
		}
	}

	if secret := os.Getenv("TOKEN_SECRET"); secret != "" {
		cfg.Auth.TokenSecret = secret
	}

	if password := os.Getenv("DATABASE_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}

	s.ctx = xcontext.WithConfigs(context.Background(), cfg)
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if xcontext.Configs(s.ctx).Env == "local" {
		level = logger.DEBUG
	}

	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(level))
}

func (s *srv) loadDatabase() {
	db, err := gorm.Open(mysql.Open(
		xcontext.Configs(s.ctx).Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, db)
}

func (s *srv) migrateDB() {
	if err := entity.MigrateTable(s.ctx); err != nil {
		panic(err)
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.missionRepo = repository.NewMissionRepository()
	s.userMissionRepo = repository.NewUserMissionRepository()
	s.recordRepo = repository.NewVerificationRecordRepository()
	s.postRepo = repository.NewVerificationPostRepository()
	s.voteRepo = repository.NewVerificationVoteRepository()
	s.rewardRepo = repository.NewMissionRewardRepository()
	s.badgeRepo = repository.NewBadgeRepository()
	s.mealMissionRepo = repository.NewMealMissionRepository()
	s.recommendationRepo = repository.NewRecommendationRepository()
}

func (s *srv) loadPublisher() {
	cfg := xcontext.Configs(s.ctx).Notification
	if len(cfg.KafkaBrokers) == 0 {
		s.publisher = pubsub.NewNopPublisher()
		return
	}

	publisher, err := kafka.NewPublisher("mission-service", cfg.KafkaBrokers)
	if err != nil {
		panic(err)
	}

	s.publisher = publisher
}

func (s *srv) loadDomains() {
	dispatcher := notification.NewDispatcher(s.publisher)
	issuer := reward.NewIssuer(s.rewardRepo, s.badgeRepo, s.userRepo)
	engine := recommend.NewEngine(s.userMissionRepo, s.missionRepo, s.recommendationRepo)

	s.userMissionDomain = domain.NewUserMissionDomain(
		s.userMissionRepo, s.missionRepo, s.recordRepo, s.postRepo,
		issuer, engine, dispatcher)
	s.consensusDomain = domain.NewConsensusDomain(
		s.postRepo, s.voteRepo, s.userMissionDomain, dispatcher)
	s.mealMissionDomain = domain.NewMealMissionDomain(s.mealMissionRepo)
}

func (s *srv) loadAccessTokenEngine() {
	s.accessTokenEngine = authenticator.NewTokenEngine[model.AccessToken](
		xcontext.Configs(s.ctx).Auth)
}
