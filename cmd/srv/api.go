package main

import (
	"fmt"
	"net/http"

	"github.com/Replant-Application/Replant-BE-sub001/internal/middleware"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/router"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(cctx *cli.Context) error {
	s.loadConfig(cctx)
	s.loadLogger()
	s.loadDatabase()
	s.loadRepos()
	s.loadPublisher()
	s.loadDomains()
	s.loadAccessTokenEngine()
	s.loadRouter()

	cfg := xcontext.Configs(s.ctx).ApiServer
	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler: s.router.Handler(),
	}

	xcontext.Logger(s.ctx).Infof("Starting api server on port %s", cfg.Port)
	if err := s.server.ListenAndServe(); err != nil {
		return err
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)
	s.router.Use(middleware.Logger())

	authRouter := s.router.Group("/")
	authRouter.Use(middleware.Authenticate(s.accessTokenEngine))
	{
		// Mission API
		router.POST(authRouter, "/assignMission", s.userMissionDomain.Assign)
		router.POST(authRouter, "/verifyMission", s.userMissionDomain.Verify)
		router.GET(authRouter, "/getUserMission", s.userMissionDomain.Get)
		router.GET(authRouter, "/getListUserMission", s.userMissionDomain.GetList)

		// Consensus API
		router.POST(authRouter, "/castVote", s.consensusDomain.CastVote)
		router.GET(authRouter, "/getPendingPosts", s.consensusDomain.GetPendingPosts)

		// Meal API
		router.POST(authRouter, "/logMeal", s.mealMissionDomain.Log)
		router.POST(authRouter, "/completeMeal", s.mealMissionDomain.Complete)
	}

	adminRouter := authRouter.Group("/admin")
	adminRouter.Use(middleware.OnlyAdmin())
	{
		router.POST(adminRouter, "/forceApproveMission", s.userMissionDomain.ForceApprove)
	}
}
