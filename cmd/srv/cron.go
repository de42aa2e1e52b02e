package main

import (
	"github.com/Replant-Application/Replant-BE-sub001/internal/domain/cron"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startCron(cctx *cli.Context) error {
	s.loadConfig(cctx)
	s.loadLogger()
	s.loadDatabase()
	s.loadRepos()

	cfg := xcontext.Configs(s.ctx).Mission
	manager := cron.NewCronJobManager()
	manager.Start(
		s.ctx,
		cron.NewMissionExpiryCronJob(s.userMissionRepo, cfg.SweepInterval),
		cron.NewMealExpiryCronJob(s.mealMissionRepo, cfg.MealSweepInterval),
	)

	return nil
}
