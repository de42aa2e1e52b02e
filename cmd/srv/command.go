package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "replant"
	app.Usage = "Mission verification service"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path of the configuration file",
			Value: "config.toml",
		},
	}
	app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start the api server",
			Category:    "Api",
			Description: `Serves the mission, verification, and consensus apis.`,
		},
		{
			Action:      s.startCron,
			Name:        "cron",
			Usage:       "Start the deadline sweeper",
			Category:    "Worker",
			Description: `Runs the cron jobs failing overdue missions.`,
		},
		{
			Action:      s.startMigrate,
			Name:        "migrate",
			Usage:       "Migrate the database schema",
			Category:    "Database",
		},
	}

	s.app = app
}
