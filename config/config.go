package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env string

	Database     DatabaseConfigs
	ApiServer    ServerConfigs
	Auth         AuthConfigs
	Mission      MissionConfigs
	Notification NotificationConfigs
}

type DatabaseConfigs struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func (d DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string
	Port string
	Cert string
	Key  string
}

type AuthConfigs struct {
	TokenSecret string
	AccessToken TokenConfigs

	// AdminIDs lists the subjects allowed to call the admin endpoints.
	AdminIDs []string
}

type TokenConfigs struct {
	Name       string
	Expiration time.Duration
}

type MissionConfigs struct {
	// RequiredApprovals is the number of community approvals needed before a
	// verification post auto-approves its mission. RequiredRejections is the
	// rejection counterpart; crossing it settles the post as rejected.
	RequiredApprovals  int
	RequiredRejections int

	// RecommendationLimit is the maximum number of partners paired per
	// completion.
	RecommendationLimit int

	// RecommendationExpiration is the lifetime of a pairing record.
	RecommendationExpiration time.Duration

	// MealDeadline is how long a subject has to complete a meal mission after
	// logging it.
	MealDeadline time.Duration

	// SweepInterval is the period of the mission expiry cron job. Meal
	// missions are swept at MealSweepInterval since their deadlines are much
	// shorter.
	SweepInterval     time.Duration
	MealSweepInterval time.Duration
}

type NotificationConfigs struct {
	KafkaBrokers []string
	Topic        string
}

// Default returns the configuration used when no value is given by the config
// file or the environment.
func Default() Configs {
	return Configs{
		Env: "local",
		ApiServer: ServerConfigs{
			Host: "localhost",
			Port: "8080",
		},
		Auth: AuthConfigs{
			AccessToken: TokenConfigs{
				Name:       "access_token",
				Expiration: 24 * time.Hour,
			},
		},
		Mission: MissionConfigs{
			RequiredApprovals:        3,
			RequiredRejections:       3,
			RecommendationLimit:      3,
			RecommendationExpiration: 7 * 24 * time.Hour,
			MealDeadline:             2 * time.Hour,
			SweepInterval:            time.Hour,
			MealSweepInterval:        time.Minute,
		},
		Notification: NotificationConfigs{
			Topic: "mission-events",
		},
	}
}
