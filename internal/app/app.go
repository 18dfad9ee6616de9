// internal/app/app.go (or similar package)
package app

import (
	"database/sql"

	"talentflow/config"

	"github.com/go-playground/validator"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies. RedisClient is nil when the
// optional stats cache is disabled.
type Application struct {
	Config      *config.Config
	DB          *sql.DB
	RedisClient *redis.Client
	Validator   *validator.Validate
}
