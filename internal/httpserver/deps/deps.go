package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/thoth-pub/cc-license/internal/catalog"
	"github.com/thoth-pub/cc-license/internal/logger"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	RedisClient   *redis.Client    // Redis client for usage stats (nil = stats disabled)
	Catalog       *catalog.Catalog // Jurisdiction display names (nil = catalog disabled)
	ReloadTrigger chan struct{}    // Channel to trigger manual catalog reload (nil if catalog disabled)
}
