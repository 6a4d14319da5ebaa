package storefront

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	orderdomain "github.com/tair/growshop/internal/order/domain"
	ordercommand "github.com/tair/growshop/internal/order/usecase/command"
)

const (
	BackendJSON     = "json"
	BackendPostgres = "postgres"
)

// Options are the behavioural settings of the storefront
type Options struct {
	DataDir string
	// Backend selects where orders and users live: BackendJSON or BackendPostgres.
	Backend     string
	StockPolicy ordercommand.StockPolicy

	SessionSecret string
	SecureCookies bool

	// ClientStateIdle is how long an untouched cart or wishlist stays in memory.
	ClientStateIdle time.Duration
	RateLimit       int
	RateWindow      time.Duration
	// CacheTTL is how long catalog and content responses stay in Redis.
	CacheTTL    time.Duration
	CORSOrigins []string
}

// Infrastructure holds the external connections. Only the registries are
// required; DB is required for BackendPostgres.
type Infrastructure struct {
	DB        *gorm.DB
	Redis     *redis.Client
	Publisher orderdomain.EventPublisher

	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}
