package paginated

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds configuration options for creating a ListPager instance.
type Config struct {
	// Addr is the address (host:port) of the Redis server.
	Addr string

	// Db is the Redis database number to use.
	Db int

	// Password is the optional password for authenticating with the Redis server.
	Password string

	// SiblingsSize and BoundarySize shape the page window returned with each page.
	SiblingsSize int
	BoundarySize int

	// PageSize is used when a Pagination carries no size.
	PageSize int
}

// DefaultConfig returns a Config pointing at a local Redis with the default window sizes.
func DefaultConfig() *Config {
	return &Config{
		Addr:         "127.0.0.1:6379",
		SiblingsSize: DefaultSiblingsSize,
		BoundarySize: DefaultBoundarySize,
		PageSize:     DefaultPageSize,
	}
}

// LoadConfig reads a Config from v. Keys missing from v fall back to
// DefaultConfig, and PAGINATED_* environment variables override both,
// e.g. PAGINATED_REDIS_ADDR for redis.addr.
func LoadConfig(v *viper.Viper) (*Config, error) {
	def := DefaultConfig()
	v.SetDefault("redis.addr", def.Addr)
	v.SetDefault("redis.db", def.Db)
	v.SetDefault("redis.password", def.Password)
	v.SetDefault("pagination.siblings_size", def.SiblingsSize)
	v.SetDefault("pagination.boundary_size", def.BoundarySize)
	v.SetDefault("pagination.page_size", def.PageSize)

	v.SetEnvPrefix("paginated")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Addr:         v.GetString("redis.addr"),
		Db:           v.GetInt("redis.db"),
		Password:     v.GetString("redis.password"),
		SiblingsSize: v.GetInt("pagination.siblings_size"),
		BoundarySize: v.GetInt("pagination.boundary_size"),
		PageSize:     v.GetInt("pagination.page_size"),
	}
	if cfg.SiblingsSize < 0 {
		return nil, fmt.Errorf("pagination.siblings_size must not be negative, got %d", cfg.SiblingsSize)
	}
	if cfg.BoundarySize < 0 {
		return nil, fmt.Errorf("pagination.boundary_size must not be negative, got %d", cfg.BoundarySize)
	}
	if cfg.PageSize < 0 {
		return nil, fmt.Errorf("pagination.page_size must not be negative, got %d", cfg.PageSize)
	}
	return cfg, nil
}
