package paginated

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(viper.New())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFile(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
redis:
  addr: redis:6380
  db: 3
pagination:
  siblings_size: 1
  boundary_size: 0
  page_size: 50
`)))

	cfg, err := LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "redis:6380", cfg.Addr)
	assert.Equal(t, 3, cfg.Db)
	assert.Equal(t, 1, cfg.SiblingsSize)
	assert.Equal(t, 0, cfg.BoundarySize)
	assert.Equal(t, 50, cfg.PageSize)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("PAGINATED_REDIS_ADDR", "cache:6379")
	t.Setenv("PAGINATED_PAGINATION_SIBLINGS_SIZE", "4")

	cfg, err := LoadConfig(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "cache:6379", cfg.Addr)
	assert.Equal(t, 4, cfg.SiblingsSize)
	assert.Equal(t, DefaultBoundarySize, cfg.BoundarySize)
}

func TestLoadConfigNegative(t *testing.T) {
	v := viper.New()
	v.Set("pagination.boundary_size", -1)

	_, err := LoadConfig(v)
	assert.Error(t, err)
}
