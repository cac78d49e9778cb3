package paginated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

// ErrUnexpectedReply is returned when the page script replies with an unexpected shape.
var ErrUnexpectedReply = errors.New("unexpected reply from page script")

func itemsKey(name string) string {
	return fmt.Sprintf("%s:items", name)
}

// ListPager serves pages of Redis lists together with the page window
// a paginated control needs to render around them.
type ListPager struct {
	client redis.UniversalClient
	logger logrus.FieldLogger

	siblingsSize int
	boundarySize int
	pageSize     int
}

// Page is one page of a list.
type Page struct {
	// Items of the requested page, empty when the page is out of range.
	Items []string

	// Total number of items in the list.
	Total int64

	// Window is the page window around the requested page.
	Window Result
}

// NewListPager connects to the Redis server of cfg. A nil cfg means DefaultConfig.
func NewListPager(cfg *Config) (*ListPager, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.Db,
		DialTimeout:  time.Duration(500) * time.Millisecond,
		WriteTimeout: time.Duration(500) * time.Millisecond,
		ReadTimeout:  time.Duration(5000) * time.Millisecond,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed opening connection to redis: %v", err)
	}
	return NewListPagerWithClient(rdb, cfg), nil
}

// NewListPagerWithClient wraps an existing client. Only the window and
// page size settings of cfg are used. A nil cfg means DefaultConfig.
func NewListPagerWithClient(client redis.UniversalClient, cfg *Config) *ListPager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &ListPager{
		client:       client,
		logger:       logrus.StandardLogger(),
		siblingsSize: cfg.SiblingsSize,
		boundarySize: cfg.BoundarySize,
		pageSize:     pageSize,
	}
}

// SetLogger replaces the logger, which defaults to the logrus standard logger.
func (p *ListPager) SetLogger(logger logrus.FieldLogger) {
	p.logger = logger
}

// Push appends items to the end of the named list.
func (p *ListPager) Push(ctx context.Context, name string, items ...string) error {
	if len(items) == 0 {
		return nil
	}
	values := make([]interface{}, len(items))
	for i, item := range items {
		values[i] = item
	}
	if err := p.client.RPush(ctx, itemsKey(name), values...).Err(); err != nil {
		return fmt.Errorf("failed to push items to %s: %v", name, err)
	}
	return nil
}

// Len returns the number of items in the named list.
func (p *ListPager) Len(ctx context.Context, name string) (int64, error) {
	return p.client.LLen(ctx, itemsKey(name)).Result()
}

// Page fetches one page of the named list. The list length and the page
// items are read atomically. A page outside the list yields no items but
// still carries the window computed for it.
func (p *ListPager) Page(ctx context.Context, name string, pgn Pagination) (*Page, error) {
	if pgn.Size <= 0 {
		pgn.Size = p.pageSize
	}
	pgn = pgn.normalize()

	start, stop := int64(-1), int64(-1)
	if pgn.inRange() {
		start, stop = pgn.start(), pgn.stop()
	}

	res, err := pageCmd.Run(ctx, p.client, []string{itemsKey(name)}, start, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("redis eval error: %v", err)
	}

	values, err := cast.ToSliceE(res)
	if err != nil || len(values) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedReply, res)
	}

	total, err := cast.ToInt64E(values[0])
	if err != nil {
		return nil, fmt.Errorf("%w: list length %v", ErrUnexpectedReply, values[0])
	}

	items, err := cast.ToStringSliceE(values[1:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedReply, err)
	}
	if items == nil {
		items = make([]string, 0)
	}

	totalPages := TotalPages(total, int64(pgn.Size))
	window := Compute(Request{
		TotalPages:   int(totalPages),
		CurrentPage:  pgn.Page,
		SiblingsSize: p.siblingsSize,
		BoundarySize: p.boundarySize,
	})

	entry := p.logger.WithFields(logrus.Fields{
		"key":         name,
		"page":        pgn.Page,
		"size":        pgn.Size,
		"total_pages": totalPages,
	})
	if pgn.Page < 1 || int64(pgn.Page) > max(totalPages, 1) {
		entry.Warn("requested page is out of range")
	} else {
		entry.Debug("page fetched")
	}

	return &Page{
		Items:  items,
		Total:  total,
		Window: window,
	}, nil
}

// Clear deletes the named list.
func (p *ListPager) Clear(ctx context.Context, name string) error {
	if err := p.client.Del(ctx, itemsKey(name)).Err(); err != nil {
		return fmt.Errorf("failed to delete list %s: %v", name, err)
	}
	return nil
}

// Close closes the underlying client.
func (p *ListPager) Close() error {
	return p.client.Close()
}
