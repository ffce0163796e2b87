package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/cloud-ru/mcp-kpr-go/internal/config"
)

const keyPrefix = "kpr:"

// Cache хранит сериализованные результаты инструментов.
// Get возвращает ok=false без ошибки при промахе и ошибку при сбое хранилища.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

// New выбирает реализацию кэша по CACHE_BACKEND
func New(cfg *config.Config) (Cache, error) {
	switch cfg.CacheBackend {
	case "", "none":
		return Noop{}, nil
	case "memory":
		return NewMemory(cfg.CacheTTL), nil
	case "redis":
		return NewRedis(cfg.RedisAddr, cfg.CacheTTL), nil
	default:
		return nil, fmt.Errorf("неизвестный кэш %q", cfg.CacheBackend)
	}
}

// Key строит ключ кэша из имени инструмента и его параметров
func Key(tool string, params any) (string, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return "", err
	}
	return keyPrefix + tool + ":" + strconv.FormatUint(xxhash.Sum64(data), 16), nil
}

// Noop ничего не хранит
type Noop struct{}

func (Noop) Get(context.Context, string) (string, bool, error) { return "", false, nil }
func (Noop) Set(context.Context, string, string) error         { return nil }
