package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/tortshark/campaign-analyst/internal/config"
	"github.com/tortshark/campaign-analyst/internal/domain"
	"github.com/tortshark/campaign-analyst/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const briefingKeyPrefix = "tortshark:briefing"

// BriefingCache guarda os briefings gerados pelo job de aquecimento
type BriefingCache interface {
	Save(ctx context.Context, briefing *domain.Briefing, ttl time.Duration) error
	// Get retorna nil, nil quando não existe briefing para o dia
	Get(ctx context.Context, workspaceID string, date time.Time) (*domain.Briefing, error)
}

type briefingCache struct {
	client *redis.Client
}

func NewBriefingCache(client *redis.Client) BriefingCache {
	return &briefingCache{client: client}
}

// NewRedisClient abre a conexão com o Redis e valida com um PING
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("erro ao conectar no redis %s: %w", cfg.Addr, err)
	}

	return client, nil
}

func BriefingKey(workspaceID string, date time.Time) string {
	return fmt.Sprintf("%s:%s:%s", briefingKeyPrefix, workspaceID, utils.FormatDate(domain.DateOf(date)))
}

func (c *briefingCache) Save(ctx context.Context, briefing *domain.Briefing, ttl time.Duration) error {
	data, err := json.Marshal(briefing)
	if err != nil {
		return fmt.Errorf("erro ao serializar briefing: %w", err)
	}

	key := BriefingKey(briefing.WorkspaceID, briefing.Date)
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("erro ao salvar briefing %s: %w", key, err)
	}

	return nil
}

func (c *briefingCache) Get(ctx context.Context, workspaceID string, date time.Time) (*domain.Briefing, error) {
	key := BriefingKey(workspaceID, date)

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar briefing %s: %w", key, err)
	}

	var briefing domain.Briefing
	if err := json.Unmarshal(data, &briefing); err != nil {
		return nil, fmt.Errorf("erro ao ler briefing %s: %w", key, err)
	}

	return &briefing, nil
}
