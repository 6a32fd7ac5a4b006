package cart

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	pkgerrors "github.com/mannyautos/storefront-backend/pkg/errors"
	"github.com/mannyautos/storefront-backend/pkg/logger"
	"github.com/mannyautos/storefront-backend/pkg/redis"
)

// VariantSnapshot freezes the purchasable configuration at add-time. The
// catalog never changes at runtime, but the snapshot keeps cart lines
// self-contained regardless.
type VariantSnapshot struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  int    `json:"year"`
	Price int64  `json:"price"`
}

// Line is one cart entry: a weak part reference plus the frozen variant and
// a quantity.
type Line struct {
	PartID  int             `json:"part_id"`
	Variant VariantSnapshot `json:"variant"`
	Qty     int             `json:"qty"`
}

// Mergeable reports whether two lines refer to the same part in the same
// configuration and may be collapsed by summing quantities.
func (l Line) Mergeable(other Line) bool {
	return l.PartID == other.PartID && l.Variant == other.Variant
}

// Store is the persistence capability behind the cart service. Load returns
// an empty list for sessions that have never saved.
type Store interface {
	Load(ctx context.Context, sessionID string) ([]Line, error)
	Save(ctx context.Context, sessionID string, lines []Line) error
}

// DecodeLines parses a persisted cart payload. Malformed payloads decode to
// an empty cart: corrupt storage must never break the session.
func DecodeLines(raw []byte) []Line {
	if len(raw) == 0 {
		return []Line{}
	}
	var lines []Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		return []Line{}
	}
	if lines == nil {
		return []Line{}
	}
	return lines
}

// EncodeLines serializes a cart for storage.
func EncodeLines(lines []Line) ([]byte, error) {
	if lines == nil {
		lines = []Line{}
	}
	return json.Marshal(lines)
}

// RedisStore persists carts under one namespaced key per session.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps the shared redis client.
func NewRedisStore(client *redis.Client, ttl time.Duration) (*RedisStore, error) {
	if client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "redis client is required")
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) ([]Line, error) {
	raw, err := s.client.Get(ctx, s.client.CartKey(sessionID))
	if err != nil {
		if err == redis.Nil {
			return []Line{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, "load cart")
	}
	return DecodeLines([]byte(raw)), nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, lines []Line) error {
	payload, err := EncodeLines(lines)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodePersistence, err, "encode cart")
	}
	if err := s.client.Set(ctx, s.client.CartKey(sessionID), payload, s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodePersistence, err, "save cart")
	}
	return nil
}

// MemoryStore keeps carts in process memory. It backs tests and the degraded
// mode when redis is down or not configured.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string][]Line
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]Line)}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) ([]Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines, ok := s.carts[sessionID]
	if !ok {
		return []Line{}, nil
	}
	out := make([]Line, len(lines))
	copy(out, lines)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, lines []Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]Line, len(lines))
	copy(stored, lines)
	s.carts[sessionID] = stored
	return nil
}

// DegradingStore tries the primary store and falls back to an in-memory copy
// when persistence is unavailable. Failures are logged, never surfaced: the
// session keeps a working cart for its remaining lifetime.
type DegradingStore struct {
	primary  Store
	fallback *MemoryStore
	logg     *logger.Logger
}

func NewDegradingStore(primary Store, logg *logger.Logger) *DegradingStore {
	return &DegradingStore{
		primary:  primary,
		fallback: NewMemoryStore(),
		logg:     logg,
	}
}

func (s *DegradingStore) Load(ctx context.Context, sessionID string) ([]Line, error) {
	lines, err := s.primary.Load(ctx, sessionID)
	if err == nil {
		// keep the fallback warm so a later outage serves current data
		_ = s.fallback.Save(ctx, sessionID, lines)
		return lines, nil
	}
	if s.logg != nil {
		s.logg.Error(s.logg.WithSessionID(ctx, sessionID), "cart storage unavailable, serving in-memory copy", err)
	}
	return s.fallback.Load(ctx, sessionID)
}

func (s *DegradingStore) Save(ctx context.Context, sessionID string, lines []Line) error {
	_ = s.fallback.Save(ctx, sessionID, lines)
	if err := s.primary.Save(ctx, sessionID, lines); err != nil {
		if s.logg != nil {
			s.logg.Error(s.logg.WithSessionID(ctx, sessionID), "cart storage unavailable, keeping in-memory copy", err)
		}
	}
	return nil
}
