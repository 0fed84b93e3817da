package ledger

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Store is the durable side of the ledger as the mutation service sees
// it. *Repo is the production implementation; tests substitute fakes.
type Store interface {
	ListByOwner(ctx context.Context, ownerID string) ([]Transaction, error)
	Create(ctx context.Context, ownerID string, in CreateInput) (Transaction, error)
	Update(ctx context.Context, ownerID, id string, patch []Field) (bool, error)
	DeleteMany(ctx context.Context, ownerID string, ids []string) (int64, error)
}

// Service validates mutation intents, applies them to the store, and
// keeps the cache coherent by invalidating the owner's entry after
// every successful write. It holds no per-request state; two
// concurrent mutations against the same owner are not serialized here
// and race last-write-wins or not-found depending on arrival order.
type Service struct {
	store        Store
	cache        ListCache
	log          zerolog.Logger
	storeTimeout time.Duration
}

const defaultStoreTimeout = 5 * time.Second

func NewService(store Store, cache ListCache, log zerolog.Logger) *Service {
	return &Service{
		store:        store,
		cache:        cache,
		log:          log,
		storeTimeout: defaultStoreTimeout,
	}
}

// List returns the owner's ordered transactions, cache-aside: cache
// hit wins, a miss reads the store and repopulates the cache. Cache
// failures on either side degrade to "always miss" and never fail the
// read.
func (s *Service) List(ctx context.Context, ownerID string) ([]Transaction, error) {
	if payload, ok := s.cacheGet(ownerID); ok {
		var cached []Transaction
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
		// Unreadable entry: drop it and fall through to the store.
		s.cacheInvalidate(ownerID)
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	list, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		s.log.Error().Err(err).Str("owner_id", ownerID).Msg("list transactions failed")
		return nil, err
	}

	if payload, err := json.Marshal(list); err == nil {
		if err := s.cache.Set(ownerID, payload); err != nil {
			s.log.Warn().Err(err).Str("owner_id", ownerID).Msg("cache set failed")
		}
	}
	return list, nil
}

// Create validates the full schema, inserts the transaction, and
// invalidates the owner's cached list before returning the stored row.
func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (Transaction, error) {
	if verr := validateCreate(in); verr != nil {
		return Transaction{}, verr
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	tx, err := s.store.Create(ctx, ownerID, in)
	if err != nil {
		s.log.Error().Err(err).Str("owner_id", ownerID).Msg("create transaction failed")
		return Transaction{}, err
	}

	s.cacheInvalidate(ownerID)
	return tx, nil
}

// Update validates only the supplied fields and applies them as a
// partial update. A delta that is empty after normalization is a
// successful no-op: nothing is written and the cache stays valid.
func (s *Service) Update(ctx context.Context, ownerID, id string, in UpdateInput) error {
	if verr := validateUpdate(in); verr != nil {
		return verr
	}

	patch := BuildPatch(in)
	if len(patch) == 0 {
		return nil
	}

	// A syntactically impossible id cannot exist, so skip the round trip.
	if uuid.Validate(id) != nil {
		return &NotFoundError{Resource: "transaction"}
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	applied, err := s.store.Update(ctx, ownerID, id, patch)
	if err != nil {
		s.log.Error().Err(err).Str("owner_id", ownerID).Str("id", id).Msg("update transaction failed")
		return err
	}
	if !applied {
		return &NotFoundError{Resource: "transaction"}
	}

	s.cacheInvalidate(ownerID)
	return nil
}

// DeleteBatch deletes the given transactions in one atomic statement.
// An empty id list is rejected as a validation error. Zero matches is
// not-found; a partial match still succeeds, since the missing rows
// are already gone from the caller's point of view.
func (s *Service) DeleteBatch(ctx context.Context, ownerID string, ids []string) error {
	if verr := validateDeleteIDs(ids); verr != nil {
		return verr
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	count, err := s.store.DeleteMany(ctx, ownerID, ids)
	if err != nil {
		s.log.Error().Err(err).Str("owner_id", ownerID).Msg("delete transactions failed")
		return err
	}
	if count == 0 {
		return &NotFoundError{Resource: "transaction"}
	}
	if count < int64(len(ids)) {
		s.log.Warn().
			Str("owner_id", ownerID).
			Int("requested", len(ids)).
			Int64("deleted", count).
			Msg("batch delete matched only part of the id list")
	}

	s.cacheInvalidate(ownerID)
	return nil
}

func (s *Service) cacheGet(ownerID string) ([]byte, bool) {
	payload, ok, err := s.cache.Get(ownerID)
	if err != nil {
		s.log.Warn().Err(err).Str("owner_id", ownerID).Msg("cache get failed, treating as miss")
		return nil, false
	}
	return payload, ok
}

// cacheInvalidate runs after every successful write. It must be
// attempted unconditionally; a failure is logged and swallowed because
// the TTL bounds the staleness window.
func (s *Service) cacheInvalidate(ownerID string) {
	if err := s.cache.Invalidate(ownerID); err != nil {
		s.log.Warn().Err(err).Str("owner_id", ownerID).Msg("cache invalidate failed")
	}
}
