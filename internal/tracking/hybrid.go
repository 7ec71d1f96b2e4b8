package tracking

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"folio/internal/model"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keySearchHistory = "history:search"
	keyImportQueue   = "queue:import"
	keyJobPrefix     = "import:"
	keyDownload      = "downloads:"
)

// HybridStore keeps short-lived state (search history, import queue) in
// Redis and durable counters in Badger.
type HybridStore struct {
	rdb *redis.Client
	db  *badger.DB
}

// NewHybridStore connects to Redis and opens Badger at badgerPath.
// Pass badgerPath="" to run in "Redis-Only" mode (for CLI tools).
func NewHybridStore(redisAddr string, badgerPath string) (*HybridStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	var db *badger.DB
	if badgerPath != "" {
		opts := badger.DefaultOptions(badgerPath)
		opts.Logger = nil
		var err error
		db, err = badger.Open(opts)
		if err != nil {
			rdb.Close()
			return nil, fmt.Errorf("failed to open badger: %w", err)
		}
	}

	return &HybridStore{rdb: rdb, db: db}, nil
}

func (s *HybridStore) Close() {
	if s.rdb != nil {
		s.rdb.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
}

// AddSearch moves term to the front of the history, keeping HistoryLimit
// distinct entries.
func (s *HybridStore) AddSearch(ctx context.Context, term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	pipe := s.rdb.TxPipeline()
	pipe.LRem(ctx, keySearchHistory, 0, term)
	pipe.LPush(ctx, keySearchHistory, term)
	pipe.LTrim(ctx, keySearchHistory, 0, HistoryLimit-1)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *HybridStore) RecentSearches(ctx context.Context) ([]string, error) {
	terms, err := s.rdb.LRange(ctx, keySearchHistory, 0, HistoryLimit-1).Result()
	if err != nil {
		return nil, err
	}
	return terms, nil
}

func (s *HybridStore) ClearSearches(ctx context.Context) error {
	return s.rdb.Del(ctx, keySearchHistory).Err()
}

// Enqueue stores the job and pushes its id onto the import queue.
func (s *HybridStore) Enqueue(ctx context.Context, job *model.ImportJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}
	pipe := s.rdb.Pipeline()
	pipe.Set(ctx, keyJobPrefix+job.ID.String(), data, 0)
	pipe.LPush(ctx, keyImportQueue, job.ID.String())
	_, err = pipe.Exec(ctx)
	return err
}

// SaveJob overwrites the job record without queueing it.
func (s *HybridStore) SaveJob(ctx context.Context, job *model.ImportJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, keyJobPrefix+job.ID.String(), data, 0).Err()
}

func (s *HybridStore) GetJob(ctx context.Context, id uuid.UUID) (*model.ImportJob, error) {
	val, err := s.rdb.Get(ctx, keyJobPrefix+id.String()).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	var job model.ImportJob
	if err := json.Unmarshal(val, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// PopQueue waits for a job in the Redis queue (Blocking)
func (s *HybridStore) PopQueue(ctx context.Context) (uuid.UUID, error) {
	// 0 means wait forever until an item arrives
	result, err := s.rdb.BRPop(ctx, 0, keyImportQueue).Result()
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(result[1])
}

// RecordDownload increments the counter for format and returns the new
// total.
func (s *HybridStore) RecordDownload(ctx context.Context, format model.CVFormat) (int64, error) {
	if !format.IsValid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if s.db == nil {
		return 0, ErrNoDisk
	}

	key := []byte(keyDownload + string(format))
	var total uint64
	err := s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		switch {
		case errors.Is(err, badger.ErrKeyNotFound):
		case err != nil:
			return err
		default:
			if err := item.Value(func(val []byte) error {
				total = binary.BigEndian.Uint64(val)
				return nil
			}); err != nil {
				return err
			}
		}
		total++
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, total)
		return txn.Set(key, buf)
	})
	if err != nil {
		return 0, err
	}
	return int64(total), nil
}

// Downloads returns the count for every known format, zero included.
func (s *HybridStore) Downloads(ctx context.Context) (map[model.CVFormat]int64, error) {
	if s.db == nil {
		return nil, ErrNoDisk
	}
	counts := make(map[model.CVFormat]int64, len(model.CVFormats))
	for _, f := range model.CVFormats {
		counts[f] = 0
	}

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(keyDownload)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			format := model.CVFormat(strings.TrimPrefix(string(item.Key()), keyDownload))
			if err := item.Value(func(val []byte) error {
				counts[format] = int64(binary.BigEndian.Uint64(val))
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}
