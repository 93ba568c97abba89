package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Records stores one entity kind as JSON documents under a keyspace:
//
//	<ks>:<id>          record
//	<ks>:seq           id counter
//	<ks>:all           set of live ids
//	<ks>:user:<owner>  ids of one owner scored by creation time
type Records[T any] struct {
	client *redis.Client
	ks     Keyspace
	owner  func(*T) int64
}

// NewRecords binds a keyspace. owner may be nil for kinds without an owner index.
func NewRecords[T any](client *redis.Client, ks Keyspace, owner func(*T) int64) *Records[T] {
	return &Records[T]{client: client, ks: ks, owner: owner}
}

func (r *Records[T]) key(id int64) string {
	return r.ks.Key(id)
}

func (r *Records[T]) ownerKey(owner int64) string {
	return r.ks.Key("user", owner)
}

// Get returns nil, nil for a missing id.
func (r *Records[T]) Get(ctx context.Context, id int64) (*T, error) {
	var item T
	found, err := GetJSON(ctx, r.client, r.key(id), &item)
	if err != nil || !found {
		return nil, err
	}
	return &item, nil
}

// Insert allocates the next id, builds the record and writes it with its indexes.
func (r *Records[T]) Insert(ctx context.Context, created time.Time, build func(id int64) T) (*T, error) {
	id, err := r.client.Incr(ctx, r.ks.Key("seq")).Result()
	if err != nil {
		return nil, err
	}
	item := build(id)

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if err := SetJSON(ctx, pipe, r.key(id), &item); err != nil {
			return err
		}
		pipe.SAdd(ctx, r.ks.Key("all"), id)
		if r.owner != nil {
			pipe.ZAdd(ctx, r.ownerKey(r.owner(&item)), redis.Z{
				Score:  float64(created.UnixNano()),
				Member: id,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update merges under WATCH; nil, nil when the id is missing. A changed owner
// moves the id between owner indexes and keeps its creation score.
func (r *Records[T]) Update(ctx context.Context, id int64, mutate func(*T)) (*T, error) {
	var before int64
	item, err := UpdateJSON(ctx, r.client, r.key(id), func(t *T) {
		if r.owner != nil {
			before = r.owner(t)
		}
		mutate(t)
	})
	if err != nil || item == nil || r.owner == nil {
		return item, err
	}
	if after := r.owner(item); after != before {
		if err := r.moveOwner(ctx, id, before, after); err != nil {
			return nil, err
		}
	}
	return item, nil
}

func (r *Records[T]) moveOwner(ctx context.Context, id, from, to int64) error {
	member := strconv.FormatInt(id, 10)
	score, err := r.client.ZScore(ctx, r.ownerKey(from), member).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	if errors.Is(err, redis.Nil) {
		score = float64(time.Now().UnixNano())
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRem(ctx, r.ownerKey(from), member)
		pipe.ZAdd(ctx, r.ownerKey(to), redis.Z{Score: score, Member: member})
		return nil
	})
	return err
}

// Delete removes the record and its index entries.
func (r *Records[T]) Delete(ctx context.Context, id int64) (bool, error) {
	item, err := r.Get(ctx, id)
	if err != nil || item == nil {
		return false, err
	}

	var del *redis.IntCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, r.key(id))
		pipe.SRem(ctx, r.ks.Key("all"), id)
		if r.owner != nil {
			pipe.ZRem(ctx, r.ownerKey(r.owner(item)), id)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return del.Val() > 0, nil
}

// ByOwner returns the owner's records, newest first by index score.
func (r *Records[T]) ByOwner(ctx context.Context, owner int64) ([]*T, error) {
	members, err := r.client.ZRevRange(ctx, r.ownerKey(owner), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	return r.load(ctx, members)
}

// All returns every live record in no particular order.
func (r *Records[T]) All(ctx context.Context) ([]*T, error) {
	members, err := r.client.SMembers(ctx, r.ks.Key("all")).Result()
	if err != nil {
		return nil, err
	}
	return r.load(ctx, members)
}

func (r *Records[T]) load(ctx context.Context, members []string) ([]*T, error) {
	keys := make([]string, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		keys = append(keys, r.key(id))
	}
	return MGetJSON[T](ctx, r.client, keys)
}
