/*
Package redisstore saves trained trees on a redis DB and loads them back.

A tree is stored under two keys sharing a prefix: "<prefix>:metadata" holds
the YAML metadata describing its features and "<prefix>:tree" holds the
tree itself serialized as JSON.
*/
package redisstore

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pbanos/id3/feature/yaml"
	"github.com/pbanos/id3/tree"
	"github.com/pbanos/id3/tree/json"
	"gopkg.in/redis.v5"
)

// StoreError represents an error related with a tree store
type StoreError string

// ErrNotFound is the error returned when loading a tree that has never been saved
const ErrNotFound = StoreError("no tree stored under prefix")

func (se StoreError) Error() string {
	return string(se)
}

// Store saves and loads a tree under a key prefix of a redis DB
type Store struct {
	rc     *redis.Client
	prefix string
}

// New builds a Store backed by the given redis client and key prefix
func New(rc *redis.Client, prefix string) *Store {
	return &Store{rc, prefix}
}

// Open connects to the redis server at addr and returns a Store with the
// given prefix after checking the server answers.
func Open(addr, prefix string) (*Store, error) {
	rc := redis.NewClient(&redis.Options{Addr: addr})
	err := rc.Ping().Err()
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %v", addr, err)
	}
	return New(rc, prefix), nil
}

// Close releases the redis client of the store
func (rs *Store) Close() error {
	return rs.rc.Close()
}

// Save stores the metadata and the tree, replacing any tree previously saved
// under the same prefix.
func (rs *Store) Save(ctx context.Context, t *tree.Tree) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("saving tree: %v", err)
	}
	md, err := yaml.MarshalIndex(t.Index)
	if err != nil {
		return fmt.Errorf("saving tree: encoding metadata: %v", err)
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	err = rs.rc.Set(rs.keyFor("metadata"), md, 0).Err()
	if err != nil {
		return fmt.Errorf("storing metadata in redis: %v", err)
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	err = rs.rc.Set(rs.keyFor("tree"), data, 0).Err()
	if err != nil {
		return fmt.Errorf("storing tree in redis: %v", err)
	}
	return nil
}

// Load retrieves the tree saved under the store prefix. ErrNotFound is
// returned if nothing was saved.
func (rs *Store) Load(ctx context.Context) (*tree.Tree, error) {
	md, err := rs.get(ctx, "metadata")
	if err != nil {
		return nil, err
	}
	idx, err := yaml.ReadIndex([]byte(md))
	if err != nil {
		return nil, fmt.Errorf("decoding metadata from redis: %v", err)
	}
	data, err := rs.get(ctx, "tree")
	if err != nil {
		return nil, err
	}
	t, err := json.ReadJSONTree(bytes.NewBufferString(data), idx)
	if err != nil {
		return nil, fmt.Errorf("decoding tree from redis: %v", err)
	}
	return t, nil
}

// Delete removes the tree saved under the store prefix, if any
func (rs *Store) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := rs.rc.Del(rs.keyFor("metadata"), rs.keyFor("tree")).Err()
	if err != nil {
		return fmt.Errorf("deleting tree from redis: %v", err)
	}
	return nil
}

func (rs *Store) get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := rs.rc.Get(rs.keyFor(key)).Result()
	if err == redis.Nil {
		return "", fmt.Errorf("%w %q", ErrNotFound, rs.prefix)
	}
	if err != nil {
		return "", fmt.Errorf("retrieving %q: %v", rs.keyFor(key), err)
	}
	return data, nil
}

func (rs *Store) keyFor(id string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, id)
}
