package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/pbanos/id3/feature/yaml"
	"github.com/pbanos/id3/tree"
	"github.com/pbanos/id3/tree/json"
	"github.com/pbanos/id3/tree/redisstore"
)

const defaultRedisPrefix = "id3"

const treeFlagUsage = "path to a JSON file with the tree, or a redis://host:port/prefix URL of a redis server storing it"

const metadataFlagUsage = "path to a YML file with the metadata describing the features of the tree (required unless the tree is on redis)"

// treeLocation identifies where a tree and its metadata are stored
type treeLocation struct {
	location string
	metadata string
}

func (tl *treeLocation) onRedis() bool {
	return strings.HasPrefix(tl.location, "redis://")
}

// Validate checks the metadata is given when the tree is stored on a file
func (tl *treeLocation) Validate() error {
	if !tl.onRedis() && tl.metadata == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	return nil
}

func (tl *treeLocation) redisStore() (*redisstore.Store, error) {
	u, err := url.Parse(tl.location)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url %s: %v", tl.location, err)
	}
	prefix := strings.Trim(u.Path, "/")
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return redisstore.Open(u.Host, prefix)
}

func (tl *treeLocation) loadTree(ctx context.Context, rcc *rootCmdConfig) (*tree.Tree, error) {
	if tl.onRedis() {
		rcc.Logf("Loading tree from %s...", tl.location)
		rs, err := tl.redisStore()
		if err != nil {
			return nil, err
		}
		defer rs.Close()
		return rs.Load(ctx)
	}
	rcc.Logf("Reading features from metadata at %s...", tl.metadata)
	idx, err := yaml.ReadIndexFromFile(tl.metadata)
	if err != nil {
		return nil, err
	}
	rcc.Logf("Reading tree from %s...", tl.location)
	f, err := os.Open(tl.location)
	if err != nil {
		return nil, fmt.Errorf("reading tree in JSON from %s: %v", tl.location, err)
	}
	defer f.Close()
	t, err := json.ReadJSONTree(f, idx)
	if err != nil {
		return nil, fmt.Errorf("parsing tree in JSON from %s: %v", tl.location, err)
	}
	return t, nil
}

func (tl *treeLocation) saveTree(ctx context.Context, rcc *rootCmdConfig, t *tree.Tree) error {
	if tl.onRedis() {
		rcc.Logf("Saving tree on %s...", tl.location)
		rs, err := tl.redisStore()
		if err != nil {
			return err
		}
		defer rs.Close()
		return rs.Save(ctx, t)
	}
	rcc.Logf("Writing metadata onto %s...", tl.metadata)
	err := yaml.WriteIndexToFile(tl.metadata, t.Index)
	if err != nil {
		return err
	}
	if tl.location == "" {
		return json.WriteJSONTree(os.Stdout, t)
	}
	rcc.Logf("Writing tree onto %s...", tl.location)
	f, err := os.Create(tl.location)
	if err != nil {
		return fmt.Errorf("creating %s: %v", tl.location, err)
	}
	err = json.WriteJSONTree(f, t)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
