// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/cybrota/ordbench/bench"
	"github.com/cybrota/ordbench/workload"
)

const (
	datasetCacheExpiration = 30 * time.Minute
	datasetCacheCleanup    = 5 * time.Minute
)

// NewDatasetCache creates a cache for generated workloads.
func NewDatasetCache() *cache.Cache {
	return cache.New(datasetCacheExpiration, datasetCacheCleanup)
}

func datasetKey(n int, order workload.Order, seed int64) string {
	return fmt.Sprintf("%d/%s/%d", n, order, seed)
}

func CacheDataset(c *cache.Cache, n int, order workload.Order, seed int64, data []int64) {
	c.Set(datasetKey(n, order, seed), data, datasetCacheExpiration)
}

// GetDataset returns a copy of the cached dataset, or nil when absent.
func GetDataset(c *cache.Cache, n int, order workload.Order, seed int64) []int64 {
	val, ok := c.Get(datasetKey(n, order, seed))
	if !ok {
		return nil
	}
	return slices.Clone(val.([]int64))
}

// CachedDatasetSource generates datasets through the cache. Every caller
// receives its own copy.
func CachedDatasetSource(c *cache.Cache) bench.DatasetSource {
	return func(n int, order workload.Order, seed int64) []int64 {
		if data := GetDataset(c, n, order, seed); data != nil {
			return data
		}
		data := workload.Generate(n, order, seed)
		CacheDataset(c, n, order, seed, data)
		return slices.Clone(data)
	}
}
