// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package robdd

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheStat stores status information about cache usage
type cacheStat struct {
	produced     int // Total number of new nodes ever produced
	uniqueAccess int // accesses to the unique node table
	uniqueHit    int // entries actually found in the the unique node table
	uniqueMiss   int // entries not found in the the unique node table
	opHit        int // entries found in the ITE cache
	opMiss       int // entries not found in the ITE cache
}

// iteKey is the key of an ITE cache entry. Field v is the variable driving
// the sweep in IteAt, or sweepFree for the results of Ite.
type iteKey struct {
	f, g, h Node
	v       int32
}

// sweepFree marks cache entries computed with the top-variable rule.
const sweepFree int32 = -2

// itecache is used for caching ITE results. It keeps at most a fixed number of
// entries and evicts the least recently used ones. Nodes are never reclaimed
// during a run, so an entry stays valid for as long as it is kept.
type itecache struct {
	table *lru.Cache[iteKey, Node]
}

func (bc *itecache) cacheinit(size int) {
	table, err := lru.New[iteKey, Node](size)
	if err != nil {
		panic(invariantf("cache of size %d: %v", size, err))
	}
	bc.table = table
}

func (bc *itecache) cachereset() {
	bc.table.Purge()
}

func (b *BDD) matchite(f, g, h Node, v int32) (Node, bool) {
	res, ok := b.itecache.table.Get(iteKey{f, g, h, v})
	if ok {
		b.opHit++
	} else {
		b.opMiss++
	}
	return res, ok
}

func (b *BDD) setite(f, g, h Node, v int32, res Node) Node {
	b.itecache.table.Add(iteKey{f, g, h, v}, res)
	return res
}

// Prints information about the cache performance. The information contains the
// number of accesses to the unique node table, the number of times a node was
// (not) found there. Hit and miss count is also given for the ITE cache.
func (c cacheStat) String() string {
	res := fmt.Sprintf("Unique Access:  %d\n", c.uniqueAccess)
	res += fmt.Sprintf("Unique Hit:     %d\n", c.uniqueHit)
	res += fmt.Sprintf("Unique Miss:    %d\n", c.uniqueMiss)
	res += fmt.Sprintf("Operator Hits:  %d\n", c.opHit)
	res += fmt.Sprintf("Operator Miss:  %d", c.opMiss)
	return res
}

// ResetCache empties the ITE cache. Nodes and the unicity table are kept.
func (b *BDD) ResetCache() {
	b.itecache.cachereset()
}
