// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "github.com/sirupsen/logrus"

// configs is used to store the values of different parameters of the BDD
type configs struct {
	nodesize  int           // initial capacity of the node table
	cachesize int           // maximal number of entries in the ITE cache
	pinned    []string      // variables placed first in the order
	log       *logrus.Entry // destination of progress messages
}

func makeconfigs() *configs {
	return &configs{
		nodesize:  _DEFAULTNODESIZE,
		cachesize: _DEFAULTCACHESIZE,
	}
}

// Nodesize is a configuration option (function). Used as a parameter in New it
// sets a preferred initial size for the node table. The table grows as needed
// during computation; this only avoids early reallocations.
func Nodesize(size int) func(*configs) {
	return func(c *configs) {
		if size > 2 {
			c.nodesize = size
		}
	}
}

// Cachesize is a configuration option (function). Used as a parameter in New it
// sets the number of entries kept in the ITE cache. Older entries are evicted
// first; they are recomputed if needed.
func Cachesize(size int) func(*configs) {
	return func(c *configs) {
		if size > 0 {
			c.cachesize = size
		}
	}
}

// Pinned is a configuration option (function). It fixes the position of the
// given variables at the start of the variable order, in the sequence they are
// given. Other variables follow, ordered by symbol code.
func Pinned(names ...string) func(*configs) {
	return func(c *configs) {
		c.pinned = append(c.pinned, names...)
	}
}

// Logger is a configuration option (function). It sets the logger used to
// trace node creation. The default is the standard logrus logger.
func Logger(log *logrus.Entry) func(*configs) {
	return func(c *configs) {
		if log != nil {
			c.log = log
		}
	}
}
