// Package cache provides a small thread-safe LRU cache.
//
//	c := cache.New[string, []uint32](64)
//	table := c.GetOrCreate(key, build)
//
// Cache is used to keep resolved gradient color tables alive across fills
// of the same ramp. Statistics are counted atomically and can be read
// without taking the lock.
package cache
