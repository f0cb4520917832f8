// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package cache provides a generic, thread-safe LRU cache with TTL expiry.

The recommendation engine uses it to memoize title resolution: fuzzy
matching scans every known title, so repeated queries for the same text
skip straight to the resolved position.

Usage:

	c := cache.NewLRU[int](10000, 10*time.Minute)
	c.Add("Avatr", 0)
	if pos, ok := c.Get("Avatr"); ok {
	    // use pos
	}

Entries expire lazily on Get; CleanupExpired sweeps them eagerly.
*/
package cache
