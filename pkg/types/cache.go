package types

import "time"

// CacheEntry is a transient value keyed by a natural string key. The
// store does not evict expired entries; readers check Expired.
type CacheEntry struct {
	Key        string    `json:"key"`
	Value      any       `json:"value"`
	Category   string    `json:"category"`
	Expiry     time.Time `json:"expiry"`
	CreateDate time.Time `json:"createDate"`
}

// Expired reports whether the entry's expiry has passed at now.
func (c *CacheEntry) Expired(now time.Time) bool {
	return !c.Expiry.IsZero() && now.After(c.Expiry)
}
