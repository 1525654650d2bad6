package cache

// ScopedKeyer wraps a Keyer with a prefix so that several producers can share
// one backend without colliding, for example entries written by different
// versions of the plan encoding.
//
//	keyer := cache.NewScopedKeyer(nil, "v2:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// A nil inner keyer defaults to DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// PlanKey implements Keyer.
func (k *ScopedKeyer) PlanKey(windowgram string, opts PlanKeyOpts) string {
	return k.prefix + k.inner.PlanKey(windowgram, opts)
}

// ClassifyKey implements Keyer.
func (k *ScopedKeyer) ClassifyKey(windowgram string) string {
	return k.prefix + k.inner.ClassifyKey(windowgram)
}
