package connectivity

import "math/rand"

// config holds the resolved effect of every Option passed to New.
type config struct {
	rng            *rand.Rand
	nonTreeEdges   bool
}

func newConfig(opts ...Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option customizes a Connectivity instance at construction time.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithSeed creates a deterministic *rand.Rand for the underlying treaps'
// priority draws. Use in tests to lock the exact tree shapes produced.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit RNG source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("connectivity: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithNonTreeEdges enables tracking of non-tree edges: edges added between
// two already-connected vertices are recorded (instead of silently
// discarded) so that RemoveEdge on a tree edge can search them for a
// replacement that reconnects the severed component.
//
// This search is a best-effort linear scan over the smaller resulting
// component's recorded non-tree edges — it is not the polylogarithmic
// level-based replacement search of a full dynamic-connectivity
// structure, and this package does not attempt to provide one (see
// SPEC_FULL.md's decision on the open question of non-tree-edge
// semantics).
func WithNonTreeEdges() Option {
	return func(c *config) {
		c.nonTreeEdges = true
	}
}
