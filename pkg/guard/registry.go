package guard

import "fmt"

// Registry is an immutable table of guards keyed by tag. It is safe for
// concurrent use: nothing mutates it after NewRegistry returns.
type Registry struct {
	guards map[Tag]Guard
}

// Option configures a Registry under construction.
type Option func(*registryConfig)

type registryConfig struct {
	custom []custom
}

type custom struct {
	tag   Tag
	guard Guard
}

// WithGuard adds a guard for a custom tag. Registering a tag that already
// exists makes NewRegistry fail with ErrDuplicateTag.
func WithGuard(tag Tag, g Guard) Option {
	return func(c *registryConfig) {
		c.custom = append(c.custom, custom{tag: tag, guard: g})
	}
}

// NewRegistry builds a registry holding the primary and unusual guards plus
// any custom guards supplied through options.
func NewRegistry(opts ...Option) (*Registry, error) {
	cfg := &registryConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	guards := Primary()
	for tag, g := range Unusual() {
		if _, exists := guards[tag]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTag, string(tag))
		}
		guards[tag] = g
	}

	for _, c := range cfg.custom {
		if _, exists := guards[c.tag]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTag, string(c.tag))
		}
		if c.tag == "" {
			return nil, fmt.Errorf("custom guard registered with an empty tag")
		}
		if c.guard == nil {
			return nil, fmt.Errorf("guard for tag %q is nil", string(c.tag))
		}
		guards[c.tag] = c.guard
	}

	return &Registry{guards: guards}, nil
}

// Lookup returns the guard registered for tag.
func (r *Registry) Lookup(tag Tag) (Guard, error) {
	g, ok := r.guards[tag]
	if !ok {
		return nil, &UnknownTagError{Tag: tag}
	}
	return g, nil
}

// Knows reports whether tag is registered.
func (r *Registry) Knows(tag Tag) bool {
	_, ok := r.guards[tag]
	return ok
}

// Tags returns every registered tag in lexical order.
func (r *Registry) Tags() []Tag {
	tags := make([]Tag, 0, len(r.guards))
	for tag := range r.guards {
		tags = append(tags, tag)
	}
	return sortTags(tags)
}

// Guards returns a copy of the named guard table. Calling
// Guards()[tag](v) is equivalent to Is(v, tag).
func (r *Registry) Guards() map[Tag]Guard {
	out := make(map[Tag]Guard, len(r.guards))
	for tag, g := range r.guards {
		out[tag] = g
	}
	return out
}

// Is reports whether v satisfies any of tags. With no tags it reports
// false. Every tag is resolved before any guard runs, so an unknown tag is
// always reported, even when an earlier tag would have matched.
func (r *Registry) Is(v any, tags ...Tag) (bool, error) {
	g, err := r.Check(tags...)
	if err != nil {
		return false, err
	}
	return g(v), nil
}

// Check resolves tags once and returns a single guard matching any of them.
func (r *Registry) Check(tags ...Tag) (Guard, error) {
	guards := make([]Guard, 0, len(tags))
	for _, tag := range tags {
		g, err := r.Lookup(tag)
		if err != nil {
			return nil, err
		}
		guards = append(guards, g)
	}
	return func(v any) bool {
		for _, g := range guards {
			if g(v) {
				return true
			}
		}
		return false
	}, nil
}
