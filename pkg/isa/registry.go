package isa

import (
	"sort"
	"strings"
)

// Registry holds the ISA entries known to this build, indexed by canonical
// name. It is built once and never mutated afterwards, so it is safe for
// concurrent readers.
type Registry struct {
	entries []Entry
	byName  map[string]Entry
}

// NewRegistry builds a registry from the given entries. Entry names must be
// unique.
func NewRegistry(entries []Entry) (*Registry, error) {
	byName := make(map[string]Entry, len(entries))

	for _, entry := range entries {
		if _, exists := byName[entry.Name]; exists {
			return nil, newDuplicateEntry(entry.Name)
		}

		byName[entry.Name] = entry
	}

	return &Registry{
		entries: entries,
		byName:  byName,
	}, nil
}

func mustRegistry(entries []Entry) *Registry {
	registry, err := NewRegistry(entries)
	if err != nil {
		panic(err)
	}

	return registry
}

var defaultRegistry = mustRegistry(knownISAs)

// Default returns the registry of every ISA known to this build.
func Default() *Registry {
	return defaultRegistry
}

// Lookup returns the entry for an exact canonical name.
func (r *Registry) Lookup(name string) (Entry, error) {
	entry, ok := r.byName[name]
	if !ok {
		return Entry{}, NewUnknownISA(name)
	}

	return entry, nil
}

// All returns every entry in table order.
func (r *Registry) All() []Entry {
	all := make([]Entry, len(r.entries))
	copy(all, r.entries)

	return all
}

// ShortVersions returns the distinct coarse gfx versions in table order,
// e.g. "gfx7" through "gfx11".
func (r *Registry) ShortVersions() []string {
	seen := map[string]struct{}{}
	versions := []string{}

	for _, entry := range r.entries {
		version := entry.ShortGfx()
		if _, ok := seen[version]; ok {
			continue
		}

		seen[version] = struct{}{}
		versions = append(versions, version)
	}

	return versions
}

// Resolution is the outcome of resolving a target list: the variant families
// and coarse gfx versions the targets map to, plus the matched entries in
// input order.
type Resolution struct {
	// ShortISAs holds the variant families to keep, e.g. "gfx906".
	ShortISAs map[string]struct{}
	// ShortVersions holds the coarse gfx versions to keep, e.g. "gfx9".
	ShortVersions map[string]struct{}
	// Entries are the matched registry entries in input order. Duplicate
	// targets repeat here even though the sets collapse them.
	Entries []Entry
}

// HasShortISA reports whether the resolution covers the given variant family.
func (res *Resolution) HasShortISA(name string) bool {
	_, ok := res.ShortISAs[name]

	return ok
}

// HasShortVersion reports whether the resolution covers the given coarse gfx
// version.
func (res *Resolution) HasShortVersion(version string) bool {
	_, ok := res.ShortVersions[version]

	return ok
}

// SortedShortISAs returns the variant families in lexical order.
func (res *Resolution) SortedShortISAs() []string {
	return sortedKeys(res.ShortISAs)
}

// SortedShortVersions returns the coarse gfx versions in lexical order.
func (res *Resolution) SortedShortVersions() []string {
	return sortedKeys(res.ShortVersions)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

// Resolve splits a ";"-joined target list and looks every token up by its
// exact canonical name. Tokens are not trimmed or normalised. Any unknown
// token fails the whole resolution so callers never act on a partial set.
func (r *Registry) Resolve(targets string) (*Resolution, error) {
	res := &Resolution{
		ShortISAs:     map[string]struct{}{},
		ShortVersions: map[string]struct{}{},
	}

	for _, target := range strings.Split(targets, ";") {
		entry, err := r.Lookup(target)
		if err != nil {
			return nil, err
		}

		res.ShortISAs[entry.ShortISA()] = struct{}{}
		res.ShortVersions[entry.ShortGfx()] = struct{}{}
		res.Entries = append(res.Entries, entry)
	}

	return res, nil
}
