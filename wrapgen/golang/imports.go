package golang

import (
	"fmt"
	"sort"

	"github.com/teranos/wrapgen/wrapgen"
)

// importSet assigns every import path of the generated file one local name.
// Conflicting names are numbered: models, models2, models3.
type importSet struct {
	byPath map[string]string
	byName map[string]string
	// avoid holds identifiers the file already uses (receiver, client type)
	avoid map[string]bool
}

type importSpec struct {
	Name string // empty when the assumed package name applies
	Path string
}

func newImportSet(avoid ...string) *importSet {
	s := &importSet{
		byPath: make(map[string]string),
		byName: make(map[string]string),
		avoid:  make(map[string]bool),
	}
	for _, name := range avoid {
		s.avoid[name] = true
	}
	return s
}

// add returns the local name of path, registering it under want (or a
// numbered variant) the first time. taken reports extra names to skip.
func (s *importSet) add(path, want string, taken func(string) bool) string {
	if name, ok := s.byPath[path]; ok {
		return name
	}

	free := func(name string) bool {
		if s.avoid[name] || s.byName[name] != "" {
			return false
		}
		return taken == nil || !taken(name)
	}

	name := want
	for i := 2; !free(name); i++ {
		name = fmt.Sprintf("%s%d", want, i)
	}

	s.byPath[path] = name
	s.byName[name] = path
	return name
}

// specs lists the imports sorted by path
func (s *importSet) specs() []importSpec {
	out := make([]importSpec, 0, len(s.byPath))
	for path, name := range s.byPath {
		spec := importSpec{Path: path}
		if name != wrapgen.AssumedPackageName(path) {
			spec.Name = name
		}
		out = append(out, spec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
