package signal

import (
	"fmt"
	"sort"

	"github.com/san-kum/seismograph/internal/dynamo"
)

type factory func(src Source, seed int64) Generator

var generators = map[string]factory{
	"seismic": func(src Source, _ int64) Generator {
		return NewSeismic(src)
	},
	"microseism": func(_ Source, seed int64) Generator {
		return NewMicroseism(seed)
	},
}

// Lookup builds the named drum generator.
func Lookup(name string, src Source, seed int64) (Generator, error) {
	f, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("signal source %q: %w", name, dynamo.ErrUnknownParam)
	}
	return f(src, seed), nil
}

func Names() []string {
	names := make([]string, 0, len(generators))
	for n := range generators {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
