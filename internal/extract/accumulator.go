package extract

import (
	"sort"

	"github.com/KaramelBytes/imaris-cli/internal/sample"
	"gopkg.in/guregu/null.v3"
)

// Reading holds the statistics recorded for one variable of one sample.
// Sum is only populated for version 1 exports.
type Reading struct {
	Mean null.Float
	Sum  null.Float
}

// Accumulator collects readings as version -> variable -> sample key.
// It is filled during the file loop and only read afterwards.
type Accumulator struct {
	data map[sample.Version]map[string]map[string]Reading
}

func NewAccumulator() *Accumulator {
	return &Accumulator{data: map[sample.Version]map[string]map[string]Reading{}}
}

// Record stores r and reports whether it replaced an earlier reading under the
// same key. Later files win.
func (a *Accumulator) Record(v sample.Version, variable, key string, r Reading) (replaced bool) {
	byVar := a.data[v]
	if byVar == nil {
		byVar = map[string]map[string]Reading{}
		a.data[v] = byVar
	}
	byKey := byVar[variable]
	if byKey == nil {
		byKey = map[string]Reading{}
		byVar[variable] = byKey
	}
	_, replaced = byKey[key]
	byKey[key] = r
	return replaced
}

// Get returns the reading for (v, variable, key).
func (a *Accumulator) Get(v sample.Version, variable, key string) (Reading, bool) {
	r, ok := a.data[v][variable][key]
	return r, ok
}

// Empty reports whether no reading was recorded for v.
func (a *Accumulator) Empty(v sample.Version) bool { return len(a.data[v]) == 0 }

// Variables lists recorded variable names for v, sorted.
func (a *Accumulator) Variables(v sample.Version) []string {
	out := make([]string, 0, len(a.data[v]))
	for name := range a.data[v] {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Each visits every reading of v in variable then key order.
func (a *Accumulator) Each(v sample.Version, fn func(variable, key string, r Reading)) {
	for _, variable := range a.Variables(v) {
		byKey := a.data[v][variable]
		keys := make([]string, 0, len(byKey))
		for k := range byKey {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fn(variable, k, byKey[k])
		}
	}
}
