// internal/match/match.go
package match

import (
	"strings"

	"gtfq-core/gtf"
)

// Criteria is a conjunction of record predicates; the zero value matches
// every record. String fields compare exact and case-sensitive, matching
// how annotation pipelines treat seqnames and feature types.
type Criteria struct {
	Seqname string
	Source  string
	Feature string
	Strand  byte // 0 = any

	Attrs    map[string]string // every key must be present with this value
	HasAttrs []string          // every key must be present, value ignored

	RequireScore bool     // drop records whose score column was "."
	MinScore     *float64 // records without a score never satisfy a bound
	MaxScore     *float64
}

// FromFlags builds Criteria out of raw CLI inputs. attrs entries are
// key=value strings already syntax-checked by the flag layer.
func FromFlags(seqname, source, feature, strand string, attrs, withAttrs []string, withScore bool, minScore, maxScore *float64) Criteria {
	c := Criteria{
		Seqname:      seqname,
		Source:       source,
		Feature:      feature,
		HasAttrs:     withAttrs,
		RequireScore: withScore,
		MinScore:     minScore,
		MaxScore:     maxScore,
	}
	if strand != "" {
		c.Strand = strand[0]
	}
	if len(attrs) > 0 {
		c.Attrs = make(map[string]string, len(attrs))
		for _, a := range attrs {
			k, v, _ := strings.Cut(a, "=")
			c.Attrs[k] = v
		}
	}
	return c
}

// Match reports whether r satisfies every set predicate.
func (c Criteria) Match(r *gtf.Record) bool {
	if c.Seqname != "" && r.Seqname != c.Seqname {
		return false
	}
	if c.Source != "" && r.Source != c.Source {
		return false
	}
	if c.Feature != "" && r.Feature != c.Feature {
		return false
	}
	if c.Strand != 0 && r.Strand != c.Strand {
		return false
	}
	for _, k := range c.HasAttrs {
		if !r.HasAttribute(k) {
			return false
		}
	}
	for k, v := range c.Attrs {
		if got, ok := r.Attributes[k]; !ok || got != v {
			return false
		}
	}
	if c.RequireScore && !r.HasScore() {
		return false
	}
	if c.MinScore != nil && (!r.HasScore() || r.Score < *c.MinScore) {
		return false
	}
	if c.MaxScore != nil && (!r.HasScore() || r.Score > *c.MaxScore) {
		return false
	}
	return true
}
