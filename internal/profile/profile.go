// Package profile accumulates per-subject, per-category accuracy across
// sessions into a single durable record.
package profile

import (
	"encoding/json"
	"math"
	"strings"
)

// OverallKey is the reserved profile key holding the cross-subject
// aggregate. Subject names never collide with it: it is filtered out of
// subject iteration everywhere.
const OverallKey = "__overall"

// Stat is a correct/total pair.
type Stat struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Accuracy returns round(100 * correct / total), 0 when total is 0.
func (s Stat) Accuracy() int {
	if s.Total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(s.Correct) / float64(s.Total)))
}

// Overall is the reserved cross-subject aggregate. It is always
// recomputed from every subject's totals, never incremented in place.
type Overall struct {
	Correct  int `json:"correct"`
	Total    int `json:"total"`
	Accuracy int `json:"accuracy"`
}

// SubjectRecord holds one subject's running totals plus per-category
// stats. In the persisted JSON the categories sit beside the "totals" key
// inside the subject object.
type SubjectRecord struct {
	Totals     Stat
	Categories map[string]Stat
}

// MarshalJSON flattens categories next to "totals".
func (r SubjectRecord) MarshalJSON() ([]byte, error) {
	obj := make(map[string]Stat, len(r.Categories)+1)
	for k, v := range r.Categories {
		obj[k] = v
	}
	obj["totals"] = r.Totals
	return json.Marshal(obj)
}

// UnmarshalJSON splits the "totals" key back out from the categories.
func (r *SubjectRecord) UnmarshalJSON(data []byte) error {
	var obj map[string]Stat
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.Totals = obj["totals"]
	delete(obj, "totals")
	r.Categories = obj
	return nil
}

// Profile is the durable cross-session accuracy record, keyed by subject.
type Profile struct {
	Subjects map[string]*SubjectRecord
	Overall  Overall
}

// NewProfile returns an empty profile.
func NewProfile() *Profile {
	return &Profile{Subjects: make(map[string]*SubjectRecord)}
}

// MarshalJSON writes subjects at the top level with the reserved
// aggregate under OverallKey.
func (p *Profile) MarshalJSON() ([]byte, error) {
	obj := make(map[string]json.RawMessage, len(p.Subjects)+1)
	for name, rec := range p.Subjects {
		raw, err := json.Marshal(rec)
		if err != nil {
			return nil, err
		}
		obj[name] = raw
	}
	if len(p.Subjects) > 0 || p.Overall.Total > 0 {
		raw, err := json.Marshal(p.Overall)
		if err != nil {
			return nil, err
		}
		obj[OverallKey] = raw
	}
	return json.Marshal(obj)
}

// UnmarshalJSON reads the persisted shape back.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	p.Subjects = make(map[string]*SubjectRecord, len(obj))
	for name, raw := range obj {
		if name == OverallKey {
			if err := json.Unmarshal(raw, &p.Overall); err != nil {
				return err
			}
			continue
		}
		rec := &SubjectRecord{}
		if err := json.Unmarshal(raw, rec); err != nil {
			return err
		}
		p.Subjects[name] = rec
	}
	return nil
}

// Apply folds one completed session's per-category stats into the
// subject's record and recomputes the overall aggregate. An empty subject
// is bucketed under "unknown".
func (p *Profile) Apply(subject string, stats map[string]Stat) {
	subject = strings.ToLower(strings.TrimSpace(subject))
	if subject == "" {
		subject = "unknown"
	}

	rec := p.Subjects[subject]
	if rec == nil {
		rec = &SubjectRecord{Categories: make(map[string]Stat)}
		p.Subjects[subject] = rec
	}
	if rec.Categories == nil {
		rec.Categories = make(map[string]Stat)
	}

	for category, s := range stats {
		rec.Totals.Correct += s.Correct
		rec.Totals.Total += s.Total

		cs := rec.Categories[category]
		cs.Correct += s.Correct
		cs.Total += s.Total
		rec.Categories[category] = cs
	}

	p.recomputeOverall()
}

// recomputeOverall rebuilds the aggregate from every subject's totals.
// A full recompute each time: incremental updates drift.
func (p *Profile) recomputeOverall() {
	var agg Stat
	for _, rec := range p.Subjects {
		agg.Correct += rec.Totals.Correct
		agg.Total += rec.Totals.Total
	}
	p.Overall = Overall{
		Correct:  agg.Correct,
		Total:    agg.Total,
		Accuracy: agg.Accuracy(),
	}
}
