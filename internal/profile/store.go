package profile

import "encoding/json"

// RecordKey is the persistence key holding the full profile.
const RecordKey = "db:profile"

// KV is the slice of the persistence capability the profile needs.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// Load reads the profile from kv. A missing, unreadable, or corrupt
// record yields a fresh empty profile.
func Load(kv KV) *Profile {
	raw, ok, err := kv.Get(RecordKey)
	if err != nil || !ok {
		return NewProfile()
	}
	p := NewProfile()
	if err := json.Unmarshal([]byte(raw), p); err != nil {
		return NewProfile()
	}
	if p.Subjects == nil {
		p.Subjects = make(map[string]*SubjectRecord)
	}
	return p
}

// Save writes the profile to kv. Write failures are swallowed: the
// profile is best-effort durable and a full store must not break the
// session flow.
func Save(kv KV, p *Profile) {
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	_ = kv.Set(RecordKey, string(raw))
}

// Reset removes the persisted profile record.
func Reset(kv KV) error {
	return kv.Remove(RecordKey)
}
