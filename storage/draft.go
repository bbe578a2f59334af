package storage

import "encoding/json"

// DraftKey is the versioned storage key for the checkout draft.
const DraftKey = "checkout:v1"

// Draft is the checkout form snapshot persisted on every keystroke.
type Draft struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// LoadDraft reads the stored draft, returning an empty draft when none
// exists or the stored value does not parse.
func LoadDraft(s Store) Draft {
	raw, ok := s.Get(DraftKey)
	if !ok {
		return Draft{}
	}
	var d Draft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return Draft{}
	}
	return d
}

// SaveDraft serializes all four fields under DraftKey, last write wins.
func SaveDraft(s Store, d Draft) {
	raw, err := json.Marshal(d)
	if err != nil {
		return
	}
	s.Set(DraftKey, string(raw))
}

// ClearDraft removes the stored draft.
func ClearDraft(s Store) {
	s.Delete(DraftKey)
}
