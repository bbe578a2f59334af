package storage

import "encoding/json"

// Storage keys for the browsing preference snapshot, one per field as the
// original session storage laid them out.
const (
	prefShopID    = "ui:shopId"
	prefSort      = "ui:sort"
	prefShow      = "ui:show"
	prefFavMode   = "ui:favMode"
	prefFlowerIDs = "ui:flowerIds"
	prefMatch     = "ui:match"
)

// Prefs is the UI preference snapshot: selected shop, sort key, product kind
// shown, favorite mode and the bouquet flower filter.
type Prefs struct {
	ShopID    string
	Sort      string
	Show      string
	FavMode   string
	FlowerIDs []string
	Match     string
}

// DefaultPrefs returns the preferences used before the user changes
// anything.
func DefaultPrefs() Prefs {
	return Prefs{
		Sort:      "date",
		Show:      "flowers",
		FavMode:   "all",
		FlowerIDs: []string{},
		Match:     "any",
	}
}

// LoadPrefs reads each preference key independently; any missing or corrupt
// value keeps its default.
func LoadPrefs(s Store) Prefs {
	p := DefaultPrefs()
	readJSON(s, prefShopID, &p.ShopID)
	readJSON(s, prefSort, &p.Sort)
	readJSON(s, prefShow, &p.Show)
	readJSON(s, prefFavMode, &p.FavMode)
	readJSON(s, prefFlowerIDs, &p.FlowerIDs)
	readJSON(s, prefMatch, &p.Match)
	if p.FlowerIDs == nil {
		p.FlowerIDs = []string{}
	}
	return p
}

// SavePrefs writes every preference key.
func SavePrefs(s Store, p Prefs) {
	writeJSON(s, prefShopID, p.ShopID)
	writeJSON(s, prefSort, p.Sort)
	writeJSON(s, prefShow, p.Show)
	writeJSON(s, prefFavMode, p.FavMode)
	writeJSON(s, prefFlowerIDs, p.FlowerIDs)
	writeJSON(s, prefMatch, p.Match)
}

func readJSON(s Store, key string, out interface{}) {
	raw, ok := s.Get(key)
	if !ok {
		return
	}
	// Unmarshal errors leave out untouched, keeping the default.
	_ = json.Unmarshal([]byte(raw), out)
}

func writeJSON(s Store, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.Set(key, string(raw))
}
