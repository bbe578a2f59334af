package storage

import "encoding/json"

// Product kinds carrying independent favorite-override maps
const (
	FavFlowers  = "flowers"
	FavBouquets = "bouquets"
)

// FavMap records per-browser favorite overrides by product id. An id absent
// from the map keeps the server-side favorite flag.
type FavMap map[string]bool

func favKey(kind string) string {
	return "fav:" + kind
}

// LoadFavorites reads the override map for a product kind; corrupt or
// missing values yield an empty map.
func LoadFavorites(s Store, kind string) FavMap {
	raw, ok := s.Get(favKey(kind))
	if !ok {
		return FavMap{}
	}
	var m FavMap
	if err := json.Unmarshal([]byte(raw), &m); err != nil || m == nil {
		return FavMap{}
	}
	return m
}

// SaveFavorites writes the override map for a product kind.
func SaveFavorites(s Store, kind string, m FavMap) {
	raw, err := json.Marshal(m)
	if err != nil {
		return
	}
	s.Set(favKey(kind), string(raw))
}

// ToggleFavorite flips the override for one product id and persists the
// result, returning the updated map.
func ToggleFavorite(s Store, kind, id string) FavMap {
	m := LoadFavorites(s, kind)
	m[id] = !m[id]
	SaveFavorites(s, kind, m)
	return m
}
