package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDraftRoundTrip(t *testing.T) {
	s := NewMemStore()

	draft := Draft{Name: "Olena", Email: "olena@example.com", Phone: "+380501234567", Address: "Kyiv"}
	SaveDraft(s, draft)
	assert.Equal(t, draft, LoadDraft(s))

	ClearDraft(s)
	assert.Equal(t, Draft{}, LoadDraft(s))
}

func TestDraftCorruptValueFallsBack(t *testing.T) {
	s := NewMemStore()
	s.Set(DraftKey, "{not json")
	assert.Equal(t, Draft{}, LoadDraft(s))
}

func TestFavorites(t *testing.T) {
	s := NewMemStore()

	assert.Empty(t, LoadFavorites(s, FavFlowers))

	m := ToggleFavorite(s, FavFlowers, "f1")
	assert.True(t, m["f1"])
	assert.True(t, LoadFavorites(s, FavFlowers)["f1"])

	m = ToggleFavorite(s, FavFlowers, "f1")
	assert.False(t, m["f1"])

	// Flower and bouquet maps are independent.
	ToggleFavorite(s, FavBouquets, "b1")
	assert.False(t, LoadFavorites(s, FavFlowers)["b1"])
	assert.True(t, LoadFavorites(s, FavBouquets)["b1"])
}

func TestFavoritesCorruptValueFallsBack(t *testing.T) {
	s := NewMemStore()
	s.Set("fav:flowers", "[1,2,3]")
	assert.Empty(t, LoadFavorites(s, FavFlowers))
}

func TestPrefsDefaults(t *testing.T) {
	s := NewMemStore()

	p := LoadPrefs(s)
	assert.Equal(t, DefaultPrefs(), p)
	assert.Equal(t, "date", p.Sort)
	assert.Equal(t, "flowers", p.Show)
}

func TestPrefsRoundTrip(t *testing.T) {
	s := NewMemStore()

	p := Prefs{
		ShopID:    "68b1c2d3e4f5a6b7c8d9e0f1",
		Sort:      "price",
		Show:      "bouquets",
		FavMode:   "only",
		FlowerIDs: []string{"f1", "f2"},
		Match:     "all",
	}
	SavePrefs(s, p)
	assert.Equal(t, p, LoadPrefs(s))
}

func TestPrefsCorruptKeyKeepsItsDefault(t *testing.T) {
	s := NewMemStore()
	SavePrefs(s, Prefs{ShopID: "shop", Sort: "price", Show: "bouquets", FavMode: "only", FlowerIDs: []string{}, Match: "any"})
	s.Set("ui:sort", "{{{")

	p := LoadPrefs(s)
	assert.Equal(t, "date", p.Sort, "corrupt key falls back")
	assert.Equal(t, "shop", p.ShopID, "other keys unaffected")
}

func TestOrderRef(t *testing.T) {
	s := NewMemStore()

	assert.Equal(t, "ORD-D9E0F2", PrettyOrderRef("68b1c2d3e4f5a6b7c8d9e0f2"))
	assert.Equal(t, "ORD-ABC", PrettyOrderRef("abc"))

	// Derived from the id when nothing is stored, stored value wins after.
	assert.Equal(t, "ORD-D9E0F2", LoadLastOrderRef(s, "68b1c2d3e4f5a6b7c8d9e0f2"))
	SaveLastOrderRef(s, "68b1c2d3e4f5a6b7c8d9e0f3")
	assert.Equal(t, "ORD-D9E0F3", LoadLastOrderRef(s, "68b1c2d3e4f5a6b7c8d9e0f2"))
}
