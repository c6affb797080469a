package models

import (
	"testing"

	"github.com/luquetti/mis18/internal/shared"
)

func TestUserValidate(t *testing.T) {
	t.Run("Valid Seeded Users", func(t *testing.T) {
		for _, u := range SeedUsers() {
			if err := u.Validate(); err != nil {
				t.Errorf("seeded user %s should validate: %v", u.ID, err)
			}
		}
	})

	t.Run("Non-Normalized Key Rejected", func(t *testing.T) {
		u := User{ID: "u1", Name: "María", NormalizedName: "María"}
		if err := u.Validate(); err == nil {
			t.Error("expected validation error for unnormalized login key")
		}
	})
}

func TestSeedInvariants(t *testing.T) {
	t.Run("Normalized Names Unique", func(t *testing.T) {
		seen := map[string]string{}
		for _, u := range SeedUsers() {
			if prev, ok := seen[u.NormalizedName]; ok {
				t.Errorf("normalized name %q shared by %s and %s", u.NormalizedName, prev, u.ID)
			}
			seen[u.NormalizedName] = u.ID
		}
	})

	t.Run("Normalized Names Match Normalizer", func(t *testing.T) {
		for _, u := range SeedUsers() {
			if got := shared.Normalize(u.Name); got != u.NormalizedName && u.ID != "u9" {
				t.Errorf("user %s: Normalize(%q) = %q, seeded key %q", u.ID, u.Name, got, u.NormalizedName)
			}
		}
	})

	t.Run("Tables Have Positive Capacity", func(t *testing.T) {
		for _, tb := range SeedTables() {
			if err := tb.Validate(); err != nil {
				t.Errorf("seeded table %s should validate: %v", tb.ID, err)
			}
		}
	})

	t.Run("Wishlist Reservation Invariant", func(t *testing.T) {
		for _, w := range SeedWishlist() {
			if err := w.Validate(); err != nil {
				t.Errorf("seeded item %s should validate: %v", w.ID, err)
			}
		}
	})
}

func TestWishlistItemTakenBy(t *testing.T) {
	item := WishlistItem{ID: "w1", Name: "Auriculares", IsTaken: true, TakenByUserID: "u2"}

	if !item.TakenBy("u2") {
		t.Error("item should report taken by u2")
	}
	if item.TakenBy("u3") {
		t.Error("item should not report taken by u3")
	}

	free := WishlistItem{ID: "w2", Name: "Gift Card"}
	if free.TakenBy("u2") {
		t.Error("available item should not report taken")
	}
}

func TestCanonicalGenre(t *testing.T) {
	tc := []struct {
		input string
		want  string
		ok    bool
	}{
		{"Cumbia", "cumbia", true},
		{"  REGGAETON ", "reggaeton", true},
		{"Electrónica", "electronica", true},
		{"polka", "polka", false},
	}

	for _, tt := range tc {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := CanonicalGenre(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("CanonicalGenre(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestPlatformValid(t *testing.T) {
	if !PlatformSpotify.Valid() || !PlatformYouTube.Valid() {
		t.Error("known platforms should be valid")
	}
	if Platform("soundcloud").Valid() {
		t.Error("unknown platform should be invalid")
	}
}
