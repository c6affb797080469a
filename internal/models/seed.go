package models

import "fmt"

// SeedUsers returns the fixed guest list. The normalized name is computed
// at seed time and acts as the login key for the life of the store.
func SeedUsers() []User {
	return []User{
		{ID: "u1", Name: "Juan Pérez", NormalizedName: "juan perez", GroupName: "Colegio", IsAdmin: true},
		{ID: "u2", Name: "María Gómez", NormalizedName: "maria gomez", GroupName: "Familia"},
		{ID: "u3", Name: "Carlos López", NormalizedName: "carlos lopez", GroupName: "Amigos"},
		{ID: "u4", Name: "Ana Torres", NormalizedName: "ana torres", GroupName: "Colegio"},
		{ID: "u5", Name: "Pedro Ruiz", NormalizedName: "pedro ruiz", GroupName: "Familia"},
		{ID: "u6", Name: "Sofía Diaz", NormalizedName: "sofia diaz", GroupName: "Amigos"},
		{ID: "u7", Name: "Lucas M", NormalizedName: "lucas m", GroupName: "Colegio"},
		{ID: "u8", Name: "Valentina R", NormalizedName: "valentina r", GroupName: "Amigos"},
		{ID: "u9", Name: "Admin User", NormalizedName: "admin", IsAdmin: true},
	}
}

// SeedTables returns the default seating plan: five tables of eight.
func SeedTables() []Table {
	tables := make([]Table, 5)
	for i := range tables {
		tables[i] = Table{
			ID:       fmt.Sprintf("t%d", i+1),
			Name:     fmt.Sprintf("Mesa %d", i+1),
			Capacity: 8,
		}
	}
	return tables
}

// SeedWishlist returns the default gift list. One item starts reserved so
// the taken state renders from the first load.
func SeedWishlist() []WishlistItem {
	return []WishlistItem{
		{ID: "w1", Name: "Auriculares Sony", ImageURL: "https://picsum.photos/200/200?random=1"},
		{ID: "w2", Name: "Gift Card Zara", ImageURL: "https://picsum.photos/200/200?random=2"},
		{ID: "w3", Name: "Entrada Concierto", ImageURL: "https://picsum.photos/200/200?random=3"},
		{ID: "w4", Name: "Zapatillas Nike", ImageURL: "https://picsum.photos/200/200?random=4", IsTaken: true, TakenByUserID: "u2"},
		{ID: "w5", Name: "Libro de Diseño", ImageURL: "https://picsum.photos/200/200?random=5"},
		{ID: "w6", Name: "Cámara Instax", ImageURL: "https://picsum.photos/200/200?random=6"},
	}
}
