package domain

var Tables = []interface{}{
	// Accounts
	&UserProfile{},
	&PasswordReset{},
	// Catalog
	&Product{},
	// Ordering
	&CartLine{},
	&FavoriteEntry{},
	&Reservation{},
}
