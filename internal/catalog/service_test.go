package catalog

import (
	"testing"

	"github.com/ShinMK-003/FoodOn/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Pho Bo", Price: 8.50, Rating: 4.8, Cuisine: "Vietnamese"},
		{ID: 2, Title: "Banh Mi", Price: 4.25, Rating: 4.6, Cuisine: "Vietnamese"},
		{ID: 3, Title: "Pad Thai", Price: 9.75, Rating: 4.5, Cuisine: "Thai"},
		{ID: 4, Title: "Margherita Pizza", Price: 11.00, Rating: 4.3, Cuisine: "Italian"},
		{ID: 5, Title: "Sushi Platter", Price: 18.00, Rating: 4.9, Cuisine: "Japanese"},
	}
}

func titles(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Title)
	}
	return out
}

func TestFilterAndSortCategoryAll(t *testing.T) {
	got := FilterAndSort(sampleProducts(), "All", "", "")
	assert.Len(t, got, 5)

	got = FilterAndSort(sampleProducts(), "", "", "")
	assert.Len(t, got, 5)
}

func TestFilterAndSortCategoryExact(t *testing.T) {
	got := FilterAndSort(sampleProducts(), "Vietnamese", "", "")
	require.Len(t, got, 2)
	assert.Equal(t, []string{"Pho Bo", "Banh Mi"}, titles(got))

	// category match is exact, not substring
	got = FilterAndSort(sampleProducts(), "Viet", "", "")
	assert.Empty(t, got)
}

func TestFilterAndSortSearchCaseInsensitive(t *testing.T) {
	got := FilterAndSort(sampleProducts(), "All", "pho", "")
	require.Len(t, got, 1)
	assert.Equal(t, "Pho Bo", got[0].Title)

	got = FilterAndSort(sampleProducts(), "All", "PIZZA", "")
	require.Len(t, got, 1)
	assert.Equal(t, "Margherita Pizza", got[0].Title)
}

func TestFilterAndSortByName(t *testing.T) {
	got := FilterAndSort(sampleProducts(), "All", "", SortByName)
	assert.Equal(t, []string{"Banh Mi", "Margherita Pizza", "Pad Thai", "Pho Bo", "Sushi Platter"}, titles(got))
}

func TestFilterAndSortByPriceAscending(t *testing.T) {
	got := FilterAndSort(sampleProducts(), "All", "", SortByPrice)
	require.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Price, got[i].Price)
	}
}

func TestFilterAndSortByRatingDescending(t *testing.T) {
	got := FilterAndSort(sampleProducts(), "All", "", SortByRating)
	require.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Rating, got[i].Rating)
	}
	assert.Equal(t, "Sushi Platter", got[0].Title)
}

func TestFilterAndSortUnknownKeyKeepsOrder(t *testing.T) {
	got := FilterAndSort(sampleProducts(), "All", "", "calories")
	assert.Equal(t, titles(sampleProducts()), titles(got))
}

func TestFilterAndSortIdempotent(t *testing.T) {
	for _, key := range []string{SortByName, SortByPrice, SortByRating} {
		once := FilterAndSort(sampleProducts(), "All", "", key)
		twice := FilterAndSort(once, "All", "", key)
		assert.Equal(t, titles(once), titles(twice), "sort key %s", key)
	}
}

func TestFilterAndSortDoesNotMutateInput(t *testing.T) {
	input := sampleProducts()
	_ = FilterAndSort(input, "All", "", SortByPrice)
	assert.Equal(t, titles(sampleProducts()), titles(input))
}

func TestCategories(t *testing.T) {
	got := Categories(sampleProducts())
	assert.Equal(t, []string{"All", "Vietnamese", "Thai", "Italian", "Japanese"}, got)
}
