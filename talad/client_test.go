package talad

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCategories(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/categories", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"categories":[{"id":3,"name":{"th":"มือถือและแท็บเล็ต","en":"Mobiles & Tablets"},"slug":"mobiles"}]}`)
	}))
	defer ts.Close()

	client := NewClient(ClientOpts{BaseURL: ts.URL})
	got, err := client.GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)
	assert.Equal(t, "Mobiles & Tablets", got[0].Name.EN)
}

func TestSearchListings(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/listings/search", r.URL.Path)
		assert.Equal(t, "iphone 13 pro", r.URL.Query().Get("q"))
		assert.Equal(t, "3", r.URL.Query().Get("category_id"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"docs": [
				{"id": "a", "title": "iPhone 13 Pro 128GB", "price": 21000, "province": "กรุงเทพมหานคร"},
				{"id": "b", "title": "iPhone 13 Pro 256GB", "price": 24500, "province": "เชียงใหม่"},
				{"id": "c", "title": "iPhone 13 Pro 512GB", "price": 27900, "province": "ภูเก็ต"}
			],
			"match_count": 3
		}`)
	}))
	defer ts.Close()

	client := NewClient(ClientOpts{BaseURL: ts.URL})
	got, err := client.SearchListings(context.Background(), SearchParams{
		Query:      "iphone 13 pro",
		CategoryID: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, got.MatchCount)
	assert.Equal(t, 24500, got.MedianPrice())
}

func TestSearchListingsErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewClient(ClientOpts{BaseURL: ts.URL})
	_, err := client.SearchListings(context.Background(), SearchParams{Query: "x"})
	assert.Error(t, err)
}

func TestMedianPrice(t *testing.T) {
	docs := func(prices ...int) SearchResult {
		var r SearchResult
		for _, p := range prices {
			r.Docs = append(r.Docs, SearchDoc{Price: p})
		}
		return r
	}

	tests := map[string]struct {
		result SearchResult
		want   int
	}{
		"empty":      {docs(), 0},
		"single":     {docs(5000), 5000},
		"odd count":  {docs(3000, 1000, 2000), 2000},
		"even count": {docs(4000, 1000, 3000, 2000), 2500},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.MedianPrice())
		})
	}
}

func TestFindCategory(t *testing.T) {
	cat, ok := FindCategory(3)
	require.True(t, ok)
	assert.Equal(t, "Mobiles & Tablets", cat.Name.EN)

	_, ok = FindCategory(12345)
	assert.False(t, ok)
}

func TestFindSubcategory(t *testing.T) {
	parent, sub, ok := FindSubcategory(301)
	require.True(t, ok)
	assert.Equal(t, 3, parent.ID)
	assert.Equal(t, "Smartphones", sub.Name.EN)
}

func TestCategoryPath(t *testing.T) {
	assert.Equal(t, "Mobiles & Tablets > Smartphones", CategoryPath(3, 301, "en"))
	assert.Equal(t, "มือถือและแท็บเล็ต", CategoryPath(3, 0, "th"))
	assert.Equal(t, "", CategoryPath(12345, 0, "en"))
}
