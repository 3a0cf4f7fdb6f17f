package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemDescription(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    ItemDescription
		wantErr bool
	}{
		"plain json": {
			input: `{"title": "iPhone 13 Pro 256GB", "description": "สภาพดี", "brand": "Apple", "model": "iPhone 13 Pro", "quality_score": 85}`,
			want: ItemDescription{
				Title:        "iPhone 13 Pro 256GB",
				Description:  "สภาพดี",
				Brand:        "Apple",
				Model:        "iPhone 13 Pro",
				QualityScore: 85,
			},
		},
		"markdown fenced": {
			input: "```json\n{\"title\": \"Honda Civic\", \"description\": \"รถบ้าน\", \"brand\": \"Honda\", \"model\": \"Civic\", \"quality_score\": 70}\n```",
			want: ItemDescription{
				Title:        "Honda Civic",
				Description:  "รถบ้าน",
				Brand:        "Honda",
				Model:        "Civic",
				QualityScore: 70,
			},
		},
		"fractional quality normalized": {
			input: `{"title": "x", "description": "y", "brand": "", "model": "", "quality_score": 0.85}`,
			want:  ItemDescription{Title: "x", Description: "y", QualityScore: 85},
		},
		"quality clamped": {
			input: `{"title": "x", "description": "y", "brand": "", "model": "", "quality_score": 140}`,
			want:  ItemDescription{Title: "x", Description: "y", QualityScore: 100},
		},
		"no json": {
			input:   "sorry, I cannot identify this item",
			wantErr: true,
		},
		"malformed json": {
			input:   `{"title": }`,
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parseItemDescription(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	got, err := extractJSONObject("prefix {\"a\": 1} suffix")
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, got)

	_, err = extractJSONObject("no braces here")
	assert.Error(t, err)
}

func TestHashImages(t *testing.T) {
	a := hashImages([][]byte{[]byte("ab"), []byte("c")})
	b := hashImages([][]byte{[]byte("a"), []byte("bc")})

	// Length prefixing keeps differently split data distinct.
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, hashImages([][]byte{[]byte("ab"), []byte("c")}))
}
