package storage

import (
	"path/filepath"
	"testing"

	"github.com/kritsada/taladnat-bot/readiness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	key, err := DeriveKey("test-passphrase")
	require.NoError(t, err)

	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"), key)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestDraftRoundTrip(t *testing.T) {
	store := newTestStore(t)

	listing := readiness.ListingData{
		Images:          []string{"a.jpg", "b.jpg"},
		Title:           "iPhone 13 Pro 256GB",
		Description:     "สภาพดีมาก ใช้งานปกติ",
		Price:           24500,
		CategoryID:      3,
		SubcategoryID:   301,
		Condition:       "good",
		Province:        "กรุงเทพมหานคร",
		ShippingOptions: []string{"kerry"},
		Details:         map[string]any{"storage": "256GB"},
		HasWarranty:     true,
	}

	require.NoError(t, store.SaveDraft(1, listing))

	got, err := store.GetDraft(1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, listing.Title, got.Title)
	assert.Equal(t, listing.Price, got.Price)
	assert.Equal(t, listing.ShippingOptions, got.ShippingOptions)
	assert.True(t, got.HasWarranty)

	// Saving again overwrites.
	listing.Price = 23000
	require.NoError(t, store.SaveDraft(1, listing))
	got, err = store.GetDraft(1)
	require.NoError(t, err)
	assert.Equal(t, 23000, got.Price)

	require.NoError(t, store.DeleteDraft(1))
	got, err = store.GetDraft(1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetDraftMissing(t *testing.T) {
	store := newTestStore(t)

	got, err := store.GetDraft(42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEvaluationHistory(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.AddEvaluation(1, 45, readiness.GradeD))
	require.NoError(t, store.AddEvaluation(1, 72, readiness.GradeC))
	require.NoError(t, store.AddEvaluation(1, 91, readiness.GradeA))
	require.NoError(t, store.AddEvaluation(2, 10, readiness.GradeF))

	records, err := store.GetEvaluations(1, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Most recent first.
	assert.Equal(t, 91, records[0].SellScore)
	assert.Equal(t, readiness.GradeA, records[0].SellGrade)
	assert.Equal(t, 72, records[1].SellScore)

	records, err = store.GetEvaluations(3, 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAnalysisCache(t *testing.T) {
	store := newTestStore(t)

	got, err := store.GetAnalysisCache("deadbeef")
	require.NoError(t, err)
	assert.Nil(t, got)

	entry := &AnalysisCacheEntry{
		Title:        "iPhone 13 Pro",
		Description:  "มือถือสภาพดี",
		Brand:        "Apple",
		Model:        "iPhone 13 Pro",
		QualityScore: 87.5,
	}
	require.NoError(t, store.SetAnalysisCache("deadbeef", entry))

	got, err = store.GetAnalysisCache("deadbeef")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entry, got)
}

func TestAllowedUsers(t *testing.T) {
	store := newTestStore(t)

	allowed, err := store.IsUserAllowed(100)
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, store.AddAllowedUser(100, 1))
	require.NoError(t, store.AddAllowedUser(200, 1))

	allowed, err = store.IsUserAllowed(100)
	require.NoError(t, err)
	assert.True(t, allowed)

	users, err := store.GetAllowedUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int64(100), users[0].TelegramID)
	assert.Equal(t, int64(1), users[0].AddedBy)

	// Adding an existing user is an upsert, not an error.
	require.NoError(t, store.AddAllowedUser(100, 1))
	users, err = store.GetAllowedUsers()
	require.NoError(t, err)
	assert.Len(t, users, 2)

	require.NoError(t, store.RemoveAllowedUser(100))
	allowed, err = store.IsUserAllowed(100)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestCredentialEncryptedAtRest(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SetCredential(1, "secret-token"))

	got, err := store.GetCredential(1)
	require.NoError(t, err)
	assert.Equal(t, "secret-token", got)

	// The raw row must not contain the plaintext.
	var raw string
	err = store.db.QueryRow(`SELECT encrypted_token FROM credentials WHERE user_id = 1`).Scan(&raw)
	require.NoError(t, err)
	assert.NotContains(t, raw, "secret-token")

	require.NoError(t, store.DeleteCredential(1))
	got, err = store.GetCredential(1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEncryptDecrypt(t *testing.T) {
	key, err := DeriveKey("passphrase")
	require.NoError(t, err)

	encrypted, err := Encrypt([]byte("hello"), key)
	require.NoError(t, err)

	decrypted, err := Decrypt(encrypted, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), decrypted)

	// Same plaintext encrypts differently thanks to the random nonce.
	encrypted2, err := Encrypt([]byte("hello"), key)
	require.NoError(t, err)
	assert.NotEqual(t, encrypted, encrypted2)

	wrongKey, err := DeriveKey("other-passphrase")
	require.NoError(t, err)
	_, err = Decrypt(encrypted, wrongKey)
	assert.Error(t, err)
}
