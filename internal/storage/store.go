// Package storage persists listing drafts, evaluation history and the
// photo analysis cache in SQLite.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kritsada/taladnat-bot/readiness"
	_ "modernc.org/sqlite"
)

// EvaluationRecord is one row of a user's scoring history.
type EvaluationRecord struct {
	ID        int64
	UserID    int64
	SellScore int
	SellGrade readiness.Grade
	CreatedAt time.Time
}

// AllowedUser is one entry of the user whitelist.
type AllowedUser struct {
	TelegramID int64
	AddedBy    int64
	AddedAt    time.Time
}

// AnalysisCacheEntry caches Gemini photo analysis keyed by image hash.
type AnalysisCacheEntry struct {
	Title        string
	Description  string
	Brand        string
	Model        string
	QualityScore float64
}

// Store defines the persistence interface the bot depends on.
type Store interface {
	// Draft methods (single draft per user)
	SaveDraft(userID int64, listing readiness.ListingData) error
	GetDraft(userID int64) (*readiness.ListingData, error)
	DeleteDraft(userID int64) error

	// Evaluation history
	AddEvaluation(userID int64, sellScore int, sellGrade readiness.Grade) error
	GetEvaluations(userID int64, limit int) ([]EvaluationRecord, error)

	// Photo analysis cache
	GetAnalysisCache(imageHash string) (*AnalysisCacheEntry, error)
	SetAnalysisCache(imageHash string, entry *AnalysisCacheEntry) error

	// User whitelist
	IsUserAllowed(telegramID int64) (bool, error)
	AddAllowedUser(telegramID, addedBy int64) error
	RemoveAllowedUser(telegramID int64) error
	GetAllowedUsers() ([]AllowedUser, error)

	// Marketplace credential storage (encrypted at rest)
	SetCredential(userID int64, token string) error
	GetCredential(userID int64) (string, error)
	DeleteCredential(userID int64) error

	Close() error
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db            *sql.DB
	encryptionKey []byte
}

// NewSQLiteStore opens (and if needed creates) the database at dbPath.
// The encryptionKey protects stored marketplace credentials.
func NewSQLiteStore(dbPath string, encryptionKey []byte) (*SQLiteStore, error) {
	// WAL mode and a busy timeout for concurrent handler goroutines.
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{
		db:            db,
		encryptionKey: encryptionKey,
	}

	if err := store.init(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) init() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS drafts (
			user_id INTEGER PRIMARY KEY,
			data TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS evaluations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			sell_score INTEGER NOT NULL,
			sell_grade TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_evaluations_user
			ON evaluations(user_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS analysis_cache (
			image_hash TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			brand TEXT,
			model TEXT,
			quality_score REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS allowed_users (
			telegram_id INTEGER PRIMARY KEY,
			added_by INTEGER NOT NULL,
			added_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS credentials (
			user_id INTEGER PRIMARY KEY,
			encrypted_token TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) SaveDraft(userID int64, listing readiness.ListingData) error {
	data, err := json.Marshal(listing)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO drafts (user_id, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		userID, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetDraft(userID int64) (*readiness.ListingData, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM drafts WHERE user_id = ?`, userID).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}

	var listing readiness.ListingData
	if err := json.Unmarshal([]byte(data), &listing); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &listing, nil
}

func (s *SQLiteStore) DeleteDraft(userID int64) error {
	if _, err := s.db.Exec(`DELETE FROM drafts WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

func (s *SQLiteStore) AddEvaluation(userID int64, sellScore int, sellGrade readiness.Grade) error {
	_, err := s.db.Exec(`
		INSERT INTO evaluations (user_id, sell_score, sell_grade, created_at) VALUES (?, ?, ?, ?)`,
		userID, sellScore, string(sellGrade), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to add evaluation: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetEvaluations(userID int64, limit int) ([]EvaluationRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, sell_score, sell_grade, created_at
		FROM evaluations WHERE user_id = ?
		ORDER BY created_at DESC, id DESC LIMIT ?`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query evaluations: %w", err)
	}
	defer rows.Close()

	var records []EvaluationRecord
	for rows.Next() {
		var rec EvaluationRecord
		var grade string
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.SellScore, &grade, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		rec.SellGrade = readiness.Grade(grade)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) GetAnalysisCache(imageHash string) (*AnalysisCacheEntry, error) {
	var entry AnalysisCacheEntry
	err := s.db.QueryRow(`
		SELECT title, description, brand, model, quality_score
		FROM analysis_cache WHERE image_hash = ?`,
		imageHash).Scan(&entry.Title, &entry.Description, &entry.Brand, &entry.Model, &entry.QualityScore)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis cache: %w", err)
	}
	return &entry, nil
}

func (s *SQLiteStore) SetAnalysisCache(imageHash string, entry *AnalysisCacheEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO analysis_cache (image_hash, title, description, brand, model, quality_score)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(image_hash) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			brand = excluded.brand,
			model = excluded.model,
			quality_score = excluded.quality_score`,
		imageHash, entry.Title, entry.Description, entry.Brand, entry.Model, entry.QualityScore)
	if err != nil {
		return fmt.Errorf("failed to set analysis cache: %w", err)
	}
	return nil
}

func (s *SQLiteStore) IsUserAllowed(telegramID int64) (bool, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM allowed_users WHERE telegram_id = ?`, telegramID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check allowed user: %w", err)
	}
	return count > 0, nil
}

func (s *SQLiteStore) AddAllowedUser(telegramID, addedBy int64) error {
	_, err := s.db.Exec(`
		INSERT INTO allowed_users (telegram_id, added_by) VALUES (?, ?)
		ON CONFLICT(telegram_id) DO UPDATE SET
			added_by = excluded.added_by,
			added_at = CURRENT_TIMESTAMP`,
		telegramID, addedBy)
	if err != nil {
		return fmt.Errorf("failed to add allowed user: %w", err)
	}
	return nil
}

func (s *SQLiteStore) RemoveAllowedUser(telegramID int64) error {
	if _, err := s.db.Exec(`DELETE FROM allowed_users WHERE telegram_id = ?`, telegramID); err != nil {
		return fmt.Errorf("failed to remove allowed user: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetAllowedUsers() ([]AllowedUser, error) {
	rows, err := s.db.Query(`SELECT telegram_id, added_by, added_at FROM allowed_users ORDER BY added_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query allowed users: %w", err)
	}
	defer rows.Close()

	var users []AllowedUser
	for rows.Next() {
		var u AllowedUser
		if err := rows.Scan(&u.TelegramID, &u.AddedBy, &u.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan allowed user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *SQLiteStore) SetCredential(userID int64, token string) error {
	encrypted, err := Encrypt([]byte(token), s.encryptionKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt credential: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO credentials (user_id, encrypted_token, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			encrypted_token = excluded.encrypted_token,
			updated_at = excluded.updated_at`,
		userID, encrypted, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetCredential(userID int64) (string, error) {
	var encrypted string
	err := s.db.QueryRow(`SELECT encrypted_token FROM credentials WHERE user_id = ?`, userID).Scan(&encrypted)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get credential: %w", err)
	}

	token, err := Decrypt(encrypted, s.encryptionKey)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt credential: %w", err)
	}
	return string(token), nil
}

func (s *SQLiteStore) DeleteCredential(userID int64) error {
	if _, err := s.db.Exec(`DELETE FROM credentials WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
