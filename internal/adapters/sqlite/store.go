// Package sqlite persists address book history in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"addressbook/internal/domain"
	"addressbook/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

const (
	metaSchemaVersion  = "schema_version"
	metaCurrent        = "current"
	metaFilterKind     = "filter_kind"
	metaFilterKeywords = "filter_keywords"
)

// Store implements ports.AddressBookStore using SQLite
type Store struct {
	db     *sql.DB
	dbPath string
	logger *zap.Logger
}

// Ensure Store implements AddressBookStore
var _ ports.AddressBookStore = (*Store)(nil)

// NewStore creates a new SQLite store. Call Open before use.
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{logger: logger}
}

// Open opens (creating if needed) the database at dbPath
func (s *Store) Open(dbPath string) error {
	dbPath, err := ExpandPath(dbPath)
	if err != nil {
		return err
	}
	s.dbPath = dbPath

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	_, err = db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;
		PRAGMA foreign_keys = ON;

		CREATE TABLE IF NOT EXISTS states (
			version INTEGER PRIMARY KEY
		);
		CREATE TABLE IF NOT EXISTS persons (
			version INTEGER NOT NULL REFERENCES states(version) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			phone TEXT NOT NULL,
			email TEXT NOT NULL,
			address TEXT NOT NULL,
			tags TEXT NOT NULL DEFAULT '',
			remark TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (version, position)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`,
		metaSchemaVersion, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	s.logger.Debug("sqlite store opened", zap.String("path", dbPath))
	return nil
}

// Path returns the resolved database path
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ExpandPath resolves a leading ~ to the user's home directory
func ExpandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return path, nil
}

// Load reads every stored state, the cursor and the saved filter.
// An empty database yields an empty snapshot.
func (s *Store) Load(ctx context.Context) (*domain.Snapshot, error) {
	versions, err := s.versions(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := &domain.Snapshot{States: make([]domain.AddressBook, 0, len(versions))}
	for _, v := range versions {
		book, err := s.loadState(ctx, v)
		if err != nil {
			return nil, fmt.Errorf("failed to load state %d: %w", v, err)
		}
		snapshot.States = append(snapshot.States, book)
	}

	meta, err := s.meta(ctx)
	if err != nil {
		return nil, err
	}
	if cur, ok := meta[metaCurrent]; ok {
		n, err := strconv.Atoi(cur)
		if err != nil {
			return nil, fmt.Errorf("corrupt history cursor %q: %w", cur, err)
		}
		snapshot.Current = n
	}
	snapshot.Filter = decodeFilter(meta[metaFilterKind], meta[metaFilterKeywords])

	s.logger.Debug("sqlite snapshot loaded",
		zap.Int("states", len(snapshot.States)),
		zap.Int("current", snapshot.Current))
	return snapshot, nil
}

func (s *Store) versions(ctx context.Context) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT version FROM states ORDER BY version`)
	if err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}
	defer rows.Close()

	var versions []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

func (s *Store) loadState(ctx context.Context, version int) (domain.AddressBook, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, phone, email, address, tags, remark
		FROM persons WHERE version = ? ORDER BY position
	`, version)
	if err != nil {
		return domain.AddressBook{}, err
	}
	defer rows.Close()

	var persons []domain.Person
	for rows.Next() {
		var name, phone, email, address, tags, remark string
		if err := rows.Scan(&name, &phone, &email, &address, &tags, &remark); err != nil {
			return domain.AddressBook{}, err
		}
		persons = append(persons, domain.NewPerson(
			domain.Name(name),
			domain.Phone(phone),
			domain.Email(email),
			domain.Address(address),
			decodeTags(tags),
			domain.Remark(remark),
		))
	}
	if err := rows.Err(); err != nil {
		return domain.AddressBook{}, err
	}

	return domain.NewAddressBook(persons...)
}

func (s *Store) meta(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM meta`)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}
	defer rows.Close()

	meta := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		meta[k] = v
	}
	return meta, rows.Err()
}

// SaveHistory replaces every stored state in a single transaction
func (s *Store) SaveHistory(ctx context.Context, snapshot *domain.Snapshot) (err error) {
	if snapshot == nil {
		return errors.New("nil snapshot")
	}

	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if err = tx.clearStates(); err != nil {
		return fmt.Errorf("failed to clear states: %w", err)
	}
	for v, book := range snapshot.States {
		if err = tx.insertState(v, book); err != nil {
			return fmt.Errorf("failed to write state %d: %w", v, err)
		}
	}
	if err = tx.setMeta(metaCurrent, strconv.Itoa(snapshot.Current)); err != nil {
		return err
	}
	if err = tx.setFilter(snapshot.Filter); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit history: %w", err)
	}

	s.logger.Debug("sqlite history saved",
		zap.Int("states", len(snapshot.States)),
		zap.Int("current", snapshot.Current))
	return nil
}

// SaveView stores only the active filter
func (s *Store) SaveView(ctx context.Context, filter domain.Filter) (err error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if err = tx.setFilter(filter); err != nil {
		return err
	}
	return tx.Commit()
}

func encodeTags(tags []domain.Tag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}

func decodeTags(s string) []domain.Tag {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]domain.Tag, len(parts))
	for i, p := range parts {
		tags[i] = domain.Tag(p)
	}
	return tags
}

// Keywords never contain whitespace, so a space separator round-trips
func decodeFilter(kind, keywords string) domain.Filter {
	k, ok := domain.ParseFilterKind(kind)
	if !ok || k == domain.FilterAll {
		return domain.ShowAll
	}
	kw := strings.Fields(keywords)
	if len(kw) == 0 {
		return domain.ShowAll
	}
	return domain.Filter{Kind: k, Keywords: kw}
}
