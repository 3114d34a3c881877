package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"addressbook/internal/domain"
)

// historyTx groups the writes of one save
type historyTx struct {
	ctx context.Context
	tx  *sql.Tx
}

func (s *Store) begin(ctx context.Context) (*historyTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &historyTx{ctx: ctx, tx: tx}, nil
}

// clearStates removes every state and its persons
func (t *historyTx) clearStates() error {
	if _, err := t.tx.ExecContext(t.ctx, `DELETE FROM persons`); err != nil {
		return err
	}
	_, err := t.tx.ExecContext(t.ctx, `DELETE FROM states`)
	return err
}

// insertState writes book as state number version
func (t *historyTx) insertState(version int, book domain.AddressBook) error {
	if _, err := t.tx.ExecContext(t.ctx, `INSERT INTO states (version) VALUES (?)`, version); err != nil {
		return err
	}

	stmt, err := t.tx.PrepareContext(t.ctx, `
		INSERT INTO persons (version, position, name, phone, email, address, tags, remark)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for pos, p := range book.Persons() {
		if _, err := stmt.ExecContext(t.ctx, version, pos,
			string(p.Name()), string(p.Phone()), string(p.Email()), string(p.Address()),
			encodeTags(p.Tags()), string(p.Remark())); err != nil {
			return err
		}
	}
	return nil
}

// setMeta upserts one metadata value
func (t *historyTx) setMeta(key, value string) error {
	_, err := t.tx.ExecContext(t.ctx, `INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// setFilter stores the filter kind and its keywords
func (t *historyTx) setFilter(f domain.Filter) error {
	if err := t.setMeta(metaFilterKind, f.Kind.String()); err != nil {
		return err
	}
	return t.setMeta(metaFilterKeywords, strings.Join(f.Keywords, " "))
}

// Commit commits the transaction
func (t *historyTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *historyTx) Rollback() error {
	return t.tx.Rollback()
}
