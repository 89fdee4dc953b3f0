package database

import (
	"database/sql"
	"fmt"
)

// Migrate creates the schema when it does not exist yet. Statements run
// in order; later tables reference earlier ones.
func Migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			avatar_url TEXT,
			birthday TEXT,
			location TEXT,
			genres TEXT[],
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE TABLE IF NOT EXISTS books (
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL REFERENCES users(id),
			title TEXT NOT NULL,
			author TEXT NOT NULL,
			genre TEXT,
			condition TEXT NOT NULL,
			description TEXT,
			image_url TEXT,
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE TABLE IF NOT EXISTS exchange_requests (
			id UUID PRIMARY KEY,
			book_id UUID NOT NULL REFERENCES books(id) ON DELETE CASCADE,
			requester_id UUID NOT NULL REFERENCES users(id),
			owner_id UUID NOT NULL REFERENCES users(id),
			message TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE TABLE IF NOT EXISTS chat_threads (
			id UUID PRIMARY KEY,
			book_id UUID NOT NULL REFERENCES books(id) ON DELETE CASCADE,
			participant_a UUID NOT NULL REFERENCES users(id),
			participant_b UUID NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (book_id, participant_a, participant_b)
		);`,
		`CREATE TABLE IF NOT EXISTS chat_messages (
			id UUID PRIMARY KEY,
			thread_id UUID NOT NULL REFERENCES chat_threads(id) ON DELETE CASCADE,
			sender_id UUID NOT NULL REFERENCES users(id),
			body TEXT NOT NULL,
			is_read BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE TABLE IF NOT EXISTS notifications (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			message TEXT NOT NULL,
			type TEXT NOT NULL,
			is_read BOOLEAN NOT NULL DEFAULT FALSE,
			related_id UUID,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_books_owner ON books(owner_id);`,
		`CREATE INDEX IF NOT EXISTS idx_exchange_requests_book ON exchange_requests(book_id);`,
		`CREATE INDEX IF NOT EXISTS idx_chat_messages_thread ON chat_messages(thread_id);`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id);`,
	}

	for i, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("migrate stmt %d: %w", i, err)
		}
	}
	return nil
}
