package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/bookswap/bookswap/internal/models"
)

// PostgresStore implements Store on top of PostgreSQL
type PostgresStore struct {
	*sql.DB
}

// NewPostgresStore opens a connection pool and verifies it
func NewPostgresStore(connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &PostgresStore{db}, nil
}

// Close releases the connection pool
func (s *PostgresStore) Close() error {
	return s.DB.Close()
}

// --- Users ---

func (s *PostgresStore) CreateUser(name, email, passwordHash string) (*models.User, error) {
	var count int
	err := s.QueryRow("SELECT COUNT(*) FROM users WHERE email = $1", email).Scan(&count)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUserAlreadyExists
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	_, err = s.Exec(
		"INSERT INTO users (id, name, email, password_hash, created_at) VALUES ($1, $2, $3, $4, $5)",
		user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return user, nil
}

const userColumns = `id, name, email, password_hash,
	COALESCE(avatar_url, ''), COALESCE(birthday, ''), COALESCE(location, ''),
	COALESCE(genres, '{}'), created_at`

func scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.AvatarURL, &user.Birthday, &user.Location,
		pq.Array(&user.Genres), &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *PostgresStore) GetUserByEmail(email string) (*models.User, error) {
	row := s.QueryRow("SELECT "+userColumns+" FROM users WHERE email = $1", email)
	return scanUser(row)
}

func (s *PostgresStore) GetUserByID(id uuid.UUID) (*models.User, error) {
	row := s.QueryRow("SELECT "+userColumns+" FROM users WHERE id = $1", id)
	return scanUser(row)
}

func (s *PostgresStore) UpdateUserProfile(id uuid.UUID, update *models.ProfileUpdate) (*models.User, error) {
	result, err := s.Exec(
		`UPDATE users SET name = $1, avatar_url = $2, birthday = $3, location = $4, genres = $5
		 WHERE id = $6`,
		update.Name, update.AvatarURL, update.Birthday, update.Location,
		pq.Array(update.Genres), id,
	)
	if err != nil {
		return nil, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	return s.GetUserByID(id)
}

// --- Books ---

const bookColumns = `id, owner_id, title, author, COALESCE(genre, ''), condition,
	COALESCE(description, ''), COALESCE(image_url, ''), is_available, created_at, updated_at`

func scanBookRow(row *sql.Row) (*models.Book, error) {
	var b models.Book
	err := row.Scan(
		&b.ID, &b.OwnerID, &b.Title, &b.Author, &b.Genre, &b.Condition,
		&b.Description, &b.ImageURL, &b.IsAvailable, &b.CreatedAt, &b.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *PostgresStore) CreateBook(ownerID uuid.UUID, input *models.BookInput) (*models.Book, error) {
	if _, err := s.GetUserByID(ownerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	book := &models.Book{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       input.Title,
		Author:      input.Author,
		Genre:       input.Genre,
		Condition:   input.Condition,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := s.Exec(
		`INSERT INTO books (id, owner_id, title, author, genre, condition, description, image_url, is_available, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		book.ID, book.OwnerID, book.Title, book.Author, book.Genre, book.Condition,
		book.Description, book.ImageURL, book.IsAvailable, book.CreatedAt, book.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return book, nil
}

func (s *PostgresStore) GetBookByID(id uuid.UUID) (*models.Book, error) {
	row := s.QueryRow("SELECT "+bookColumns+" FROM books WHERE id = $1", id)
	return scanBookRow(row)
}

func (s *PostgresStore) ListBooks(filter models.BookFilter) ([]*models.Book, int, error) {
	where := "WHERE TRUE"
	args := []interface{}{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		where += fmt.Sprintf(" AND (title ILIKE $%d OR author ILIKE $%d)", n, n)
	}
	if filter.Genre != "" {
		args = append(args, filter.Genre)
		where += fmt.Sprintf(" AND genre = $%d", len(args))
	}
	if filter.Condition != "" {
		args = append(args, filter.Condition)
		where += fmt.Sprintf(" AND condition = $%d", len(args))
	}

	var total int
	if err := s.QueryRow("SELECT COUNT(*) FROM books "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.Size
	if size < 1 {
		size = models.DefaultPageSize
	}

	args = append(args, size, (page-1)*size)
	query := fmt.Sprintf(
		"SELECT "+bookColumns+" FROM books %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)-1, len(args),
	)

	rows, err := s.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var books []*models.Book
	for rows.Next() {
		var b models.Book
		err := rows.Scan(
			&b.ID, &b.OwnerID, &b.Title, &b.Author, &b.Genre, &b.Condition,
			&b.Description, &b.ImageURL, &b.IsAvailable, &b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		books = append(books, &b)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

func (s *PostgresStore) UpdateBook(id uuid.UUID, input *models.BookInput) (*models.Book, error) {
	result, err := s.Exec(
		`UPDATE books SET title = $1, author = $2, genre = $3, condition = $4,
		 description = $5, image_url = $6, updated_at = $7 WHERE id = $8`,
		input.Title, input.Author, input.Genre, input.Condition,
		input.Description, input.ImageURL, time.Now().UTC(), id,
	)
	if err != nil {
		return nil, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, ErrBookNotFound
	}

	return s.GetBookByID(id)
}

func (s *PostgresStore) DeleteBook(id uuid.UUID) error {
	result, err := s.Exec("DELETE FROM books WHERE id = $1", id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrBookNotFound
	}

	return nil
}

// --- Exchange requests ---

const exchangeColumns = `id, book_id, requester_id, owner_id, message, status, created_at, updated_at`

func (s *PostgresStore) CreateExchangeRequest(bookID, requesterID, ownerID uuid.UUID, message string) (*models.ExchangeRequest, error) {
	now := time.Now().UTC()
	req := &models.ExchangeRequest{
		ID:          uuid.New(),
		BookID:      bookID,
		RequesterID: requesterID,
		OwnerID:     ownerID,
		Message:     message,
		Status:      models.ExchangePending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := s.Exec(
		`INSERT INTO exchange_requests (id, book_id, requester_id, owner_id, message, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		req.ID, req.BookID, req.RequesterID, req.OwnerID, req.Message, req.Status,
		req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return req, nil
}

func (s *PostgresStore) GetExchangeRequestByID(id uuid.UUID) (*models.ExchangeRequest, error) {
	var req models.ExchangeRequest
	err := s.QueryRow(
		"SELECT "+exchangeColumns+" FROM exchange_requests WHERE id = $1", id,
	).Scan(
		&req.ID, &req.BookID, &req.RequesterID, &req.OwnerID,
		&req.Message, &req.Status, &req.CreatedAt, &req.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrExchangeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ResolveExchangeRequest transitions a request out of pending. The
// update is conditional on the current status, so a concurrent second
// accept or reject loses and surfaces as ErrExchangeResolved. Accepting
// also marks the book unavailable, in the same transaction.
func (s *PostgresStore) ResolveExchangeRequest(id uuid.UUID, status models.ExchangeStatus) (*models.ExchangeRequest, error) {
	tx, err := s.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var req models.ExchangeRequest
	err = tx.QueryRow(
		`UPDATE exchange_requests SET status = $2, updated_at = $3
		 WHERE id = $1 AND status = 'pending'
		 RETURNING `+exchangeColumns,
		id, status, time.Now().UTC(),
	).Scan(
		&req.ID, &req.BookID, &req.RequesterID, &req.OwnerID,
		&req.Message, &req.Status, &req.CreatedAt, &req.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		// Distinguish a missing request from one already resolved
		var existing string
		err = tx.QueryRow("SELECT status FROM exchange_requests WHERE id = $1", id).Scan(&existing)
		if err == sql.ErrNoRows {
			return nil, ErrExchangeNotFound
		}
		if err != nil {
			return nil, err
		}
		return nil, ErrExchangeResolved
	}
	if err != nil {
		return nil, err
	}

	if status == models.ExchangeAccepted {
		if _, err := tx.Exec(
			"UPDATE books SET is_available = FALSE, updated_at = $2 WHERE id = $1",
			req.BookID, time.Now().UTC(),
		); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &req, nil
}

func (s *PostgresStore) ListExchangeRequestsForBook(bookID uuid.UUID) ([]*models.ExchangeRequest, error) {
	rows, err := s.Query(
		"SELECT "+exchangeColumns+" FROM exchange_requests WHERE book_id = $1 ORDER BY created_at ASC",
		bookID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []*models.ExchangeRequest
	for rows.Next() {
		var req models.ExchangeRequest
		err := rows.Scan(
			&req.ID, &req.BookID, &req.RequesterID, &req.OwnerID,
			&req.Message, &req.Status, &req.CreatedAt, &req.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, &req)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reqs, nil
}

// exchangeDetailQuery joins a request with its book and the counterpart
// user. $1 is the viewer; the counterpart is whichever side the viewer
// is not.
const exchangeDetailQuery = `
	SELECT r.id, r.book_id, r.requester_id, r.owner_id, r.message, r.status,
	       r.created_at, r.updated_at,
	       b.id, b.title, b.author, COALESCE(b.image_url, ''),
	       u.id, u.name, COALESCE(u.avatar_url, '')
	FROM exchange_requests r
	JOIN books b ON b.id = r.book_id
	JOIN users u ON u.id = CASE WHEN r.requester_id = $1 THEN r.owner_id ELSE r.requester_id END`

func scanExchangeDetails(rows *sql.Rows) ([]*models.ExchangeDetail, error) {
	var details []*models.ExchangeDetail
	for rows.Next() {
		var d models.ExchangeDetail
		err := rows.Scan(
			&d.ID, &d.BookID, &d.RequesterID, &d.OwnerID, &d.Message, &d.Status,
			&d.CreatedAt, &d.UpdatedAt,
			&d.Book.ID, &d.Book.Title, &d.Book.Author, &d.Book.ImageURL,
			&d.Counterpart.ID, &d.Counterpart.Name, &d.Counterpart.AvatarURL,
		)
		if err != nil {
			return nil, err
		}
		details = append(details, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}

func (s *PostgresStore) ListExchangeRequestsForUser(userID uuid.UUID) ([]*models.ExchangeDetail, error) {
	rows, err := s.Query(
		exchangeDetailQuery+`
		WHERE r.requester_id = $1 OR r.owner_id = $1
		ORDER BY r.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExchangeDetails(rows)
}

func (s *PostgresStore) ExchangeHistory(userID uuid.UUID) ([]*models.ExchangeDetail, error) {
	rows, err := s.Query(
		exchangeDetailQuery+`
		WHERE r.status = 'accepted' AND (r.requester_id = $1 OR r.owner_id = $1)
		ORDER BY r.updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExchangeDetails(rows)
}

// RecentExchanges returns the latest accepted exchanges across all
// users. There is no viewer, so the counterpart column carries the
// requester.
func (s *PostgresStore) RecentExchanges(limit int) ([]*models.ExchangeDetail, error) {
	rows, err := s.Query(`
		SELECT r.id, r.book_id, r.requester_id, r.owner_id, r.message, r.status,
		       r.created_at, r.updated_at,
		       b.id, b.title, b.author, COALESCE(b.image_url, ''),
		       u.id, u.name, COALESCE(u.avatar_url, '')
		FROM exchange_requests r
		JOIN books b ON b.id = r.book_id
		JOIN users u ON u.id = r.requester_id
		WHERE r.status = 'accepted'
		ORDER BY r.updated_at DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExchangeDetails(rows)
}

// --- Chat ---

const threadColumns = `id, book_id, participant_a, participant_b, created_at, updated_at`

// GetOrCreateThread finds the thread for a book between two users,
// matching the pair in either order, and creates it when absent. The
// second return value reports whether a new thread was created.
func (s *PostgresStore) GetOrCreateThread(bookID, userA, userB uuid.UUID) (*models.ChatThread, bool, error) {
	tx, err := s.Begin()
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback()

	var t models.ChatThread
	err = tx.QueryRow(
		`SELECT `+threadColumns+` FROM chat_threads
		 WHERE book_id = $1
		   AND ((participant_a = $2 AND participant_b = $3)
		     OR (participant_a = $3 AND participant_b = $2))`,
		bookID, userA, userB,
	).Scan(&t.ID, &t.BookID, &t.ParticipantA, &t.ParticipantB, &t.CreatedAt, &t.UpdatedAt)
	if err == nil {
		return &t, false, tx.Commit()
	}
	if err != sql.ErrNoRows {
		return nil, false, err
	}

	now := time.Now().UTC()
	t = models.ChatThread{
		ID:           uuid.New(),
		BookID:       bookID,
		ParticipantA: userA,
		ParticipantB: userB,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err = tx.Exec(
		`INSERT INTO chat_threads (id, book_id, participant_a, participant_b, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.BookID, t.ParticipantA, t.ParticipantB, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return nil, false, err
	}

	return &t, true, tx.Commit()
}

func (s *PostgresStore) GetThreadByID(id uuid.UUID) (*models.ChatThread, error) {
	var t models.ChatThread
	err := s.QueryRow(
		"SELECT "+threadColumns+" FROM chat_threads WHERE id = $1", id,
	).Scan(&t.ID, &t.BookID, &t.ParticipantA, &t.ParticipantB, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrThreadNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListThreadsForUser returns the viewer's threads with the book, the
// other participant, and a one-message preview, newest activity first.
func (s *PostgresStore) ListThreadsForUser(userID uuid.UUID) ([]*models.ThreadSummary, error) {
	rows, err := s.Query(`
		SELECT t.id, t.book_id, t.participant_a, t.participant_b, t.created_at, t.updated_at,
		       b.id, b.title, COALESCE(b.image_url, ''),
		       u.id, u.name, COALESCE(u.avatar_url, ''),
		       lm.id, lm.sender_id, lm.body, lm.is_read, lm.created_at
		FROM chat_threads t
		JOIN books b ON b.id = t.book_id
		JOIN users u ON u.id = CASE WHEN t.participant_a = $1 THEN t.participant_b ELSE t.participant_a END
		LEFT JOIN LATERAL (
			SELECT id, sender_id, body, is_read, created_at
			FROM chat_messages
			WHERE thread_id = t.id
			ORDER BY created_at DESC
			LIMIT 1
		) lm ON TRUE
		WHERE t.participant_a = $1 OR t.participant_b = $1
		ORDER BY t.updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var threads []*models.ThreadSummary
	for rows.Next() {
		var ts models.ThreadSummary
		var msgID, msgSender uuid.NullUUID
		var msgBody sql.NullString
		var msgRead sql.NullBool
		var msgCreated sql.NullTime

		err := rows.Scan(
			&ts.ID, &ts.BookID, &ts.ParticipantA, &ts.ParticipantB, &ts.CreatedAt, &ts.UpdatedAt,
			&ts.Book.ID, &ts.Book.Title, &ts.Book.ImageURL,
			&ts.Counterpart.ID, &ts.Counterpart.Name, &ts.Counterpart.AvatarURL,
			&msgID, &msgSender, &msgBody, &msgRead, &msgCreated,
		)
		if err != nil {
			return nil, err
		}

		if msgID.Valid {
			ts.LastMessage = &models.ChatMessage{
				ID:        msgID.UUID,
				ThreadID:  ts.ID,
				SenderID:  msgSender.UUID,
				Body:      msgBody.String,
				IsRead:    msgRead.Bool,
				CreatedAt: msgCreated.Time,
			}
		}
		ts.DeriveRead(userID)

		threads = append(threads, &ts)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return threads, nil
}

func (s *PostgresStore) ListThreadMessages(threadID uuid.UUID) ([]*models.ChatMessage, error) {
	rows, err := s.Query(
		`SELECT id, thread_id, sender_id, body, is_read, created_at
		 FROM chat_messages WHERE thread_id = $1 ORDER BY created_at ASC`,
		threadID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		err := rows.Scan(&m.ID, &m.ThreadID, &m.SenderID, &m.Body, &m.IsRead, &m.CreatedAt)
		if err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

// MarkThreadMessagesRead flips every unread message in the thread not
// authored by the reader, as one batch update.
func (s *PostgresStore) MarkThreadMessagesRead(threadID, readerID uuid.UUID) error {
	_, err := s.Exec(
		`UPDATE chat_messages SET is_read = TRUE
		 WHERE thread_id = $1 AND sender_id <> $2 AND is_read = FALSE`,
		threadID, readerID,
	)
	return err
}

// CreateChatMessage inserts an unread message and bumps the thread's
// recency timestamp together.
func (s *PostgresStore) CreateChatMessage(threadID, senderID uuid.UUID, body string) (*models.ChatMessage, error) {
	tx, err := s.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	msg := &models.ChatMessage{
		ID:        uuid.New(),
		ThreadID:  threadID,
		SenderID:  senderID,
		Body:      body,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}

	_, err = tx.Exec(
		`INSERT INTO chat_messages (id, thread_id, sender_id, body, is_read, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		msg.ID, msg.ThreadID, msg.SenderID, msg.Body, msg.IsRead, msg.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	result, err := tx.Exec(
		"UPDATE chat_threads SET updated_at = $1 WHERE id = $2",
		msg.CreatedAt, threadID,
	)
	if err != nil {
		return nil, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, ErrThreadNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return msg, nil
}

// --- Notifications ---

func (s *PostgresStore) CreateNotification(userID uuid.UUID, title, message string, typ models.NotificationType, relatedID *uuid.UUID) (*models.Notification, error) {
	n := &models.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      typ,
		IsRead:    false,
		RelatedID: relatedID,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.Exec(
		`INSERT INTO notifications (id, user_id, title, message, type, is_read, related_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		n.ID, n.UserID, n.Title, n.Message, n.Type, n.IsRead, n.RelatedID, n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return n, nil
}

func (s *PostgresStore) ListNotifications(userID uuid.UUID) ([]*models.Notification, error) {
	rows, err := s.Query(
		`SELECT id, user_id, title, message, type, is_read, related_id, created_at
		 FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		var n models.Notification
		var relatedID uuid.NullUUID

		err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.IsRead, &relatedID, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		if relatedID.Valid {
			n.RelatedID = &relatedID.UUID
		}

		notifications = append(notifications, &n)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

// MarkNotificationRead is scoped to the recipient, so one user cannot
// flip another's feed entries.
func (s *PostgresStore) MarkNotificationRead(id, userID uuid.UUID) error {
	result, err := s.Exec(
		"UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2",
		id, userID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

func (s *PostgresStore) MarkAllNotificationsRead(userID uuid.UUID) error {
	_, err := s.Exec(
		"UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE",
		userID,
	)
	return err
}
