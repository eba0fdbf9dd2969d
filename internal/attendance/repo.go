package attendance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes the repository translates into domain errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Repository persists users and logs in Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser inserts a user. Roll number uniqueness rides on the table's
// unique constraint, so concurrent creates with the same roll number cannot
// race past the check.
func (r *Repository) CreateUser(ctx context.Context, name, rollNo, macAddress string) (User, error) {
	u := User{ID: uuid.NewString(), Name: name, RollNo: rollNo, MacAddress: macAddress}
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO users (id, name, roll_no, mac_address)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		RETURNING created_at
	`, u.ID, u.Name, u.RollNo, u.MacAddress)
	if err := row.Scan(&u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return User{}, ErrDuplicateRollNo
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

// GetUser returns a single user by id.
func (r *Repository) GetUser(ctx context.Context, id string) (User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, roll_no, COALESCE(mac_address, ''), created_at
		FROM users WHERE id = $1
	`, id)
	var u User
	if err := row.Scan(&u.ID, &u.Name, &u.RollNo, &u.MacAddress, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// ListUsers returns all users in creation order. The order is stable so a
// report computed from one listing keeps its rows aligned.
func (r *Repository) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, roll_no, COALESCE(mac_address, ''), created_at
		FROM users
		ORDER BY created_at, roll_no
	`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.RollNo, &u.MacAddress, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CreateLog inserts a log for an existing user. The foreign key does the
// existence check atomically; a violation maps to ErrUserNotFound and no
// orphan row is written.
func (r *Repository) CreateLog(ctx context.Context, userID string, ts time.Time) (Log, error) {
	l := Log{ID: uuid.NewString(), UserID: userID, Timestamp: ts}
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO logs (id, user_id, timestamp)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`, l.ID, l.UserID, l.Timestamp)
	if err := row.Scan(&l.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return Log{}, ErrUserNotFound
		}
		return Log{}, fmt.Errorf("insert log: %w", err)
	}
	return l, nil
}

// ListLogs returns every log, oldest first.
func (r *Repository) ListLogs(ctx context.Context) ([]Log, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, timestamp, created_at
		FROM logs
		ORDER BY timestamp
	`)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	defer rows.Close()

	var logs []Log
	for rows.Next() {
		var l Log
		if err := rows.Scan(&l.ID, &l.UserID, &l.Timestamp, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// ListLogDetails returns logs joined with user names, newest first.
func (r *Repository) ListLogDetails(ctx context.Context) ([]LogDetail, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT l.id, u.name, l.timestamp
		FROM logs l
		JOIN users u ON u.id = l.user_id
		ORDER BY l.timestamp DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list log details: %w", err)
	}
	defer rows.Close()

	var details []LogDetail
	for rows.Next() {
		var d LogDetail
		if err := rows.Scan(&d.LogID, &d.UserName, &d.Timestamp); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}
