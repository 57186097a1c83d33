package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/serene/internal/error_values"
	"github.com/limbo/serene/pkg/entity"
)

const userColumns = `id, name, password_hash, display_name, email, language, anonymous, onboarded, reminder_enabled, push_token, created_at, ` +
	`streak, last_log_date, last_mood, total_logs, positive_days, logged_after_bad_day`

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	return NewUsersRepoWithConn(Connect(cfg))
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	mustPing(conn, "usersRepo")
	return &UsersRepository{
		conn: conn,
	}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Name, &u.PasswordHash, &u.DisplayName, &u.Email, &u.Language, &u.Anonymous, &u.Onboarded,
		&u.ReminderEnabled, &u.PushToken, &u.CreatedAt,
		&u.Stats.Streak, &u.Stats.LastLogDate, &u.Stats.LastMood, &u.Stats.TotalLogs, &u.Stats.PositiveDays, &u.Stats.LoggedAfterBadDay)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) (uuid.UUID, error) {
	if user == nil {
		return uuid.Nil, errors.New("user is nil")
	}
	var id uuid.UUID
	row := ur.conn.QueryRow(ctx, `INSERT INTO users (name, password_hash, display_name, email, language, anonymous) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		user.Name, user.PasswordHash, user.DisplayName, user.Email, user.Language, user.Anonymous)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.Nil, errorvalues.ErrUserExists
			}
		}
		return uuid.Nil, errors.New("creating user db error: " + err.Error())
	}
	return id, nil
}

func (ur *UsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	user, err := scanUser(ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE name = $1;`, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by name error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	user, err := scanUser(ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET display_name = $1, email = $2, language = $3 WHERE id = $4;`,
		user.DisplayName,
		user.Email,
		user.Language,
		user.ID,
	)
	if err != nil {
		return errors.New("updating user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) SetOnboarded(ctx context.Context, uid uuid.UUID) error {
	return ur.execOnUser(ctx, "setting onboarded error: ", `UPDATE users SET onboarded = TRUE WHERE id = $1;`, uid)
}

// Reminders get enabled only on the very first registration, later ones keep the user's choice
func (ur *UsersRepository) SetPushToken(ctx context.Context, uid uuid.UUID, token string) error {
	return ur.execOnUser(ctx, "setting push token error: ",
		`UPDATE users SET push_token = $1, reminder_enabled = COALESCE(reminder_enabled, TRUE) WHERE id = $2;`, token, uid)
}

func (ur *UsersRepository) ClearPushToken(ctx context.Context, uid uuid.UUID) error {
	return ur.execOnUser(ctx, "clearing push token error: ", `UPDATE users SET push_token = NULL WHERE id = $1;`, uid)
}

// Disabling reminders also drops the push token
func (ur *UsersRepository) SetReminderEnabled(ctx context.Context, uid uuid.UUID, enabled bool) error {
	return ur.execOnUser(ctx, "setting reminders error: ",
		`UPDATE users SET reminder_enabled = $1, push_token = CASE WHEN $1 THEN push_token ELSE NULL END WHERE id = $2;`, enabled, uid)
}

func (ur *UsersRepository) ListWithPushToken(ctx context.Context, limit int) ([]entity.PushTarget, error) {
	rows, err := ur.conn.Query(ctx, `SELECT id, push_token FROM users
		WHERE push_token IS NOT NULL AND reminder_enabled IS NOT FALSE LIMIT $1;`, limit)
	if err != nil {
		return nil, errors.New("listing push targets error: " + err.Error())
	}
	defer rows.Close()
	targets := make([]entity.PushTarget, 0)
	for rows.Next() {
		var t entity.PushTarget
		if err = rows.Scan(&t.UserID, &t.Token); err != nil {
			return nil, errors.New("push target row parsing error: " + err.Error())
		}
		targets = append(targets, t)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected push target rows error: " + err.Error())
	}
	return targets, nil
}

// Delete removes the user together with their mood log and chat history
func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	tx, err := ur.conn.Begin(ctx)
	if err != nil {
		return errors.New("deleting user error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	for _, q := range []string{
		`DELETE FROM mood_logs WHERE owner_id = $1;`,
		`DELETE FROM chat_history WHERE owner_id = $1;`,
	} {
		if _, err = tx.Exec(ctx, q, uid); err != nil {
			return errors.New("deleting user data error: " + err.Error())
		}
	}
	ct, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("deleting user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("deleting user commit error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) execOnUser(ctx context.Context, errPrefix, sql string, args ...any) error {
	ct, err := ur.conn.Exec(ctx, sql, args...)
	if err != nil {
		return errors.New(errPrefix + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}
