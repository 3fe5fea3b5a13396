package storage

import (
	"context"
	"database/sql"
	"errors"

	pq "github.com/lib/pq"
)

var ErrNotFound = errors.New("not found")

// ErrDuplicate: violación de unique (23505) ya mapeada por el repo.
var ErrDuplicate = errors.New("duplicate")

type UserRepo struct{ db *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// Upsert por discord_id. El username se pisa siempre; account_id solo
// si el nuevo valor no es NULL (COALESCE preserva el existente).
func (r *UserRepo) Upsert(ctx context.Context, u User) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO users (discord_id, epic_username, account_id)
VALUES ($1, $2, $3)
ON CONFLICT (discord_id) DO UPDATE SET
  epic_username = EXCLUDED.epic_username,
  account_id    = COALESCE(EXCLUDED.account_id, users.account_id)
`, u.DiscordID, u.EpicUsername, u.AccountID)
	return err
}

// Delete devuelve false (sin error) si el usuario no estaba registrado.
func (r *UserRepo) Delete(ctx context.Context, discordID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM users WHERE discord_id = $1
`, discordID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *UserRepo) Get(ctx context.Context, discordID int64) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
SELECT discord_id, epic_username, account_id, registered_at
  FROM users
 WHERE discord_id = $1
`, discordID).Scan(&u.DiscordID, &u.EpicUsername, &u.AccountID, &u.RegisteredAt)
	if err == sql.ErrNoRows {
		return User{}, ErrNotFound
	}
	return u, err
}

func (r *UserRepo) GetUsername(ctx context.Context, discordID int64) (string, error) {
	var name string
	err := r.db.QueryRowContext(ctx, `
SELECT epic_username FROM users WHERE discord_id = $1
`, discordID).Scan(&name)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	return name, err
}

// UsernamesByDiscordIDs: devuelve mapa discord_id -> epic_username para
// los ids que estén registrados. Los no registrados simplemente no salen.
func (r *UserRepo) UsernamesByDiscordIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	out := map[int64]string{}
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT discord_id, epic_username
  FROM users
 WHERE discord_id = ANY($1)
`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		out[id] = name
	}
	return out, rows.Err()
}
