package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

type SettingsRepo struct{ db *sql.DB }

func NewSettingsRepo(db *sql.DB) *SettingsRepo { return &SettingsRepo{db: db} }

// Get crea la fila con defaults la primera vez que un guild la pide.
func (r *SettingsRepo) Get(ctx context.Context, serverID int64) (GuildSettings, error) {
	var s GuildSettings
	err := r.db.QueryRowContext(ctx, `
SELECT server_id, default_stat, default_mode, created_at, updated_at
  FROM guild_settings
 WHERE server_id = $1
`, serverID).Scan(&s.ServerID, &s.DefaultStat, &s.DefaultMode, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		_, err := r.db.ExecContext(ctx, `
INSERT INTO guild_settings (server_id) VALUES ($1)
ON CONFLICT (server_id) DO NOTHING
`, serverID)
		if err != nil {
			return GuildSettings{}, err
		}
		return r.Get(ctx, serverID)
	}
	return s, err
}

func (r *SettingsRepo) Update(ctx context.Context, serverID int64, u GuildSettingsUpdate) (GuildSettings, error) {
	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)
	i := 1

	if u.DefaultStat != nil {
		sets = append(sets, fmt.Sprintf("default_stat = $%d", i))
		args = append(args, *u.DefaultStat)
		i++
	}
	if u.DefaultMode != nil {
		sets = append(sets, fmt.Sprintf("default_mode = $%d", i))
		args = append(args, *u.DefaultMode)
		i++
	}
	if len(sets) == 0 {
		// nada que cambiar
		return r.Get(ctx, serverID)
	}
	sets = append(sets, fmt.Sprintf("updated_at = $%d", i))
	args = append(args, time.Now())
	i++

	// asegura que la fila exista antes del UPDATE
	if _, err := r.Get(ctx, serverID); err != nil {
		return GuildSettings{}, err
	}

	args = append(args, serverID)
	_, err := r.db.ExecContext(ctx, `
UPDATE guild_settings
   SET `+strings.Join(sets, ", ")+`
 WHERE server_id = $`+fmt.Sprint(i), args...)
	if err != nil {
		return GuildSettings{}, err
	}
	return r.Get(ctx, serverID)
}
