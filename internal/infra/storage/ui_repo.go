package storage

import (
	"context"
	"database/sql"
)

type UIRepo struct{ db *sql.DB }

func NewUIRepo(db *sql.DB) *UIRepo { return &UIRepo{db: db} }

func (r *UIRepo) Get(ctx context.Context, serverID int64) (GuildUI, error) {
	var u GuildUI
	err := r.db.QueryRowContext(ctx, `
SELECT server_id, lb_channel_id, lb_message_id, lb_stat, lb_mode, created_at, updated_at
  FROM guild_ui
 WHERE server_id = $1
`, serverID).Scan(&u.ServerID, &u.ChannelID, &u.MessageID, &u.Stat, &u.Mode, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return GuildUI{}, ErrNotFound
	}
	return u, err
}

func (r *UIRepo) Upsert(ctx context.Context, u GuildUI) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO guild_ui (server_id, lb_channel_id, lb_message_id, lb_stat, lb_mode)
VALUES ($1,$2,$3,$4,$5)
ON CONFLICT (server_id) DO UPDATE SET
  lb_channel_id = EXCLUDED.lb_channel_id,
  lb_message_id = EXCLUDED.lb_message_id,
  lb_stat       = EXCLUDED.lb_stat,
  lb_mode       = EXCLUDED.lb_mode,
  updated_at    = now()
`, u.ServerID, u.ChannelID, u.MessageID, u.Stat, u.Mode)
	return err
}
