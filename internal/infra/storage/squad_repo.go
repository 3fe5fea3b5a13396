package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

type SquadRepo struct{ db *sql.DB }

func NewSquadRepo(db *sql.DB) *SquadRepo { return &SquadRepo{db: db} }

// Insert crea el squad y mete al owner como primer miembro, todo en una
// transacción. Si el nombre ya existe en el server (unique squad_name+server_id)
// devuelve ErrDuplicate aunque el pre-chequeo del service haya pasado.
func (r *SquadRepo) Insert(ctx context.Context, name string, ownerID, serverID int64) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, `
INSERT INTO squads (squad_name, created_by, server_id)
VALUES ($1, $2, $3)
RETURNING squad_id
`, name, ownerID, serverID).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}

	if _, err := tx.ExecContext(ctx, `
INSERT INTO squad_members (squad_id, discord_id) VALUES ($1, $2)
`, id, ownerID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SquadRepo) GetByName(ctx context.Context, serverID int64, name string) (Squad, error) {
	return r.scanSquad(r.db.QueryRowContext(ctx, `
SELECT squad_id, squad_name, created_by, server_id, created_at
  FROM squads
 WHERE server_id = $1 AND squad_name = $2
`, serverID, name))
}

// OwnedSquad: el squad del que ownerID es dueño en este server (a lo sumo uno).
func (r *SquadRepo) OwnedSquad(ctx context.Context, serverID, ownerID int64) (Squad, error) {
	return r.scanSquad(r.db.QueryRowContext(ctx, `
SELECT squad_id, squad_name, created_by, server_id, created_at
  FROM squads
 WHERE server_id = $1 AND created_by = $2
`, serverID, ownerID))
}

// MembershipFor: el squad al que discordID pertenece en este server (a lo sumo uno,
// chequeado a nivel aplicación en el service).
func (r *SquadRepo) MembershipFor(ctx context.Context, serverID, discordID int64) (Squad, error) {
	return r.scanSquad(r.db.QueryRowContext(ctx, `
SELECT s.squad_id, s.squad_name, s.created_by, s.server_id, s.created_at
  FROM squads s
  JOIN squad_members m ON m.squad_id = s.squad_id
 WHERE s.server_id = $1 AND m.discord_id = $2
`, serverID, discordID))
}

func (r *SquadRepo) MemberCount(ctx context.Context, squadID int64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
SELECT count(*) FROM squad_members WHERE squad_id = $1
`, squadID).Scan(&n)
	return n, err
}

func (r *SquadRepo) IsMember(ctx context.Context, squadID, discordID int64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `
SELECT 1 FROM squad_members WHERE squad_id = $1 AND discord_id = $2
`, squadID, discordID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return err == nil, err
}

func (r *SquadRepo) AddMember(ctx context.Context, squadID, discordID int64) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO squad_members (squad_id, discord_id) VALUES ($1, $2)
`, squadID, discordID)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *SquadRepo) RemoveMember(ctx context.Context, squadID, discordID int64) error {
	_, err := r.db.ExecContext(ctx, `
DELETE FROM squad_members WHERE squad_id = $1 AND discord_id = $2
`, squadID, discordID)
	return err
}

// Delete borra el squad; las filas de squad_members caen por el CASCADE del FK.
func (r *SquadRepo) Delete(ctx context.Context, squadID int64) error {
	_, err := r.db.ExecContext(ctx, `
DELETE FROM squads WHERE squad_id = $1
`, squadID)
	return err
}

func (r *SquadRepo) UpdateOwner(ctx context.Context, squadID, newOwnerID int64) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE squads SET created_by = $2 WHERE squad_id = $1
`, squadID, newOwnerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListBySize: squads del server ordenados por cantidad de miembros desc.
// Desempate por created_at para que el orden sea estable entre llamadas.
func (r *SquadRepo) ListBySize(ctx context.Context, serverID int64) ([]SquadSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT s.squad_name, s.created_by, count(m.discord_id) AS members
  FROM squads s
  LEFT JOIN squad_members m ON m.squad_id = s.squad_id
 WHERE s.server_id = $1
 GROUP BY s.squad_id, s.squad_name, s.created_by, s.created_at
 ORDER BY members DESC, s.created_at ASC
`, serverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SquadSummary
	for rows.Next() {
		var s SquadSummary
		if err := rows.Scan(&s.Name, &s.OwnerID, &s.MemberCount); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SquadRepo) Members(ctx context.Context, squadID int64) ([]SquadMember, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT squad_id, discord_id, joined_at
  FROM squad_members
 WHERE squad_id = $1
 ORDER BY joined_at ASC
`, squadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SquadMember
	for rows.Next() {
		var m SquadMember
		if err := rows.Scan(&m.SquadID, &m.DiscordID, &m.JoinedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// MemberUsernames: usernames Epic de los miembros registrados. Los miembros
// sin fila en users quedan afuera en silencio (no se les puede pedir stats).
func (r *SquadRepo) MemberUsernames(ctx context.Context, squadID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT u.epic_username
  FROM squad_members m
  JOIN users u ON u.discord_id = m.discord_id
 WHERE m.squad_id = $1
 ORDER BY m.joined_at ASC
`, squadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

func (r *SquadRepo) scanSquad(row *sql.Row) (Squad, error) {
	var s Squad
	err := row.Scan(&s.SquadID, &s.Name, &s.OwnerID, &s.ServerID, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return Squad{}, ErrNotFound
	}
	if err != nil {
		return Squad{}, fmt.Errorf("scan squad: %w", err)
	}
	return s, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
