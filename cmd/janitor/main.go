package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jose-valero/fortnite-squad-bot/internal/adapters/fortnite"
)

// Mantenimiento programado:
//   - borra squads que quedaron sin miembros (no pasa por comandos, pero sí
//     por ediciones manuales de la base)
//   - completa users.account_id donde quedó NULL (registro hecho con el
//     proveedor caído o con stats privadas), de a 25 por corrida
func handler(ctx context.Context) (string, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return "no DATABASE_URL", nil
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return fmt.Sprintf("parse: %v", err), nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return fmt.Sprintf("pool: %v", err), nil
	}
	defer pool.Close()

	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	res, _ := pool.Exec(cctx, `
DELETE FROM squads s
 WHERE NOT EXISTS (SELECT 1 FROM squad_members m WHERE m.squad_id = s.squad_id);`)
	emptied := res.RowsAffected()

	backfilled := backfillAccountIDs(ctx, pool)

	return fmt.Sprintf("ok: %d empty squads removed, %d account ids backfilled", emptied, backfilled), nil
}

func backfillAccountIDs(ctx context.Context, pool *pgxpool.Pool) int {
	fc := fortnite.New(os.Getenv("FORTNITE_API_KEY"))

	rows, err := pool.Query(ctx, `
SELECT discord_id, epic_username
  FROM users
 WHERE account_id IS NULL
 LIMIT 25`)
	if err != nil {
		return 0
	}
	type pending struct {
		id   int64
		name string
	}
	var todo []pending
	for rows.Next() {
		var p pending
		if err := rows.Scan(&p.id, &p.name); err == nil {
			todo = append(todo, p)
		}
	}
	rows.Close()

	done := 0
	for _, p := range todo {
		cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		ps, err := fc.FetchStats(cctx, p.name)
		cancel()
		if err != nil {
			// mejor esfuerzo: la próxima corrida lo reintenta
			continue
		}
		if _, err := pool.Exec(ctx, `
UPDATE users SET account_id = $2 WHERE discord_id = $1 AND account_id IS NULL
`, p.id, ps.AccountID); err == nil {
			done++
		}
	}
	return done
}

func main() { lambda.Start(handler) }
