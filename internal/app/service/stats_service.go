package service

import (
	"context"
	"log"
	"sort"

	"github.com/jose-valero/fortnite-squad-bot/internal/domain"
)

type StatsService struct {
	fc FortniteAPI
}

func NewStatsService(fc FortniteAPI) *StatsService {
	return &StatsService{fc: fc}
}

// LeaderboardUser: entrada del fan-out (usuario registrado del server).
type LeaderboardUser struct {
	DiscordID int64
	Username  string
}

// PlayerRow: fila ya resuelta del leaderboard.
type PlayerRow struct {
	DiscordID int64
	Username  string
	Wins      int
	Kills     int
	Matches   int
	KD        float64
	WinRate   float64
	SortValue float64
}

// SquadTotals: agregado de /squad stats.
type SquadTotals struct {
	Wins    int
	Kills   int
	Matches int
	KD      float64
	WinRate float64
	Counted int // lookups que entraron al total
	Skipped int // lookups descartados (error o modo sin datos)
}

// Player: lookup directo para /me y /stats.
func (s *StatsService) Player(ctx context.Context, username string) (*domain.PlayerStats, error) {
	return s.fc.FetchStats(ctx, username)
}

// Leaderboard hace el fan-out secuencial y arma el ranking. Un lookup que
// falla saca a ese usuario del resultado y nada más: un perfil roto no
// puede tirar abajo el leaderboard entero. Devuelve el ranking completo,
// el caller decide el corte (el bot muestra 10).
func (s *StatsService) Leaderboard(ctx context.Context, users []LeaderboardUser, mode, stat string) ([]PlayerRow, error) {
	if !domain.ValidMode(mode) {
		mode = domain.ModeOverall
	}
	if !domain.ValidStat(stat) {
		stat = domain.StatWins
	}

	rows := make([]PlayerRow, 0, len(users))
	for _, u := range users {
		ps, err := s.fc.FetchStats(ctx, u.Username)
		if err != nil {
			log.Printf("leaderboard: skip %q: %v", u.Username, err)
			continue
		}
		ms := ps.Mode(mode)
		if ms == nil {
			continue
		}
		rows = append(rows, PlayerRow{
			DiscordID: u.DiscordID,
			Username:  u.Username,
			Wins:      ms.Wins,
			Kills:     ms.Kills,
			Matches:   ms.Matches,
			KD:        ms.KD,
			WinRate:   ms.WinRate,
			SortValue: ms.Stat(stat),
		})
	}

	// estable: empates conservan el orden de llegada
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].SortValue > rows[j].SortValue
	})
	return rows, nil
}

// SquadTotals suma las stats overall de cada username, con la misma política
// de descarte silencioso. El K/D derivado es kills/(matches-wins) — "muertes"
// ≈ partidas no ganadas —; si el denominador no es positivo cae a kills a
// secas para no dividir por cero.
func (s *StatsService) SquadTotals(ctx context.Context, usernames []string) (SquadTotals, error) {
	var t SquadTotals
	for _, name := range usernames {
		ps, err := s.fc.FetchStats(ctx, name)
		if err != nil {
			log.Printf("squad stats: skip %q: %v", name, err)
			t.Skipped++
			continue
		}
		ms := ps.Mode(domain.ModeOverall)
		if ms == nil {
			t.Skipped++
			continue
		}
		t.Wins += ms.Wins
		t.Kills += ms.Kills
		t.Matches += ms.Matches
		t.Counted++
	}

	if losses := t.Matches - t.Wins; losses > 0 {
		t.KD = float64(t.Kills) / float64(losses)
	} else {
		t.KD = float64(t.Kills)
	}
	if t.Matches > 0 {
		t.WinRate = float64(t.Wins) / float64(t.Matches) * 100
	}
	return t, nil
}
