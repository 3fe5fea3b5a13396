package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jose-valero/fortnite-squad-bot/internal/adapters/fortnite"
	"github.com/jose-valero/fortnite-squad-bot/internal/domain"
)

func TestLeaderboardSortsDescending(t *testing.T) {
	fc := newFakeFortnite()
	fc.stats["a"] = overallStats(10, 100, 50)
	fc.stats["b"] = overallStats(30, 300, 90)
	fc.stats["c"] = overallStats(20, 200, 70)
	svc := NewStatsService(fc)

	rows, err := svc.Leaderboard(context.Background(), []LeaderboardUser{
		{DiscordID: 1, Username: "a"},
		{DiscordID: 2, Username: "b"},
		{DiscordID: 3, Username: "c"},
	}, domain.ModeOverall, domain.StatWins)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	require.Equal(t, []int{30, 20, 10}, []int{rows[0].Wins, rows[1].Wins, rows[2].Wins})
}

// Un lookup roto saca a ESE usuario y a nadie más.
func TestLeaderboardSkipsFailedLookups(t *testing.T) {
	fc := newFakeFortnite()
	fc.stats["a"] = overallStats(10, 100, 50)
	fc.errs["b"] = fortnite.ErrTimeout
	fc.stats["c"] = overallStats(30, 300, 90)
	svc := NewStatsService(fc)

	rows, err := svc.Leaderboard(context.Background(), []LeaderboardUser{
		{DiscordID: 1, Username: "a"},
		{DiscordID: 2, Username: "b"},
		{DiscordID: 3, Username: "c"},
	}, domain.ModeOverall, domain.StatWins)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	require.Equal(t, int64(3), rows[0].DiscordID) // 30 wins
	require.Equal(t, int64(1), rows[1].DiscordID) // 10 wins
}

// Empates mantienen el orden de entrada (sort estable).
func TestLeaderboardStableTies(t *testing.T) {
	fc := newFakeFortnite()
	fc.stats["a"] = overallStats(5, 10, 20)
	fc.stats["b"] = overallStats(5, 99, 20)
	fc.stats["c"] = overallStats(5, 50, 20)
	svc := NewStatsService(fc)

	rows, err := svc.Leaderboard(context.Background(), []LeaderboardUser{
		{DiscordID: 1, Username: "a"},
		{DiscordID: 2, Username: "b"},
		{DiscordID: 3, Username: "c"},
	}, domain.ModeOverall, domain.StatWins)
	require.NoError(t, err)

	require.Equal(t, []int64{1, 2, 3}, []int64{rows[0].DiscordID, rows[1].DiscordID, rows[2].DiscordID})
}

func TestLeaderboardSkipsModeWithoutData(t *testing.T) {
	fc := newFakeFortnite()
	fc.stats["solo-only"] = &domain.PlayerStats{Solo: &domain.ModeStats{Wins: 7, Matches: 10}}
	fc.stats["full"] = overallStats(3, 30, 30)
	svc := NewStatsService(fc)

	rows, err := svc.Leaderboard(context.Background(), []LeaderboardUser{
		{DiscordID: 1, Username: "solo-only"},
		{DiscordID: 2, Username: "full"},
	}, domain.ModeOverall, domain.StatWins)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, int64(2), rows[0].DiscordID)
}

func TestLeaderboardSortsByRequestedStat(t *testing.T) {
	fc := newFakeFortnite()
	fc.stats["a"] = overallStats(10, 500, 50)
	fc.stats["b"] = overallStats(30, 100, 90)
	svc := NewStatsService(fc)

	rows, err := svc.Leaderboard(context.Background(), []LeaderboardUser{
		{DiscordID: 1, Username: "a"},
		{DiscordID: 2, Username: "b"},
	}, domain.ModeOverall, domain.StatKills)
	require.NoError(t, err)
	require.Equal(t, int64(1), rows[0].DiscordID)
	require.Equal(t, float64(500), rows[0].SortValue)
}

func TestSquadTotals(t *testing.T) {
	fc := newFakeFortnite()
	fc.stats["a"] = overallStats(2, 40, 10)
	fc.stats["b"] = overallStats(3, 60, 10)
	svc := NewStatsService(fc)

	totals, err := svc.SquadTotals(context.Background(), []string{"a", "b"})
	require.NoError(t, err)

	require.Equal(t, 5, totals.Wins)
	require.Equal(t, 100, totals.Kills)
	require.Equal(t, 20, totals.Matches)
	require.Equal(t, 2, totals.Counted)
	require.Zero(t, totals.Skipped)
	// kd = 100 / (20 - 5)
	require.InDelta(t, 6.6667, totals.KD, 0.001)
	require.InDelta(t, 25.0, totals.WinRate, 0.001)
}

// matches == wins: el denominador (matches-wins) es cero y el K/D derivado
// cae a kills a secas. Política documentada, no división por cero.
func TestSquadTotalsKDFallback(t *testing.T) {
	fc := newFakeFortnite()
	fc.stats["imbatible"] = overallStats(5, 42, 5)
	svc := NewStatsService(fc)

	totals, err := svc.SquadTotals(context.Background(), []string{"imbatible"})
	require.NoError(t, err)
	require.Equal(t, float64(42), totals.KD)
	require.InDelta(t, 100.0, totals.WinRate, 0.001)
}

func TestSquadTotalsSkipsFailures(t *testing.T) {
	fc := newFakeFortnite()
	fc.stats["a"] = overallStats(1, 10, 4)
	fc.errs["b"] = fortnite.ErrStatsUnavailable
	svc := NewStatsService(fc)

	totals, err := svc.SquadTotals(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	require.Equal(t, 1, totals.Counted)
	require.Equal(t, 1, totals.Skipped)
	require.Equal(t, 1, totals.Wins)
}

func TestSquadTotalsEmptyRoster(t *testing.T) {
	svc := NewStatsService(newFakeFortnite())

	totals, err := svc.SquadTotals(context.Background(), nil)
	require.NoError(t, err)
	require.Zero(t, totals.Matches)
	require.Zero(t, totals.KD)
	require.Zero(t, totals.WinRate)
}
