package fortnite

import "github.com/jose-valero/fortnite-squad-bot/internal/domain"

// --- Stats (data del envelope) ---

type statsDTO struct {
	Account struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"account"`
	BattlePass struct {
		Level    int `json:"level"`
		Progress int `json:"progress"`
	} `json:"battlePass"`
	Stats struct {
		All map[string]*modeDTO `json:"all"`
	} `json:"stats"`
}

type modeDTO struct {
	Wins          int     `json:"wins"`
	Kills         int     `json:"kills"`
	Deaths        int     `json:"deaths"`
	Matches       int     `json:"matches"`
	KD            float64 `json:"kd"`
	WinRate       float64 `json:"winRate"`
	MinutesPlayed int     `json:"minutesPlayed"`
	KillsPerMatch float64 `json:"killsPerMatch"`
	Top3          int     `json:"top3"`
	Top5          int     `json:"top5"`
	Top6          int     `json:"top6"`
	Top10         int     `json:"top10"`
	Top12         int     `json:"top12"`
	Top25         int     `json:"top25"`
}

func (m *modeDTO) toDomain() *domain.ModeStats {
	if m == nil {
		return nil
	}
	return &domain.ModeStats{
		Wins:          m.Wins,
		Kills:         m.Kills,
		Deaths:        m.Deaths,
		Matches:       m.Matches,
		KD:            m.KD,
		WinRate:       m.WinRate,
		MinutesPlayed: m.MinutesPlayed,
		KillsPerMatch: m.KillsPerMatch,
		Top3:          m.Top3,
		Top5:          m.Top5,
		Top6:          m.Top6,
		Top10:         m.Top10,
		Top12:         m.Top12,
		Top25:         m.Top25,
	}
}
