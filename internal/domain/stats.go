package domain

// Modos que expone el proveedor de stats. "trio" puede venir vacío en
// cuentas viejas, igual que cualquier otro modo.
const (
	ModeOverall = "overall"
	ModeSolo    = "solo"
	ModeDuo     = "duo"
	ModeTrio    = "trio"
	ModeSquad   = "squad"
)

// Stats por los que se puede ordenar un leaderboard.
const (
	StatWins    = "wins"
	StatKills   = "kills"
	StatKD      = "kd"
	StatWinRate = "winrate"
	StatMatches = "matches"
)

var Modes = []string{ModeOverall, ModeSolo, ModeDuo, ModeTrio, ModeSquad}
var SortStats = []string{StatWins, StatKills, StatKD, StatWinRate, StatMatches}

func ValidMode(m string) bool {
	for _, v := range Modes {
		if v == m {
			return true
		}
	}
	return false
}

func ValidStat(s string) bool {
	for _, v := range SortStats {
		if v == s {
			return true
		}
	}
	return false
}

// ModeStats son los contadores lifetime de un modo (solo/duo/trio/squad)
// o del agregado "overall".
type ModeStats struct {
	Wins          int
	Kills         int
	Deaths        int
	Matches       int
	KD            float64
	WinRate       float64
	MinutesPlayed int
	KillsPerMatch float64

	// Placements: el proveedor solo manda los que aplican al modo,
	// el resto queda en cero.
	Top3  int
	Top5  int
	Top6  int
	Top10 int
	Top12 int
	Top25 int
}

// Stat devuelve el valor del contador pedido, para ordenar leaderboards.
func (m *ModeStats) Stat(name string) float64 {
	switch name {
	case StatWins:
		return float64(m.Wins)
	case StatKills:
		return float64(m.Kills)
	case StatKD:
		return m.KD
	case StatWinRate:
		return m.WinRate
	case StatMatches:
		return float64(m.Matches)
	}
	return 0
}

// PlayerStats es la vista normalizada de una cuenta Epic: identidad,
// nivel de pase y stats por modo. Un modo en nil significa que el
// proveedor no tiene datos para ese modo.
type PlayerStats struct {
	AccountID       string
	Name            string
	BattlePassLevel int

	Overall *ModeStats
	Solo    *ModeStats
	Duo     *ModeStats
	Trio    *ModeStats
	Squad   *ModeStats
}

// Mode devuelve las stats del modo pedido, o nil si no hay datos.
func (p *PlayerStats) Mode(mode string) *ModeStats {
	switch mode {
	case ModeOverall:
		return p.Overall
	case ModeSolo:
		return p.Solo
	case ModeDuo:
		return p.Duo
	case ModeTrio:
		return p.Trio
	case ModeSquad:
		return p.Squad
	}
	return nil
}

// Empty reporta si el proveedor no devolvió stats de ningún modo
// (cuenta privada o sin partidas).
func (p *PlayerStats) Empty() bool {
	return p.Overall == nil && p.Solo == nil && p.Duo == nil && p.Trio == nil && p.Squad == nil
}
