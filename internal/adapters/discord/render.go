package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/fortnite-squad-bot/internal/adapters/fortnite"
	"github.com/jose-valero/fortnite-squad-bot/internal/app/service"
	"github.com/jose-valero/fortnite-squad-bot/internal/domain"
	"github.com/jose-valero/fortnite-squad-bot/internal/infra/storage"
)

const embedColor = 0x7b2bf9 // violeta fortnite

var modeLabels = map[string]string{
	domain.ModeOverall: "Overall",
	domain.ModeSolo:    "Solo",
	domain.ModeDuo:     "Dúo",
	domain.ModeTrio:    "Trío",
	domain.ModeSquad:   "Squad",
}

var statLabels = map[string]string{
	domain.StatWins:    "Wins",
	domain.StatKills:   "Kills",
	domain.StatKD:      "K/D",
	domain.StatWinRate: "Win rate",
	domain.StatMatches: "Matches",
}

// renderError traduce cada error tipado a SU mensaje; acá no existe el
// "ocurrió un error" genérico para reglas de negocio.
func renderError(err error) string {
	switch {
	case errors.Is(err, service.ErrUnknownPlayer):
		return "❌ No encontré ninguna cuenta Epic con ese username. Fijate que esté escrito tal cual."
	case errors.Is(err, service.ErrNotRegistered):
		return "ℹ️ No estás registrado. Usa `/register username:<tu_username_Epic>`."
	case errors.Is(err, service.ErrBadSquadName):
		return "❌ El nombre del squad tiene que tener entre 3 y 20 caracteres."
	case errors.Is(err, service.ErrDuplicateName):
		return "❌ Ya hay un squad con ese nombre en este server."
	case errors.Is(err, service.ErrDuplicateOwnership):
		return "❌ Ya sos dueño de un squad en este server. Usa `/squad delete` o `/squad transfer` primero."
	case errors.Is(err, service.ErrSquadNotFound):
		return "❌ No existe un squad con ese nombre en este server."
	case errors.Is(err, service.ErrAlreadyInSquad):
		return "❌ Ya estás en un squad. Usa `/squad leave` primero."
	case errors.Is(err, service.ErrSquadFull):
		return fmt.Sprintf("❌ Ese squad ya está completo (%d miembros).", service.MaxSquadMembers)
	case errors.Is(err, service.ErrNotInSquad):
		return "ℹ️ No estás en ningún squad de este server."
	case errors.Is(err, service.ErrOwnerMustResolve):
		return "❌ Sos el dueño del squad: usa `/squad transfer` o `/squad delete` antes de salir."
	case errors.Is(err, service.ErrNotOwner):
		return "🔒 Sólo el dueño del squad puede hacer eso."
	case errors.Is(err, service.ErrNotAMember):
		return "❌ Esa persona no es miembro del squad; tiene que unirse primero."
	case errors.Is(err, fortnite.ErrPlayerNotFound):
		return "❌ El proveedor no encuentra esa cuenta Epic."
	case errors.Is(err, fortnite.ErrStatsUnavailable):
		return "ℹ️ Esa cuenta no tiene stats visibles (perfil privado o sin partidas)."
	case errors.Is(err, fortnite.ErrTimeout):
		return "⏳ El proveedor de stats está lento. Probá de nuevo en un rato."
	}
	return "⚠️ " + err.Error()
}

func medal(pos int) string {
	switch pos {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return fmt.Sprintf("%d)", pos)
}

func playerEmbed(ps *domain.PlayerStats, mode string) *discordgo.MessageEmbed {
	ms := ps.Mode(mode)
	e := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s — %s", ps.Name, modeLabels[mode]),
		Color: embedColor,
	}
	if ps.BattlePassLevel > 0 {
		e.Description = fmt.Sprintf("Battle Pass nivel **%d**", ps.BattlePassLevel)
	}
	if ms == nil {
		e.Description = strings.TrimSpace(e.Description + "\nSin datos para este modo.")
		return e
	}
	e.Fields = []*discordgo.MessageEmbedField{
		{Name: "Wins", Value: fmt.Sprintf("%d", ms.Wins), Inline: true},
		{Name: "Kills", Value: fmt.Sprintf("%d", ms.Kills), Inline: true},
		{Name: "Matches", Value: fmt.Sprintf("%d", ms.Matches), Inline: true},
		{Name: "K/D", Value: fmt.Sprintf("%.2f", ms.KD), Inline: true},
		{Name: "Win rate", Value: fmt.Sprintf("%.1f%%", ms.WinRate), Inline: true},
		{Name: "Tiempo", Value: fmtMinutes(ms.MinutesPlayed), Inline: true},
	}
	return e
}

func leaderboardEmbed(rows []service.PlayerRow, stat, mode string) *discordgo.MessageEmbed {
	e := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🏆 Leaderboard — %s (%s)", statLabels[stat], modeLabels[mode]),
		Color: embedColor,
	}
	if len(rows) == 0 {
		e.Description = "Nadie registrado con stats todavía. `/register` para aparecer acá."
		return e
	}
	var b strings.Builder
	for i, row := range rows {
		if i >= 10 {
			break
		}
		fmt.Fprintf(&b, "%s <@%d> — **%s** · %d wins · %.2f k/d\n",
			medal(i+1), row.DiscordID, fmtStat(row.SortValue, stat), row.Wins, row.KD)
	}
	e.Description = b.String()
	return e
}

func squadListText(items []storage.SquadSummary) string {
	if len(items) == 0 {
		return "ℹ️ No hay squads en este server. Crea el primero con `/squad create`."
	}
	var b strings.Builder
	b.WriteString("📋 **Squads del server**\n")
	for i, it := range items {
		if i >= 10 {
			break
		}
		fmt.Fprintf(&b, "%d) **%s** — %d/%d miembros · dueño <@%d>\n",
			i+1, it.Name, it.MemberCount, service.MaxSquadMembers, it.OwnerID)
	}
	return b.String()
}

func squadInfoText(d service.SquadDetail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** — %d/%d miembros · creado <t:%d:R>\n",
		d.Squad.Name, len(d.Members), service.MaxSquadMembers, d.Squad.CreatedAt.Unix())
	for _, m := range d.Members {
		tag := ""
		if m.DiscordID == d.Squad.OwnerID {
			tag = " 👑"
		}
		if name, ok := d.Usernames[m.DiscordID]; ok {
			fmt.Fprintf(&b, "• <@%d>%s — `%s`\n", m.DiscordID, tag, name)
		} else {
			fmt.Fprintf(&b, "• <@%d>%s — sin registrar\n", m.DiscordID, tag)
		}
	}
	return b.String()
}

func squadTotalsEmbed(name string, t service.SquadTotals) *discordgo.MessageEmbed {
	e := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("⚔️ %s — stats combinadas", name),
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Wins", Value: fmt.Sprintf("%d", t.Wins), Inline: true},
			{Name: "Kills", Value: fmt.Sprintf("%d", t.Kills), Inline: true},
			{Name: "Matches", Value: fmt.Sprintf("%d", t.Matches), Inline: true},
			{Name: "K/D", Value: fmt.Sprintf("%.2f", t.KD), Inline: true},
		},
	}
	if t.Matches > 0 {
		e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
			Name: "Win rate", Value: fmt.Sprintf("%.1f%%", t.WinRate), Inline: true,
		})
	}
	if t.Skipped > 0 {
		e.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d miembro(s) sin datos no cuentan en el total", t.Skipped),
		}
	}
	return e
}

func fmtStat(v float64, stat string) string {
	switch stat {
	case domain.StatKD:
		return fmt.Sprintf("%.2f", v)
	case domain.StatWinRate:
		return fmt.Sprintf("%.1f%%", v)
	}
	return fmt.Sprintf("%.0f", v)
}

func fmtMinutes(min int) string {
	if min < 60 {
		return fmt.Sprintf("%dm", min)
	}
	return fmt.Sprintf("%dh %dm", min/60, min%60)
}
