// Despacho de slash commands: acá solo se parsea la interacción, se llama
// al service que corresponda y se renderiza el resultado tipado.
package discord

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/fortnite-squad-bot/internal/app/service"
	"github.com/jose-valero/fortnite-squad-bot/internal/domain"
)

func (r *Router) handleSlashCommand(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	cmd := ic.ApplicationCommandData()
	log.Printf("cmd: /%s by=%s guild=%s", cmd.Name, ic.Member.User.ID, ic.GuildID)

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("panic in cmd /%s: %v", cmd.Name, rec)
			ReplyEphemeral(s, ic, "❌ Ocurrió un error inesperado procesando el comando.")
		}
	}()

	_ = DeferEphemeral(s, ic)
	ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
	defer cancel()

	uid, ok1 := parseSnowflake(ic.Member.User.ID)
	gid, ok2 := parseSnowflake(ic.GuildID)
	if !ok1 || !ok2 {
		ReplyEphemeral(s, ic, "⚠️ Interacción inválida.")
		return
	}

	switch cmd.Name {

	//--> register y update son el mismo upsert; update existe para que el
	// comando se lea natural cuando cambiás de username
	case "register", "update":
		username, _ := optStr(ic, "username")
		ps, err := r.reg.Register(ctx, uid, username)
		if err != nil {
			ReplyEphemeral(s, ic, renderError(err))
			return
		}
		verb := "Registrado"
		if cmd.Name == "update" {
			verb = "Actualizado"
		}
		if ps == nil {
			ReplyEphemeral(s, ic, fmt.Sprintf("✅ %s como **%s** (no pude verificar stats ahora, tu account id se completa después).", verb, username))
			return
		}
		ReplyEphemeral(s, ic, fmt.Sprintf("✅ %s como **%s**.", verb, ps.Name), playerEmbed(ps, domain.ModeOverall))

	case "unregister":
		ok, err := r.reg.Unregister(ctx, uid)
		if err != nil {
			ReplyEphemeral(s, ic, renderError(err))
			return
		}
		if !ok {
			ReplyEphemeral(s, ic, "ℹ️ No estabas registrado.")
			return
		}
		ReplyEphemeral(s, ic, "✅ Listo, desvinculado. Usa `/register` cuando quieras volver.")

	case "me":
		u, err := r.reg.Profile(ctx, uid)
		if err != nil {
			ReplyEphemeral(s, ic, renderError(err))
			return
		}
		r.replyPlayerStats(ctx, s, ic, gid, u.EpicUsername)

	case "stats":
		username, ok := optStr(ic, "username")
		if !ok || username == "" {
			var err error
			if username, err = r.reg.Username(ctx, uid); err != nil {
				ReplyEphemeral(s, ic, renderError(err))
				return
			}
		}
		r.replyPlayerStats(ctx, s, ic, gid, username)

	case "leaderboard":
		if !r.fanoutLimiter.Allow(ic.Member.User.ID) {
			ReplyEphemeral(s, ic, "⏳ Esperá unos segundos entre leaderboards…")
			return
		}
		defer step("leaderboard.total")()
		stat, mode := r.statAndMode(ctx, ic, gid)
		rows, err := r.leaderboardRows(ctx, gid, ic.GuildID, mode, stat)
		if err != nil {
			ReplyEphemeral(s, ic, renderError(err))
			return
		}
		ReplyEphemeral(s, ic, "", leaderboardEmbed(rows, stat, mode))

	case "lbpublish":
		if !r.requireAdmin(s, ic) {
			return
		}
		stat, mode := r.statAndMode(ctx, ic, gid)
		if err := r.publishLeaderboardUI(ctx, gid, ic.GuildID, ic.ChannelID, stat, mode); err != nil {
			ReplyEphemeral(s, ic, "⚠️ No pude publicar el leaderboard: "+err.Error())
			return
		}
		ReplyEphemeral(s, ic, "✅ Leaderboard publicado acá. El botón lo actualiza.")

	case "settings":
		if !r.requireAdmin(s, ic) {
			return
		}
		sub, _ := subcmdName(ic)
		if sub == "set" {
			var patch service.SettingsPatch
			if v, ok := optStr(ic, "stat"); ok {
				patch.DefaultStat = &v
			}
			if v, ok := optStr(ic, "mode"); ok {
				patch.DefaultMode = &v
			}
			if _, err := r.settings.Update(ctx, gid, patch); err != nil {
				ReplyEphemeral(s, ic, "⚠️ No pude actualizar: "+err.Error())
				return
			}
		}
		cfg, err := r.settings.Get(ctx, gid)
		if err != nil {
			ReplyEphemeral(s, ic, "⚠️ No pude leer la configuración: "+err.Error())
			return
		}
		ReplyEphemeral(s, ic, fmt.Sprintf(
			"**Defaults del server**\n• stat: **%s**\n• modo: **%s**",
			cfg.DefaultStat, cfg.DefaultMode,
		))

	case "squad":
		r.handleSquad(ctx, s, ic, gid, uid)
	}
}

func (r *Router) handleSquad(ctx context.Context, s *discordgo.Session, ic *discordgo.InteractionCreate, gid, uid int64) {
	sub, ok := subcmdName(ic)
	if !ok {
		ReplyEphemeral(s, ic, "Usa `/squad create`, `join`, `leave`, `list`, `info`, `stats`, `delete` o `transfer`.")
		return
	}

	switch sub {

	case "create":
		name, _ := optStr(ic, "name")
		if n := len([]rune(name)); n < 3 || n > 20 {
			// el service re-valida; chequear acá ahorra el round-trip
			ReplyEphemeral(s, ic, renderError(service.ErrBadSquadName))
			return
		}
		if _, err := r.squads.Create(ctx, gid, uid, name); err != nil {
			ReplyEphemeral(s, ic, renderError(err))
			return
		}
		ReplyEphemeral(s, ic, fmt.Sprintf("✅ Squad **%s** creado. Sos el dueño y el primer miembro; se llena con `/squad join`.", name))

	case "join":
		name, _ := optStr(ic, "name")
		n, err := r.squads.Join(ctx, gid, uid, name)
		if err != nil {
			ReplyEphemeral(s, ic, renderError(err))
			return
		}
		ReplyEphemeral(s, ic, fmt.Sprintf("✅ Te uniste a **%s** (%d/%d).", name, n, service.MaxSquadMembers))

	case "leave":
		name, err := r.squads.Leave(ctx, gid, uid)
		if err != nil {
			ReplyEphemeral(s, ic, renderError(err))
			return
		}
		ReplyEphemeral(s, ic, fmt.Sprintf("✅ Saliste de **%s**.", name))

	case "list":
		items, err := r.squads.List(ctx, gid)
		if err != nil {
			ReplyEphemeral(s, ic, renderError(err))
			return
		}
		ReplyEphemeral(s, ic, squadListText(items))

	case "info":
		name, _ := optStr(ic, "name")
		detail, err := r.squads.Info(ctx, gid, uid, name)
		if err != nil {
			ReplyEphemeral(s, ic, renderError(err))
			return
		}
		ReplyEphemeral(s, ic, squadInfoText(detail))

	case "stats":
		if !r.fanoutLimiter.Allow(ic.Member.User.ID) {
			ReplyEphemeral(s, ic, "⏳ Esperá unos segundos entre consultas de squad…")
			return
		}
		name, _ := optStr(ic, "name")
		detail, err := r.squads.Info(ctx, gid, uid, name)
		if err != nil {
			ReplyEphemeral(s, ic, renderError(err))
			return
		}
		usernames, err := r.squads.MemberUsernames(ctx, detail.Squad.SquadID)
		if err != nil {
			ReplyEphemeral(s, ic, renderError(err))
			return
		}
		if len(usernames) == 0 {
			ReplyEphemeral(s, ic, "ℹ️ Ningún miembro del squad está registrado todavía.")
			return
		}
		totals, err := r.stats.SquadTotals(ctx, usernames)
		if err != nil {
			ReplyEphemeral(s, ic, renderError(err))
			return
		}
		ReplyEphemeral(s, ic, "", squadTotalsEmbed(detail.Squad.Name, totals))

	case "delete":
		name, _ := optStr(ic, "name")
		deleted, err := r.squads.Delete(ctx, gid, uid, name, r.isAdmin(s, ic))
		if err != nil {
			ReplyEphemeral(s, ic, renderError(err))
			return
		}
		ReplyEphemeral(s, ic, fmt.Sprintf("🗑️ Squad **%s** borrado, miembros incluidos.", deleted))

	case "transfer":
		rawID, _ := optUserID(ic, "member")
		newOwner, ok := parseSnowflake(rawID)
		if !ok {
			ReplyEphemeral(s, ic, "⚠️ Miembro inválido.")
			return
		}
		name, _ := optStr(ic, "name")
		squadName, err := r.squads.Transfer(ctx, gid, uid, newOwner, name)
		if err != nil {
			ReplyEphemeral(s, ic, renderError(err))
			return
		}
		ReplyEphemeral(s, ic, fmt.Sprintf("✅ **%s** ahora es de <@%d>. Ya podés salir con `/squad leave`.", squadName, newOwner))
	}
}

// replyPlayerStats: lookup + render para /me y /stats.
func (r *Router) replyPlayerStats(ctx context.Context, s *discordgo.Session, ic *discordgo.InteractionCreate, gid int64, username string) {
	mode := r.modeOrDefault(ctx, ic, gid)
	ps, err := r.stats.Player(ctx, username)
	if err != nil {
		ReplyEphemeral(s, ic, renderError(err))
		return
	}
	ReplyEphemeral(s, ic, "", playerEmbed(ps, mode))
}

// statAndMode resuelve stat y modo: opción explícita > default del guild.
func (r *Router) statAndMode(ctx context.Context, ic *discordgo.InteractionCreate, gid int64) (string, string) {
	stat, mode := domain.StatWins, domain.ModeOverall
	if cfg, err := r.settings.Get(ctx, gid); err == nil {
		stat, mode = cfg.DefaultStat, cfg.DefaultMode
	}
	return pickOrDefault(ic, "stat", stat), pickOrDefault(ic, "mode", mode)
}

func (r *Router) modeOrDefault(ctx context.Context, ic *discordgo.InteractionCreate, gid int64) string {
	mode := domain.ModeOverall
	if cfg, err := r.settings.Get(ctx, gid); err == nil {
		mode = cfg.DefaultMode
	}
	return pickOrDefault(ic, "mode", mode)
}

// leaderboardRows arma el roster (miembros del guild que están registrados)
// y delega el fan-out al service.
func (r *Router) leaderboardRows(ctx context.Context, gid int64, guildID, mode, stat string) ([]service.PlayerRow, error) {
	members, err := r.s.GuildMembers(guildID, "", 1000)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(members))
	for _, m := range members {
		if m.User == nil || m.User.Bot {
			continue
		}
		if id, ok := parseSnowflake(m.User.ID); ok {
			ids = append(ids, id)
		}
	}
	registered, err := r.reg.RegisteredAmong(ctx, ids)
	if err != nil {
		return nil, err
	}
	users := make([]service.LeaderboardUser, 0, len(registered))
	for id, name := range registered {
		users = append(users, service.LeaderboardUser{DiscordID: id, Username: name})
	}
	return r.stats.Leaderboard(ctx, users, mode, stat)
}
