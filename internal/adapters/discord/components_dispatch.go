package discord

import (
	"github.com/bwmarrin/discordgo"
)

func (r *Router) handleMessageComponent(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	data := ic.MessageComponentData()

	_ = DeferEphemeral(s, ic)

	switch data.CustomID {

	case "lb_refresh":
		if !r.fanoutLimiter.Allow(ic.Member.User.ID) {
			ReplyEphemeral(s, ic, "⏳ Esperá un segundo…")
			return
		}
		gid, ok := parseSnowflake(ic.GuildID)
		if !ok {
			return
		}
		defer step("component.lb_refresh")()
		r.refreshLeaderboardUI(gid, ic.GuildID)
		ReplyEphemeral(s, ic, "🔄 Actualizando el leaderboard…")
	}
}
