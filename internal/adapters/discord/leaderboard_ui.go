package discord

import (
	"context"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/fortnite-squad-bot/internal/infra/storage"
)

const uiDebounce = 250 * time.Millisecond

func lbComponents() discordgo.MessageComponent {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				CustomID: "lb_refresh",
				Label:    "Actualizar",
				Emoji:    &discordgo.ComponentEmoji{Name: "🔄"},
				Style:    discordgo.SecondaryButton,
			},
		},
	}
}

// publishLeaderboardUI publica (o re-publica) el leaderboard fijo en ESTE
// canal y persiste dónde quedó para poder editarlo después.
func (r *Router) publishLeaderboardUI(ctx context.Context, gid int64, guildID, channelID, stat, mode string) error {
	rows, err := r.leaderboardRows(ctx, gid, guildID, mode, stat)
	if err != nil {
		return err
	}
	msg, err := r.s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{leaderboardEmbed(rows, stat, mode)},
		Components: []discordgo.MessageComponent{lbComponents()},
	})
	if err != nil {
		return err
	}
	return r.uiStorage.Upsert(ctx, storage.GuildUI{
		ServerID:  gid,
		ChannelID: channelID,
		MessageID: msg.ID,
		Stat:      stat,
		Mode:      mode,
	})
}

// refreshLeaderboardUI re-renderiza y edita el mensaje publicado, con un
// debounce corto por guild por si varios aprietan el botón a la vez.
func (r *Router) refreshLeaderboardUI(gid int64, guildID string) {
	r.refreshDebounce.Schedule(gid, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		ui, err := r.uiStorage.Get(ctx, gid)
		if err != nil {
			log.Printf("[ui.refresh] sin UI publicada para guild=%d: %v", gid, err)
			return
		}
		rows, err := r.leaderboardRows(ctx, gid, guildID, ui.Mode, ui.Stat)
		if err != nil {
			log.Printf("[ui.refresh] render: %v", err)
			return
		}
		em := []*discordgo.MessageEmbed{leaderboardEmbed(rows, ui.Stat, ui.Mode)}
		cc := []discordgo.MessageComponent{lbComponents()}
		if _, err := r.s.ChannelMessageEditComplex(&discordgo.MessageEdit{
			Channel:    ui.ChannelID,
			ID:         ui.MessageID,
			Embeds:     &em,
			Components: &cc,
		}); err != nil {
			log.Printf("[ui.refresh] edit: %v", err)
		}
	})
}
