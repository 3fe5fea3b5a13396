package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/fortnite-squad-bot/internal/app/service"
	"github.com/jose-valero/fortnite-squad-bot/internal/infra/storage"
)

type Router struct {
	s       *discordgo.Session
	guildID string // vacío = comandos globales

	reg      *service.RegisterService
	squads   *service.SquadService
	stats    *service.StatsService
	settings *service.SettingsService

	uiStorage    *storage.UIRepo
	adminRoleIDs []string

	// limita los comandos que hacen fan-out al proveedor
	fanoutLimiter *userLimiter

	// junta clicks de refresh cercanos, por guild
	refreshDebounce *guildDebouncer
}

func NewRouter(
	s *discordgo.Session,
	guildID string,
	reg *service.RegisterService,
	squads *service.SquadService,
	stats *service.StatsService,
	settings *service.SettingsService,
	uiStorage *storage.UIRepo,
	adminRoleIDs []string,
) *Router {
	return &Router{
		s:               s,
		guildID:         guildID,
		reg:             reg,
		squads:          squads,
		stats:           stats,
		settings:        settings,
		uiStorage:       uiStorage,
		adminRoleIDs:    adminRoleIDs,
		fanoutLimiter:   newUserLimiter(5 * time.Second),
		refreshDebounce: newGuildDebouncer(uiDebounce),
	}
}

func (r *Router) Register() error {
	appID := r.s.State.User.ID
	for _, cmd := range Commands {
		if _, err := r.s.ApplicationCommandCreate(appID, r.guildID, cmd); err != nil {
			return err
		}
	}
	return nil
}

func (r *Router) Handlers() {
	r.s.AddHandler(func(s *discordgo.Session, ic *discordgo.InteractionCreate) {
		// todo lo que manejamos es guild-only
		if ic.GuildID == "" || ic.Member == nil || ic.Member.User == nil {
			return
		}
		switch ic.Type {
		case discordgo.InteractionApplicationCommand:
			r.handleSlashCommand(s, ic)
		case discordgo.InteractionMessageComponent:
			r.handleMessageComponent(s, ic)
		}
	})
}
