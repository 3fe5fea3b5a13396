package discord

import "github.com/bwmarrin/discordgo"

func modeOption(required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "mode",
		Description: "Modo de juego",
		Required:    required,
		Choices: []*discordgo.ApplicationCommandOptionChoice{
			{Name: "Overall", Value: "overall"},
			{Name: "Solo", Value: "solo"},
			{Name: "Duo", Value: "duo"},
			{Name: "Trio", Value: "trio"},
			{Name: "Squad", Value: "squad"},
		},
	}
}

func statOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "stat",
		Description: "Stat para ordenar",
		Choices: []*discordgo.ApplicationCommandOptionChoice{
			{Name: "Wins", Value: "wins"},
			{Name: "Kills", Value: "kills"},
			{Name: "K/D", Value: "kd"},
			{Name: "Win rate", Value: "winrate"},
			{Name: "Matches", Value: "matches"},
		},
	}
}

var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        "register",
		Description: "Vincula tu cuenta Epic (via username)",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "username",
			Description: "Tu username Epic, tal cual en tu perfil",
			Required:    true,
		}},
	},
	{
		Name:        "update",
		Description: "Cambia el username Epic vinculado",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "username",
			Description: "El nuevo username Epic",
			Required:    true,
		}},
	},
	{
		Name:        "unregister",
		Description: "Desvincula tu cuenta Epic del bot",
	},
	{
		Name:        "me",
		Description: "Muestra tus stats de battle royale",
		Options:     []*discordgo.ApplicationCommandOption{modeOption(false)},
	},
	{
		Name:        "stats",
		Description: "Stats de un jugador por username Epic (vos si no pasás ninguno)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "username",
				Description: "Username Epic",
			},
			modeOption(false),
		},
	},
	{
		Name:        "leaderboard",
		Description: "Ranking de los registrados del server",
		Options:     []*discordgo.ApplicationCommandOption{statOption(), modeOption(false)},
	},
	{
		Name:        "lbpublish",
		Description: "Publica un leaderboard fijo con botón de refresh (admins)",
		Options:     []*discordgo.ApplicationCommandOption{statOption(), modeOption(false)},
	},
	{
		Name:        "settings",
		Description: "Ver o cambiar los defaults del server (admins)",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "show", Description: "Ver configuración"},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "set",
				Description: "Actualizar configuración (sólo lo que pases)",
				Options:     []*discordgo.ApplicationCommandOption{statOption(), modeOption(false)},
			},
		},
	},
	{
		Name:        "squad",
		Description: "Gestiona tu squad",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "create",
				Description: "Crea un squad (quedás como dueño)",
				Options: []*discordgo.ApplicationCommandOption{{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Nombre del squad (3-20 caracteres)",
					Required:    true,
				}},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "join",
				Description: "Unite a un squad existente",
				Options: []*discordgo.ApplicationCommandOption{{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Nombre del squad",
					Required:    true,
				}},
			},
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "leave", Description: "Salir de tu squad"},
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "list", Description: "Squads del server"},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "info",
				Description: "Detalle de un squad (el tuyo si no pasás nombre)",
				Options: []*discordgo.ApplicationCommandOption{{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Nombre del squad",
				}},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "stats",
				Description: "Stats combinadas de un squad",
				Options: []*discordgo.ApplicationCommandOption{{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Nombre del squad",
				}},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "delete",
				Description: "Borra tu squad (dueño, o admins)",
				Options: []*discordgo.ApplicationCommandOption{{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Nombre del squad",
				}},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "transfer",
				Description: "Pasa la propiedad de tu squad a otro miembro",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "member",
						Description: "El nuevo dueño (tiene que ser miembro)",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Nombre del squad",
					},
				},
			},
		},
	},
}
