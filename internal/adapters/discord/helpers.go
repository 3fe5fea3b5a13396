package discord

import (
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// parseSnowflake: discordgo entrega ids como string, la base los guarda
// como BIGINT (igual que el esquema original).
func parseSnowflake(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	return id, err == nil
}

func optStr(ic *discordgo.InteractionCreate, name string) (string, bool) {
	if ic.Type != discordgo.InteractionApplicationCommand {
		return "", false
	}
	for _, o := range ic.ApplicationCommandData().Options {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionString {
			return o.StringValue(), true
		}
		// subcommand
		if o.Type == discordgo.ApplicationCommandOptionSubCommand {
			for _, so := range o.Options {
				if so.Name == name && so.Type == discordgo.ApplicationCommandOptionString {
					return so.StringValue(), true
				}
			}
		}
	}
	return "", false
}

// optUserID devuelve el id crudo de una opción tipo User (el value ES el id,
// no hace falta resolver el *discordgo.User completo).
func optUserID(ic *discordgo.InteractionCreate, name string) (string, bool) {
	if ic.Type != discordgo.InteractionApplicationCommand {
		return "", false
	}
	for _, o := range ic.ApplicationCommandData().Options {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionUser {
			return o.Value.(string), true
		}
		if o.Type == discordgo.ApplicationCommandOptionSubCommand {
			for _, so := range o.Options {
				if so.Name == name && so.Type == discordgo.ApplicationCommandOptionUser {
					return so.Value.(string), true
				}
			}
		}
	}
	return "", false
}

func subcmdName(ic *discordgo.InteractionCreate) (string, bool) {
	if ic.Type != discordgo.InteractionApplicationCommand {
		return "", false
	}
	for _, o := range ic.ApplicationCommandData().Options {
		if o.Type == discordgo.ApplicationCommandOptionSubCommand {
			return o.Name, true
		}
	}
	return "", false
}

// pickOrDefault: usa la opción si vino, si no el default del guild.
func pickOrDefault(ic *discordgo.InteractionCreate, name, def string) string {
	if v, ok := optStr(ic, name); ok && v != "" {
		return v
	}
	return def
}
