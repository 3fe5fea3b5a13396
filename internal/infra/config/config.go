package config

import (
	"log"
	"os"
	"strings"
)

type Config struct {
	DatabaseURL    string
	DiscordToken   string
	DiscordGuild   string // opcional: vacío = comandos globales
	FortniteAPIKey string
	HTTPAddr       string // opcional, default :8080
	AdminRoleIDs   []string
}

func Load() Config {
	get := func(k string, req bool) string {
		v := os.Getenv(k)
		if v == "" && req {
			log.Fatalf("faltante env %s", k)
		}
		return v
	}

	cfg := Config{
		DatabaseURL:    get("DATABASE_URL", true),
		DiscordToken:   get("DISCORD_BOT_TOKEN", true),
		FortniteAPIKey: get("FORTNITE_API_KEY", true),
		DiscordGuild:   get("DISCORD_GUILD_ID", false),
		HTTPAddr:       get("HTTP_ADDR", false),
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if raw := get("ADMIN_ROLE_IDS", false); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				cfg.AdminRoleIDs = append(cfg.AdminRoleIDs, id)
			}
		}
	}
	return cfg
}
