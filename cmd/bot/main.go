package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	discordrouter "github.com/jose-valero/fortnite-squad-bot/internal/adapters/discord"
	"github.com/jose-valero/fortnite-squad-bot/internal/adapters/fortnite"
	"github.com/jose-valero/fortnite-squad-bot/internal/adapters/httphealth"
	"github.com/jose-valero/fortnite-squad-bot/internal/app/service"
	"github.com/jose-valero/fortnite-squad-bot/internal/infra/config"
	"github.com/jose-valero/fortnite-squad-bot/internal/infra/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	_ = godotenv.Load()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	// DB
	db, err := storage.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := storage.Migrate(db); err != nil {
		log.Fatal("migrate:", err)
	}
	log.Println("✅ DB lista y migrada")

	// Repos
	usersRepo := storage.NewUserRepo(db)
	squadsRepo := storage.NewSquadRepo(db)
	settingsRepo := storage.NewSettingsRepo(db)
	uiRepo := storage.NewUIRepo(db)

	// Cliente de stats
	fc := fortnite.New(cfg.FortniteAPIKey)

	// Discord session
	auth := cfg.DiscordToken
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(auth)), "bot ") {
		auth = "Bot " + strings.TrimSpace(auth)
	}
	s, err := discordgo.New(auth)
	if err != nil {
		log.Fatal(err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers
	if err := s.Open(); err != nil {
		log.Fatal(err)
	}
	defer s.Close()
	log.Printf("✅ Conectado como %s (%s)", s.State.User.Username, s.State.User.ID)

	// Services
	regSvc := service.NewRegisterService(fc, usersRepo)
	squadSvc := service.NewSquadService(squadsRepo, usersRepo)
	statsSvc := service.NewStatsService(fc)
	settingsSvc := service.NewSettingsService(settingsRepo)

	// Health endpoint
	health := httphealth.New(db)
	go health.Start(cfg.HTTPAddr)

	// Router
	r := discordrouter.NewRouter(
		s,
		cfg.DiscordGuild,
		regSvc,
		squadSvc,
		statsSvc,
		settingsSvc,
		uiRepo,
		cfg.AdminRoleIDs,
	)
	if err := r.Register(); err != nil {
		log.Fatalf("registrando comandos: %v", err)
	}
	r.Handlers()
	if cfg.DiscordGuild != "" {
		log.Printf("✅ comandos registrados en guild %s", cfg.DiscordGuild)
	} else {
		log.Printf("✅ comandos registrados (globales)")
	}

	// Esperar señal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-stop
}
