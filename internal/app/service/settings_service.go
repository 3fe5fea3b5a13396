package service

import (
	"context"
	"fmt"

	"github.com/jose-valero/fortnite-squad-bot/internal/domain"
	"github.com/jose-valero/fortnite-squad-bot/internal/infra/storage"
)

type SettingsService struct {
	repo SettingsRepo
}

func NewSettingsService(r SettingsRepo) *SettingsService { return &SettingsService{repo: r} }

type SettingsPatch struct {
	DefaultStat *string
	DefaultMode *string
}

func (s *SettingsService) Get(ctx context.Context, serverID int64) (storage.GuildSettings, error) {
	return s.repo.Get(ctx, serverID)
}

func (s *SettingsService) Update(ctx context.Context, serverID int64, patch SettingsPatch) (storage.GuildSettings, error) {
	if patch.DefaultStat != nil && !domain.ValidStat(*patch.DefaultStat) {
		return storage.GuildSettings{}, fmt.Errorf("stat inválido: %s", *patch.DefaultStat)
	}
	if patch.DefaultMode != nil && !domain.ValidMode(*patch.DefaultMode) {
		return storage.GuildSettings{}, fmt.Errorf("modo inválido: %s", *patch.DefaultMode)
	}
	return s.repo.Update(ctx, serverID, storage.GuildSettingsUpdate{
		DefaultStat: patch.DefaultStat,
		DefaultMode: patch.DefaultMode,
	})
}
