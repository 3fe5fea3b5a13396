package service

import (
	"context"

	"github.com/jose-valero/fortnite-squad-bot/internal/domain"
	"github.com/jose-valero/fortnite-squad-bot/internal/infra/storage"
)

// Lo implementa internal/adapters/fortnite.Client
type FortniteAPI interface {
	FetchStats(ctx context.Context, username string) (*domain.PlayerStats, error)
}

// Lo implementa internal/infra/storage.UserRepo
type UserRepo interface {
	Upsert(ctx context.Context, u storage.User) error
	Delete(ctx context.Context, discordID int64) (bool, error)
	Get(ctx context.Context, discordID int64) (storage.User, error)
	GetUsername(ctx context.Context, discordID int64) (string, error)
	UsernamesByDiscordIDs(ctx context.Context, ids []int64) (map[int64]string, error)
}

// Lo implementa internal/infra/storage.SquadRepo
type SquadRepo interface {
	Insert(ctx context.Context, name string, ownerID, serverID int64) (int64, error)
	GetByName(ctx context.Context, serverID int64, name string) (storage.Squad, error)
	OwnedSquad(ctx context.Context, serverID, ownerID int64) (storage.Squad, error)
	MembershipFor(ctx context.Context, serverID, discordID int64) (storage.Squad, error)
	MemberCount(ctx context.Context, squadID int64) (int, error)
	IsMember(ctx context.Context, squadID, discordID int64) (bool, error)
	AddMember(ctx context.Context, squadID, discordID int64) error
	RemoveMember(ctx context.Context, squadID, discordID int64) error
	Delete(ctx context.Context, squadID int64) error
	UpdateOwner(ctx context.Context, squadID, newOwnerID int64) error
	ListBySize(ctx context.Context, serverID int64) ([]storage.SquadSummary, error)
	Members(ctx context.Context, squadID int64) ([]storage.SquadMember, error)
	MemberUsernames(ctx context.Context, squadID int64) ([]string, error)
}

// Lo implementa internal/infra/storage.SettingsRepo
type SettingsRepo interface {
	Get(ctx context.Context, serverID int64) (storage.GuildSettings, error)
	Update(ctx context.Context, serverID int64, u storage.GuildSettingsUpdate) (storage.GuildSettings, error)
}
