package storage

import "time"

type User struct {
	DiscordID    int64
	EpicUsername string
	AccountID    *string // id opaco del proveedor; NULL hasta que se resuelva
	RegisteredAt time.Time
}

type Squad struct {
	SquadID   int64
	Name      string
	OwnerID   int64
	ServerID  int64
	CreatedAt time.Time
}

type SquadMember struct {
	SquadID   int64
	DiscordID int64
	JoinedAt  time.Time
}

// SquadSummary es una fila de /squad list.
type SquadSummary struct {
	Name        string
	OwnerID     int64
	MemberCount int
}

type GuildSettings struct {
	ServerID             int64
	DefaultStat          string
	DefaultMode          string
	CreatedAt, UpdatedAt time.Time
}

// Para updates parciales desde /settings set
type GuildSettingsUpdate struct {
	DefaultStat *string
	DefaultMode *string
}

// GuildUI: dónde vive el mensaje de leaderboard publicado (si hay).
type GuildUI struct {
	ServerID  int64
	ChannelID string
	MessageID string
	Stat      string
	Mode      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
