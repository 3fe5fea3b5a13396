package service

import (
	"context"
	"sort"
	"time"

	"github.com/jose-valero/fortnite-squad-bot/internal/domain"
	"github.com/jose-valero/fortnite-squad-bot/internal/infra/storage"
)

// Fakes en memoria con la misma semántica que los repos de Postgres.
// Los tests de reglas de negocio corren contra esto; el SQL real se
// mantiene lo bastante tonto como para que la regla viva en el service.

type fakeUserRepo struct {
	users map[int64]storage.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]storage.User{}}
}

func (f *fakeUserRepo) Upsert(_ context.Context, u storage.User) error {
	prev, ok := f.users[u.DiscordID]
	if ok {
		// COALESCE(EXCLUDED.account_id, users.account_id)
		if u.AccountID == nil {
			u.AccountID = prev.AccountID
		}
		u.RegisteredAt = prev.RegisteredAt
	} else {
		u.RegisteredAt = time.Now()
	}
	f.users[u.DiscordID] = u
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) (bool, error) {
	_, ok := f.users[id]
	delete(f.users, id)
	return ok, nil
}

func (f *fakeUserRepo) Get(_ context.Context, id int64) (storage.User, error) {
	u, ok := f.users[id]
	if !ok {
		return storage.User{}, storage.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetUsername(ctx context.Context, id int64) (string, error) {
	u, err := f.Get(ctx, id)
	return u.EpicUsername, err
}

func (f *fakeUserRepo) UsernamesByDiscordIDs(_ context.Context, ids []int64) (map[int64]string, error) {
	out := map[int64]string{}
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out[id] = u.EpicUsername
		}
	}
	return out, nil
}

type fakeSquadRepo struct {
	nextID  int64
	clock   int64
	squads  map[int64]storage.Squad
	members map[int64][]storage.SquadMember
	users   *fakeUserRepo
}

func newFakeSquadRepo(users *fakeUserRepo) *fakeSquadRepo {
	return &fakeSquadRepo{
		squads:  map[int64]storage.Squad{},
		members: map[int64][]storage.SquadMember{},
		users:   users,
	}
}

func (f *fakeSquadRepo) tick() time.Time {
	f.clock++
	return time.Unix(f.clock, 0)
}

func (f *fakeSquadRepo) Insert(ctx context.Context, name string, ownerID, serverID int64) (int64, error) {
	for _, s := range f.squads {
		if s.ServerID == serverID && s.Name == name {
			return 0, storage.ErrDuplicate
		}
	}
	f.nextID++
	id := f.nextID
	f.squads[id] = storage.Squad{
		SquadID: id, Name: name, OwnerID: ownerID, ServerID: serverID, CreatedAt: f.tick(),
	}
	return id, f.AddMember(ctx, id, ownerID)
}

func (f *fakeSquadRepo) GetByName(_ context.Context, serverID int64, name string) (storage.Squad, error) {
	for _, s := range f.squads {
		if s.ServerID == serverID && s.Name == name {
			return s, nil
		}
	}
	return storage.Squad{}, storage.ErrNotFound
}

func (f *fakeSquadRepo) OwnedSquad(_ context.Context, serverID, ownerID int64) (storage.Squad, error) {
	for _, s := range f.squads {
		if s.ServerID == serverID && s.OwnerID == ownerID {
			return s, nil
		}
	}
	return storage.Squad{}, storage.ErrNotFound
}

func (f *fakeSquadRepo) MembershipFor(_ context.Context, serverID, discordID int64) (storage.Squad, error) {
	for id, s := range f.squads {
		if s.ServerID != serverID {
			continue
		}
		for _, m := range f.members[id] {
			if m.DiscordID == discordID {
				return s, nil
			}
		}
	}
	return storage.Squad{}, storage.ErrNotFound
}

func (f *fakeSquadRepo) MemberCount(_ context.Context, squadID int64) (int, error) {
	return len(f.members[squadID]), nil
}

func (f *fakeSquadRepo) IsMember(_ context.Context, squadID, discordID int64) (bool, error) {
	for _, m := range f.members[squadID] {
		if m.DiscordID == discordID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSquadRepo) AddMember(_ context.Context, squadID, discordID int64) error {
	for _, m := range f.members[squadID] {
		if m.DiscordID == discordID {
			return storage.ErrDuplicate
		}
	}
	f.members[squadID] = append(f.members[squadID], storage.SquadMember{
		SquadID: squadID, DiscordID: discordID, JoinedAt: f.tick(),
	})
	return nil
}

func (f *fakeSquadRepo) RemoveMember(_ context.Context, squadID, discordID int64) error {
	ms := f.members[squadID]
	for i, m := range ms {
		if m.DiscordID == discordID {
			f.members[squadID] = append(ms[:i], ms[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeSquadRepo) Delete(_ context.Context, squadID int64) error {
	delete(f.squads, squadID)
	delete(f.members, squadID) // ON DELETE CASCADE
	return nil
}

func (f *fakeSquadRepo) UpdateOwner(_ context.Context, squadID, newOwnerID int64) error {
	s, ok := f.squads[squadID]
	if !ok {
		return storage.ErrNotFound
	}
	s.OwnerID = newOwnerID
	f.squads[squadID] = s
	return nil
}

func (f *fakeSquadRepo) ListBySize(_ context.Context, serverID int64) ([]storage.SquadSummary, error) {
	type row struct {
		sum     storage.SquadSummary
		created time.Time
	}
	var rows []row
	for id, s := range f.squads {
		if s.ServerID != serverID {
			continue
		}
		rows = append(rows, row{
			sum:     storage.SquadSummary{Name: s.Name, OwnerID: s.OwnerID, MemberCount: len(f.members[id])},
			created: s.CreatedAt,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].sum.MemberCount != rows[j].sum.MemberCount {
			return rows[i].sum.MemberCount > rows[j].sum.MemberCount
		}
		return rows[i].created.Before(rows[j].created)
	})
	out := make([]storage.SquadSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.sum)
	}
	return out, nil
}

func (f *fakeSquadRepo) Members(_ context.Context, squadID int64) ([]storage.SquadMember, error) {
	ms := append([]storage.SquadMember(nil), f.members[squadID]...)
	sort.SliceStable(ms, func(i, j int) bool { return ms[i].JoinedAt.Before(ms[j].JoinedAt) })
	return ms, nil
}

func (f *fakeSquadRepo) MemberUsernames(ctx context.Context, squadID int64) ([]string, error) {
	var out []string
	for _, m := range f.members[squadID] {
		if u, ok := f.users.users[m.DiscordID]; ok {
			out = append(out, u.EpicUsername)
		}
	}
	return out, nil
}

// fakeFortnite: stats por username, o un error fijo por username.
type fakeFortnite struct {
	stats map[string]*domain.PlayerStats
	errs  map[string]error
	calls []string
}

func newFakeFortnite() *fakeFortnite {
	return &fakeFortnite{stats: map[string]*domain.PlayerStats{}, errs: map[string]error{}}
}

func (f *fakeFortnite) FetchStats(_ context.Context, username string) (*domain.PlayerStats, error) {
	f.calls = append(f.calls, username)
	if err, ok := f.errs[username]; ok {
		return nil, err
	}
	if ps, ok := f.stats[username]; ok {
		return ps, nil
	}
	return nil, errNoFixture
}

var errNoFixture = fortniteNotFound{}

type fortniteNotFound struct{}

func (fortniteNotFound) Error() string { return "fake: no fixture" }

func overallStats(wins, kills, matches int) *domain.PlayerStats {
	kd := 0.0
	if d := matches - wins; d > 0 {
		kd = float64(kills) / float64(d)
	}
	winRate := 0.0
	if matches > 0 {
		winRate = float64(wins) / float64(matches) * 100
	}
	return &domain.PlayerStats{
		Overall: &domain.ModeStats{Wins: wins, Kills: kills, Matches: matches, KD: kd, WinRate: winRate},
	}
}
