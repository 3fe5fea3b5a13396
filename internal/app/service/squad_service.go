package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/jose-valero/fortnite-squad-bot/internal/infra/storage"
)

type SquadService struct {
	squads SquadRepo
	users  UserRepo
}

func NewSquadService(squads SquadRepo, users UserRepo) *SquadService {
	return &SquadService{squads: squads, users: users}
}

// SquadDetail: lo que muestra /squad info.
type SquadDetail struct {
	Squad     storage.Squad
	Members   []storage.SquadMember
	Usernames map[int64]string // solo miembros registrados
}

// Create valida el nombre acá además de en el dispatcher: el registry no
// confía en su caller para sus propios invariantes.
func (s *SquadService) Create(ctx context.Context, serverID, ownerID int64, name string) (int64, error) {
	if n := utf8.RuneCountInString(name); n < 3 || n > 20 {
		return 0, ErrBadSquadName
	}

	// un squad por dueño por server, sin importar el nombre
	if _, err := s.squads.OwnedSquad(ctx, serverID, ownerID); err == nil {
		return 0, ErrDuplicateOwnership
	} else if !errors.Is(err, storage.ErrNotFound) {
		return 0, err
	}

	id, err := s.squads.Insert(ctx, name, ownerID, serverID)
	if errors.Is(err, storage.ErrDuplicate) {
		return 0, ErrDuplicateName
	}
	return id, err
}

// Join devuelve la cantidad de miembros después de unirse.
func (s *SquadService) Join(ctx context.Context, serverID, discordID int64, name string) (int, error) {
	sq, err := s.squads.GetByName(ctx, serverID, name)
	if errors.Is(err, storage.ErrNotFound) {
		return 0, ErrSquadNotFound
	}
	if err != nil {
		return 0, err
	}

	// una membresía por usuario por server (en este squad o en otro)
	if _, err := s.squads.MembershipFor(ctx, serverID, discordID); err == nil {
		return 0, ErrAlreadyInSquad
	} else if !errors.Is(err, storage.ErrNotFound) {
		return 0, err
	}

	n, err := s.squads.MemberCount(ctx, sq.SquadID)
	if err != nil {
		return 0, err
	}
	if n >= MaxSquadMembers {
		return 0, ErrSquadFull
	}

	if err := s.squads.AddMember(ctx, sq.SquadID, discordID); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return 0, ErrAlreadyInSquad
		}
		return 0, err
	}
	return n + 1, nil
}

// Leave devuelve el nombre del squad abandonado. El owner no puede irse:
// tiene que transferir o borrar, si no el squad queda huérfano.
func (s *SquadService) Leave(ctx context.Context, serverID, discordID int64) (string, error) {
	sq, err := s.squads.MembershipFor(ctx, serverID, discordID)
	if errors.Is(err, storage.ErrNotFound) {
		return "", ErrNotInSquad
	}
	if err != nil {
		return "", err
	}
	if sq.OwnerID == discordID {
		return "", ErrOwnerMustResolve
	}
	if err := s.squads.RemoveMember(ctx, sq.SquadID, discordID); err != nil {
		return "", err
	}
	return sq.Name, nil
}

// Delete borra el squad (cascade sobre squad_members). name vacío = el squad
// del caller. force saltea el chequeo de dueño (admins del server).
func (s *SquadService) Delete(ctx context.Context, serverID, callerID int64, name string, force bool) (string, error) {
	sq, err := s.resolve(ctx, serverID, callerID, name)
	if err != nil {
		return "", err
	}
	if sq.OwnerID != callerID && !force {
		return "", ErrNotOwner
	}
	if err := s.squads.Delete(ctx, sq.SquadID); err != nil {
		return "", err
	}
	return sq.Name, nil
}

// Transfer pasa la propiedad a otro miembro. El destino tiene que ser ya
// miembro del squad; transferir a un tercero saltearía el tope de 4.
func (s *SquadService) Transfer(ctx context.Context, serverID, callerID, newOwnerID int64, name string) (string, error) {
	sq, err := s.resolve(ctx, serverID, callerID, name)
	if err != nil {
		return "", err
	}
	if sq.OwnerID != callerID {
		return "", ErrNotOwner
	}
	ok, err := s.squads.IsMember(ctx, sq.SquadID, newOwnerID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNotAMember
	}
	if err := s.squads.UpdateOwner(ctx, sq.SquadID, newOwnerID); err != nil {
		return "", err
	}
	return sq.Name, nil
}

func (s *SquadService) List(ctx context.Context, serverID int64) ([]storage.SquadSummary, error) {
	return s.squads.ListBySize(ctx, serverID)
}

// Info resuelve por nombre, o por la membresía del caller si name es vacío.
func (s *SquadService) Info(ctx context.Context, serverID, callerID int64, name string) (SquadDetail, error) {
	sq, err := s.resolve(ctx, serverID, callerID, name)
	if err != nil {
		return SquadDetail{}, err
	}
	members, err := s.squads.Members(ctx, sq.SquadID)
	if err != nil {
		return SquadDetail{}, err
	}
	ids := make([]int64, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.DiscordID)
	}
	names, err := s.users.UsernamesByDiscordIDs(ctx, ids)
	if err != nil {
		return SquadDetail{}, err
	}
	return SquadDetail{Squad: sq, Members: members, Usernames: names}, nil
}

// MemberUsernames: roster de usernames registrados para squad stats.
func (s *SquadService) MemberUsernames(ctx context.Context, squadID int64) ([]string, error) {
	return s.squads.MemberUsernames(ctx, squadID)
}

func (s *SquadService) resolve(ctx context.Context, serverID, callerID int64, name string) (storage.Squad, error) {
	if name != "" {
		sq, err := s.squads.GetByName(ctx, serverID, name)
		if errors.Is(err, storage.ErrNotFound) {
			return storage.Squad{}, ErrSquadNotFound
		}
		return sq, err
	}
	sq, err := s.squads.MembershipFor(ctx, serverID, callerID)
	if errors.Is(err, storage.ErrNotFound) {
		return storage.Squad{}, ErrNotInSquad
	}
	return sq, err
}
