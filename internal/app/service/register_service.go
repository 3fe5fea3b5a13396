package service

import (
	"context"
	"errors"
	"log"

	"github.com/jose-valero/fortnite-squad-bot/internal/adapters/fortnite"
	"github.com/jose-valero/fortnite-squad-bot/internal/domain"
	"github.com/jose-valero/fortnite-squad-bot/internal/infra/storage"
)

type RegisterService struct {
	fc    FortniteAPI
	users UserRepo
}

func NewRegisterService(fc FortniteAPI, users UserRepo) *RegisterService {
	return &RegisterService{fc: fc, users: users}
}

// Register vincula discordID con una cuenta Epic. Primero valida el username
// contra el proveedor: si la cuenta no existe, rechaza. Si el proveedor está
// caído, en timeout, o la cuenta tiene stats privadas, registra igual con
// account_id NULL (el upsert con COALESCE nunca pisa un account_id previo
// con NULL). Devuelve las stats si las consiguió, para que el caller pueda
// mostrarlas sin otro round-trip.
func (s *RegisterService) Register(ctx context.Context, discordID int64, username string) (*domain.PlayerStats, error) {
	ps, err := s.fc.FetchStats(ctx, username)
	switch {
	case err == nil:
		// guardamos el nombre canónico que devuelve el proveedor
		if err := s.users.Upsert(ctx, storage.User{
			DiscordID:    discordID,
			EpicUsername: ps.Name,
			AccountID:    &ps.AccountID,
		}); err != nil {
			return nil, err
		}
		return ps, nil

	case errors.Is(err, fortnite.ErrPlayerNotFound):
		return nil, ErrUnknownPlayer

	default:
		// stats privadas / timeout / proveedor caído: registramos igual
		log.Printf("register: stats lookup for %q failed (%v), registering without account id", username, err)
		if err := s.users.Upsert(ctx, storage.User{
			DiscordID:    discordID,
			EpicUsername: username,
		}); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

// Unregister borra el vínculo. Borrar a alguien no registrado es no-op.
func (s *RegisterService) Unregister(ctx context.Context, discordID int64) (bool, error) {
	return s.users.Delete(ctx, discordID)
}

// RegisteredAmong filtra una lista de discord ids a los que están
// registrados, devolviendo su username Epic. Roster del leaderboard.
func (s *RegisterService) RegisteredAmong(ctx context.Context, ids []int64) (map[int64]string, error) {
	return s.users.UsernamesByDiscordIDs(ctx, ids)
}

// Username devuelve el username Epic vinculado, o ErrNotRegistered.
func (s *RegisterService) Username(ctx context.Context, discordID int64) (string, error) {
	name, err := s.users.GetUsername(ctx, discordID)
	if errors.Is(err, storage.ErrNotFound) {
		return "", ErrNotRegistered
	}
	return name, err
}

// Profile devuelve la fila del usuario, o ErrNotRegistered.
func (s *RegisterService) Profile(ctx context.Context, discordID int64) (storage.User, error) {
	u, err := s.users.Get(ctx, discordID)
	if errors.Is(err, storage.ErrNotFound) {
		return storage.User{}, ErrNotRegistered
	}
	return u, err
}
