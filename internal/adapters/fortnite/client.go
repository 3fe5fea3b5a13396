package fortnite

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jose-valero/fortnite-squad-bot/internal/domain"
)

// FetchStats busca las stats lifetime de una cuenta Epic por username.
// Un solo GET; el username va tal cual (puede traer espacios/unicode,
// url.Values lo escapa).
func (c *Client) FetchStats(ctx context.Context, username string) (*domain.PlayerStats, error) {
	q := url.Values{}
	q.Set("name", username)
	q.Set("accountType", "epic")
	q.Set("timeWindow", "lifetime")

	env, _, err := c.getEnvelope(ctx, q)
	if err != nil {
		return nil, err
	}

	switch env.Status {
	case http.StatusOK:
		// sigue abajo
	case http.StatusForbidden:
		// cuenta con stats privadas
		return nil, ErrStatsUnavailable
	default:
		return nil, ErrPlayerNotFound
	}

	var dto statsDTO
	if err := json.Unmarshal(env.Data, &dto); err != nil {
		return nil, fmt.Errorf("fortnite decode: %w", err)
	}

	ps := &domain.PlayerStats{
		AccountID:       dto.Account.ID,
		Name:            dto.Account.Name,
		BattlePassLevel: dto.BattlePass.Level,
		Overall:         dto.Stats.All[domain.ModeOverall].toDomain(),
		Solo:            dto.Stats.All[domain.ModeSolo].toDomain(),
		Duo:             dto.Stats.All[domain.ModeDuo].toDomain(),
		Trio:            dto.Stats.All[domain.ModeTrio].toDomain(),
		Squad:           dto.Stats.All[domain.ModeSquad].toDomain(),
	}
	if ps.Empty() {
		return nil, ErrStatsUnavailable
	}
	return ps, nil
}
