package lol

import (
	"context"
	"encoding/json"

	"github.com/omarshaarawi/lolclient/internal/api/riot"
)

const (
	ChampionAll  = "all"
	ChampionByID = "by-id"
)

type Champion struct {
	*riot.Category
}

func NewChampion(client *riot.Client) *Champion {
	return &Champion{riot.NewCategory(client, "platform/v3/", map[string]string{
		ChampionAll:  "champions",
		ChampionByID: "champions/{id}",
	})}
}

func (c *Champion) All(ctx context.Context) (json.RawMessage, error) {
	return c.Fetch(ctx, ChampionAll, nil)
}

func (c *Champion) ByID(ctx context.Context, championID string) (json.RawMessage, error) {
	return c.Fetch(ctx, ChampionByID, riot.Params{"id": championID})
}
