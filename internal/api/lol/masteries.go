package lol

import (
	"context"
	"encoding/json"

	"github.com/omarshaarawi/lolclient/internal/api/riot"
)

const MasteriesBySummoner = "by-summoner"

type Masteries struct {
	*riot.Category
}

func NewMasteries(client *riot.Client) *Masteries {
	return &Masteries{riot.NewCategory(client, "platform/v3/masteries/", map[string]string{
		MasteriesBySummoner: "by-summoner/{summonerId}",
	})}
}

// BySummoner returns the mastery pages of a summoner.
func (m *Masteries) BySummoner(ctx context.Context, summonerID string) (json.RawMessage, error) {
	return m.Fetch(ctx, MasteriesBySummoner, riot.Params{"summonerId": summonerID})
}
