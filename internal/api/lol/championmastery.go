package lol

import (
	"context"
	"encoding/json"

	"github.com/omarshaarawi/lolclient/internal/api/riot"
)

const (
	MasteryAll        = "all"
	MasteryByChampion = "by-champion"
	MasteryScore      = "score"
)

type ChampionMastery struct {
	*riot.Category
}

func NewChampionMastery(client *riot.Client) *ChampionMastery {
	return &ChampionMastery{riot.NewCategory(client, "champion-mastery/v3/", map[string]string{
		MasteryAll:        "champion-masteries/by-summoner/{summonerId}",
		MasteryByChampion: "champion-masteries/by-summoner/{summonerId}/by-champion/{championId}",
		MasteryScore:      "scores/by-summoner/{summonerId}",
	})}
}

// All returns every champion mastery entry of a player, sorted by champion
// points descending.
func (c *ChampionMastery) All(ctx context.Context, summonerID string) (json.RawMessage, error) {
	return c.Fetch(ctx, MasteryAll, riot.Params{"summonerId": summonerID})
}

func (c *ChampionMastery) ByChampion(ctx context.Context, summonerID, championID string) (json.RawMessage, error) {
	return c.Fetch(ctx, MasteryByChampion, riot.Params{"summonerId": summonerID, "championId": championID})
}

// Score returns the sum of a player's champion mastery levels.
func (c *ChampionMastery) Score(ctx context.Context, summonerID string) (json.RawMessage, error) {
	return c.Fetch(ctx, MasteryScore, riot.Params{"summonerId": summonerID})
}
