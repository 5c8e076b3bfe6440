package lol

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/omarshaarawi/lolclient/internal/api/riot"
)

const (
	LeagueBySummoner        = "by-summoner"
	LeagueEntriesBySummoner = "entries"
	LeagueChallenger        = "challenger"
	LeagueMaster            = "master"
)

// League is the region-scoped v2.5 league API. The region is part of the
// version segment, so every method requires it.
type League struct {
	*riot.Category
}

func NewLeague(client *riot.Client) *League {
	return &League{riot.NewCategory(client, "{region}/v2.5/league/", map[string]string{
		LeagueBySummoner:        "by-summoner/{summonerIds}",
		LeagueEntriesBySummoner: "{summonerIds}/entry",
		LeagueChallenger:        "challenger",
		LeagueMaster:            "master",
	})}
}

// BySummoner returns leagues mapped by summoner ID for the given summoners.
func (l *League) BySummoner(ctx context.Context, region string, summonerIDs ...string) (json.RawMessage, error) {
	return l.Fetch(ctx, LeagueBySummoner, summonerParams(region, summonerIDs))
}

// EntriesBySummoner returns league entries mapped by summoner ID.
func (l *League) EntriesBySummoner(ctx context.Context, region string, summonerIDs ...string) (json.RawMessage, error) {
	return l.Fetch(ctx, LeagueEntriesBySummoner, summonerParams(region, summonerIDs))
}

func (l *League) Challenger(ctx context.Context, region string) (json.RawMessage, error) {
	return l.Fetch(ctx, LeagueChallenger, regionParams(region))
}

func (l *League) Master(ctx context.Context, region string) (json.RawMessage, error) {
	return l.Fetch(ctx, LeagueMaster, regionParams(region))
}

func regionParams(region string) riot.Params {
	return riot.Params{"region": region}
}

// summonerParams joins the IDs with commas. No IDs expands to an empty value,
// which fails as a missing parameter.
func summonerParams(region string, summonerIDs []string) riot.Params {
	params := regionParams(region)
	params["summonerIds"] = strings.Join(summonerIDs, ",")
	return params
}
