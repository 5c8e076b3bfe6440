package lol

import (
	"context"
	"encoding/json"

	"github.com/omarshaarawi/lolclient/internal/api/riot"
)

const (
	LeagueV3ChallengerByQueue   = "challenger-by-queue"
	LeagueV3BySummoner          = "by-summoner"
	LeagueV3MasterByQueue       = "master-by-queue"
	LeagueV3PositionsBySummoner = "positions-by-summoner"
)

// Queue identifiers accepted by the queue-scoped league endpoints.
const (
	QueueRankedSolo   = "RANKED_SOLO_5x5"
	QueueRankedFlexSR = "RANKED_FLEX_SR"
	QueueRankedFlexTT = "RANKED_FLEX_TT"
)

var Queues = []string{QueueRankedSolo, QueueRankedFlexSR, QueueRankedFlexTT}

type LeagueV3 struct {
	*riot.Category
}

func NewLeagueV3(client *riot.Client) *LeagueV3 {
	return &LeagueV3{riot.NewCategory(client, "league/v3/", map[string]string{
		LeagueV3ChallengerByQueue:   "challengerleagues/by-queue/{queue}",
		LeagueV3BySummoner:          "leagues/by-summoner/{summonerId}",
		LeagueV3MasterByQueue:       "masterleagues/by-queue/{queue}",
		LeagueV3PositionsBySummoner: "positions/by-summoner/{summonerId}",
	})}
}

func (l *LeagueV3) ChallengerByQueue(ctx context.Context, queue string) (json.RawMessage, error) {
	return l.Fetch(ctx, LeagueV3ChallengerByQueue, riot.Params{"queue": queue})
}

// BySummoner returns the leagues in all queues for a summoner.
func (l *LeagueV3) BySummoner(ctx context.Context, summonerID string) (json.RawMessage, error) {
	return l.Fetch(ctx, LeagueV3BySummoner, riot.Params{"summonerId": summonerID})
}

func (l *LeagueV3) MasterByQueue(ctx context.Context, queue string) (json.RawMessage, error) {
	return l.Fetch(ctx, LeagueV3MasterByQueue, riot.Params{"queue": queue})
}

func (l *LeagueV3) PositionsBySummoner(ctx context.Context, summonerID string) (json.RawMessage, error) {
	return l.Fetch(ctx, LeagueV3PositionsBySummoner, riot.Params{"summonerId": summonerID})
}
