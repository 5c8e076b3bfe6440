package lol

import (
	"github.com/omarshaarawi/lolclient/internal/api/riot"
	"github.com/omarshaarawi/lolclient/internal/config"
)

// API groups one client per API category. All of them share a single
// riot.Client and therefore one api key and one http.Client.
type API struct {
	ChampionMastery *ChampionMastery
	Champion        *Champion
	League          *League
	LeagueV3        *LeagueV3
	Status          *Status
	Masteries       *Masteries
}

func NewAPI(cfg config.RiotAPI, opts ...riot.Option) *API {
	client := riot.NewClient(cfg, opts...)
	return &API{
		ChampionMastery: NewChampionMastery(client),
		Champion:        NewChampion(client),
		League:          NewLeague(client),
		LeagueV3:        NewLeagueV3(client),
		Status:          NewStatus(client),
		Masteries:       NewMasteries(client),
	}
}

// Categories returns every category in a fixed order.
func (a *API) Categories() []*riot.Category {
	return []*riot.Category{
		a.ChampionMastery.Category,
		a.Champion.Category,
		a.League.Category,
		a.LeagueV3.Category,
		a.Status.Category,
		a.Masteries.Category,
	}
}
