package lol

import (
	"context"
	"encoding/json"

	"github.com/omarshaarawi/lolclient/internal/api/riot"
)

const StatusShardData = "shard-data"

type Status struct {
	*riot.Category
}

func NewStatus(client *riot.Client) *Status {
	return &Status{riot.NewCategory(client, "status/v3/", map[string]string{
		StatusShardData: "shard-data",
	})}
}

// ShardData returns the service status of the shard the API root points at.
func (s *Status) ShardData(ctx context.Context) (json.RawMessage, error) {
	return s.Fetch(ctx, StatusShardData, nil)
}
