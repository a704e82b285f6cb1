package sleeper

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/armanpopli/roastbot/internal/models"
)

// PlayerDirectory resolves player identifiers to names and details. The full
// player table (tens of thousands of entries) is fetched once, on first use,
// and held for the process lifetime; sync.Once keeps concurrent first callers
// from issuing duplicate full-table fetches. If the load fails the directory
// degrades to placeholder names instead of failing its callers.
type PlayerDirectory struct {
	client *Client
	once   sync.Once
	table  map[string]models.Player
}

func NewPlayerDirectory(client *Client) *PlayerDirectory {
	return &PlayerDirectory{client: client}
}

func (d *PlayerDirectory) load(ctx context.Context) {
	d.once.Do(func() {
		var table map[string]models.Player
		if err := d.client.Get(ctx, endpointPlayers(), &table); err != nil {
			slog.Warn("Failed to load player table, degrading to placeholder names", "error", err)
			d.table = map[string]models.Player{}
			return
		}
		slog.Info("Loaded player table", "players", len(table))
		d.table = table
	})
}

// ResolveName is total: every identifier yields a non-empty name. Defense
// codes are synthesized before any table lookup since they are not present
// in the player table; unknown identifiers fall back to "Player {id}".
func (d *PlayerDirectory) ResolveName(ctx context.Context, playerID string) string {
	if isDefenseCode(playerID) {
		return playerID + " Defense"
	}

	d.load(ctx)

	player, ok := d.table[playerID]
	if !ok {
		return fmt.Sprintf("Player %s", playerID)
	}

	switch {
	case player.FirstName != "" && player.LastName != "":
		return player.FirstName + " " + player.LastName
	case player.LastName != "":
		return player.LastName
	default:
		return fmt.Sprintf("Player %s", playerID)
	}
}

// ResolveDetails reports ok=false when the identifier is neither a defense
// code nor present in the table.
func (d *PlayerDirectory) ResolveDetails(ctx context.Context, playerID string) (models.Player, bool) {
	if isDefenseCode(playerID) {
		return models.Player{
			PlayerID: playerID,
			FullName: playerID + " Defense",
			Position: "DEF",
			Team:     playerID,
		}, true
	}

	d.load(ctx)

	player, ok := d.table[playerID]
	if !ok {
		return models.Player{}, false
	}
	if player.PlayerID == "" {
		player.PlayerID = playerID
	}
	if player.FullName == "" {
		player.FullName = d.ResolveName(ctx, playerID)
	}
	return player, true
}

// Team defenses are identified by their team code: at most three characters,
// all uppercase letters.
func isDefenseCode(playerID string) bool {
	if len(playerID) == 0 || len(playerID) > 3 {
		return false
	}
	for _, r := range playerID {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
