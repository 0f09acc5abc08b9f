package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGameHelpers(t *testing.T) {
	t.Parallel()
	g := Game{AppID: 620, Name: "Portal 2", PlaytimeForever: 90, RtimeLastPlayed: 1693526400}

	assert.InDelta(t, 1.5, g.Hours(), 0.001)
	assert.True(t, g.Played())
	assert.Equal(t, time.Unix(1693526400, 0), g.LastPlayed())
	assert.Equal(t, "https://store.steampowered.com/app/620", g.StoreURL())
}

func TestGameNeverPlayed(t *testing.T) {
	t.Parallel()
	g := Game{AppID: 400, Name: "Portal"}

	assert.False(t, g.Played())
	assert.True(t, g.LastPlayed().IsZero())
	assert.Zero(t, g.Hours())
}

func TestPlayerDisplayName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Robin", Player{SteamID: "1", PersonaName: "Robin"}.DisplayName())
	assert.Equal(t, "76561197960435530", Player{SteamID: "76561197960435530"}.DisplayName())
}
