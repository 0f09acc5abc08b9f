package domain

import (
	"fmt"
	"time"
)

// Player represents a Steam user profile as returned by the Web API
type Player struct {
	SteamID      string `json:"steamid"`
	PersonaName  string `json:"personaname"`
	ProfileURL   string `json:"profileurl"`
	Avatar       string `json:"avatarfull"`
	PersonaState int    `json:"personastate"` // 0 offline, 1 online, ...
	CountryCode  string `json:"loccountrycode"`
	TimeCreated  int64  `json:"timecreated"`
}

// DisplayName returns the persona name, falling back to the SteamID
func (p Player) DisplayName() string {
	if p.PersonaName != "" {
		return p.PersonaName
	}
	return p.SteamID
}

// Game represents a single entry of an owned-games list
type Game struct {
	AppID           uint32 `json:"appid"`
	Name            string `json:"name"`
	PlaytimeForever int    `json:"playtime_forever"` // minutes
	PlaytimeRecent  int    `json:"playtime_2weeks"`  // minutes, last two weeks
	ImgIconURL      string `json:"img_icon_url"`
	RtimeLastPlayed int64  `json:"rtime_last_played"`
}

// Hours returns the total playtime in hours
func (g Game) Hours() float64 {
	return float64(g.PlaytimeForever) / 60.0
}

// Played reports whether the game has any recorded playtime
func (g Game) Played() bool {
	return g.PlaytimeForever > 0
}

// LastPlayed returns the last-played time, zero if never played
func (g Game) LastPlayed() time.Time {
	if g.RtimeLastPlayed == 0 {
		return time.Time{}
	}
	return time.Unix(g.RtimeLastPlayed, 0)
}

// StoreURL returns the Steam store page for the game
func (g Game) StoreURL() string {
	return fmt.Sprintf("https://store.steampowered.com/app/%d", g.AppID)
}
