package types

import "strconv"

// GameID identifies a game on the platform.
type GameID int

// String returns the decimal form used in URL paths.
func (id GameID) String() string { return strconv.Itoa(int(id)) }

// CampaignID identifies the campaign a game is played under.
type CampaignID int

// String returns the decimal form used in URL paths.
func (id CampaignID) String() string { return strconv.Itoa(int(id)) }

// PlayerID identifies a registered player.
type PlayerID int

// String returns the decimal form of the player identifier.
func (id PlayerID) String() string { return strconv.Itoa(int(id)) }

// AssetID is the primary key of a game asset.
type AssetID int

// String returns the decimal form used in URL paths.
func (id AssetID) String() string { return strconv.Itoa(int(id)) }
