package types

import "fmt"

// Asset describes a file attached to a game campaign.
type Asset struct {
	ID        AssetID    `json:"id"`
	Slug      string     `json:"slug"`
	Game      GameID     `json:"game"`
	Campaign  CampaignID `json:"campaign"`
	Status    int        `json:"status"`
	AssetType int        `json:"asset_type"`
	FileName  string     `json:"file_name"`
}

func (a Asset) Check() bool { return a.ID != 0 }

func (a Asset) String() string {
	return fmt.Sprintf("%d::%s::%d::%d::%d::%s", a.ID, a.Slug, a.Game, a.Campaign, a.AssetType, a.FileName)
}

// AssetData is the binary content of an asset and its declared MIME type.
type AssetData struct {
	Bytes    []byte `json:"-"`
	MIMEType string `json:"mime_type"`
}
