package domain

import (
	interfaces "gamiclient/internal/domain/interfaces"
	types "gamiclient/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	GameID              = types.GameID
	CampaignID          = types.CampaignID
	PlayerID            = types.PlayerID
	AssetID             = types.AssetID
	Session             = types.Session
	AuthRequest         = types.AuthRequest
	TokenPayload        = types.TokenPayload
	GameTokenPayload    = types.GameTokenPayload
	GameDetail          = types.GameDetail
	ActivityStatus      = types.ActivityStatus
	ActivityDetail      = types.ActivityDetail
	RegisterRequest     = types.RegisterRequest
	Player              = types.Player
	Asset               = types.Asset
	AssetData           = types.AssetData
	FieldType           = types.FieldType
	TextValue           = types.TextValue
	FieldValueRequest   = types.FieldValueRequest
	FieldTypeDescriptor = types.FieldTypeDescriptor
	FieldValueRecord    = types.FieldValueRecord
	FieldValue          = types.FieldValue
	TransportRequest    = types.TransportRequest
	TransportResponse   = types.TransportResponse
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Transport       = interfaces.Transport
	SessionStore    = interfaces.SessionStore
	SessionService  = interfaces.SessionService
	ActivityService = interfaces.ActivityService
	PlayerService   = interfaces.PlayerService
	AssetService    = interfaces.AssetService
	FieldService    = interfaces.FieldService
)

// Re-exported constants so callers need not import the types subpackage.
const (
	StatusEnrolled  = types.StatusEnrolled
	StatusStarted   = types.StatusStarted
	StatusCompleted = types.StatusCompleted

	FieldText       = types.FieldText
	FieldNumber     = types.FieldNumber
	FieldTextList   = types.FieldTextList
	FieldNumberList = types.FieldNumberList
	FieldDate       = types.FieldDate
	FieldDateList   = types.FieldDateList
	FieldLink       = types.FieldLink
	FieldLinkList   = types.FieldLinkList
)

// Parsers for user-supplied status and field type names.
var (
	ParseActivityStatus = types.ParseActivityStatus
	ParseFieldType      = types.ParseFieldType
)
