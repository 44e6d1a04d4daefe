package domain

import (
	interfaces "sevanear/internal/domain/interfaces"
	types "sevanear/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	HospitalID    = types.HospitalID
	ServiceID     = types.ServiceID
	ServiceTypeID = types.ServiceTypeID
	Coordinate    = types.Coordinate
	Hospital      = types.Hospital
	ServiceType   = types.ServiceType
	Service       = types.Service
	ServiceDraft  = types.ServiceDraft
	CreateAck     = types.CreateAck
	FormNumber    = types.FormNumber
	Page          = types.Page
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Source           = interfaces.Source
	Locator          = interfaces.Locator
	Strategy         = interfaces.Strategy
	PermissionBridge = interfaces.PermissionBridge
	Screen           = interfaces.Screen
	MapView          = interfaces.MapView
)
