// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// InitiatorKind distinguishes who closed or opened an attendance record.
type InitiatorKind string

const (
	// InitiatorKindAdmin marks an action performed by an event administrator.
	InitiatorKindAdmin InitiatorKind = "admin"
	// InitiatorKindAutomatic marks an action performed by the geofence monitor.
	InitiatorKindAutomatic InitiatorKind = "automatic"
)

// Initiator is either an administrator with an ID or the automatic geofence.
// The zero value is not a valid initiator.
type Initiator struct {
	kind    InitiatorKind
	adminID uuid.UUID
}

// AdminInitiator returns an initiator for the given administrator.
func AdminInitiator(adminID uuid.UUID) Initiator {
	return Initiator{kind: InitiatorKindAdmin, adminID: adminID}
}

// AutomaticInitiator returns the initiator used by geofence auto check-out.
func AutomaticInitiator() Initiator {
	return Initiator{kind: InitiatorKindAutomatic}
}

// Kind returns the initiator kind.
func (i Initiator) Kind() InitiatorKind {
	return i.kind
}

// AdminID returns the administrator ID and whether the initiator is an admin.
func (i Initiator) AdminID() (uuid.UUID, bool) {
	if i.kind != InitiatorKindAdmin {
		return uuid.Nil, false
	}

	return i.adminID, true
}

// IsAutomatic reports whether the initiator is the geofence.
func (i Initiator) IsAutomatic() bool {
	return i.kind == InitiatorKindAutomatic
}

// IsValid reports whether the initiator is well formed.
func (i Initiator) IsValid() bool {
	switch i.kind {
	case InitiatorKindAdmin:
		return i.adminID != uuid.Nil
	case InitiatorKindAutomatic:
		return true
	default:
		return false
	}
}

// String returns "automatic" or "admin:<id>".
func (i Initiator) String() string {
	if id, ok := i.AdminID(); ok {
		return fmt.Sprintf("%s:%s", InitiatorKindAdmin, id)
	}

	return string(i.kind)
}

// InitiatorFromParts rebuilds an Initiator from its persisted columns.
func InitiatorFromParts(kind string, adminID *uuid.UUID) (Initiator, bool) {
	switch InitiatorKind(kind) {
	case InitiatorKindAutomatic:
		return AutomaticInitiator(), true
	case InitiatorKindAdmin:
		if adminID == nil || *adminID == uuid.Nil {
			return Initiator{}, false
		}

		return AdminInitiator(*adminID), true
	default:
		return Initiator{}, false
	}
}
