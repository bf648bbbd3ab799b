package goPortalAuth

import (
	"github.com/MrEthical07/goPortalAuth/directory"
	"github.com/MrEthical07/goPortalAuth/session"
	"github.com/MrEthical07/goPortalAuth/token"
)

// Portal roles as the backend spells them. Role values are compared
// byte-for-byte; there is no case folding anywhere in the engine.
const (
	// RoleAdmin is an exported constant or variable used by the portal bootstrap engine.
	RoleAdmin = "ADMIN"
	// RoleDoctor is an exported constant or variable used by the portal bootstrap engine.
	RoleDoctor = "DOCTOR"
	// RolePatient is an exported constant or variable used by the portal bootstrap engine.
	RolePatient = "PATIENT"
)

// Account status values as stored in the portal directory.
const (
	// StatusActive is an exported constant or variable used by the portal bootstrap engine.
	StatusActive = "Active"
	// StatusInactive is an exported constant or variable used by the portal bootstrap engine.
	StatusInactive = "Inactive"
)

// Role landing routes.
const (
	// RouteAdmin is an exported constant or variable used by the portal bootstrap engine.
	RouteAdmin = "/admin"
	// RouteDoctor is an exported constant or variable used by the portal bootstrap engine.
	RouteDoctor = "/doctor"
	// RoutePatient is an exported constant or variable used by the portal bootstrap engine.
	RoutePatient = "/patient"
	// RouteLogin is an exported constant or variable used by the portal bootstrap engine.
	RouteLogin = "/login"
)

// RouteForRole describes the routeforrole operation and its observable behavior.
//
// RouteForRole maps a role value to its landing route. Unknown or empty roles
// fall through to the login route rather than failing.
func RouteForRole(role string) string {
	switch role {
	case RoleAdmin:
		return RouteAdmin
	case RoleDoctor:
		return RouteDoctor
	case RolePatient:
		return RoutePatient
	default:
		return RouteLogin
	}
}

// Credentials defines a public type used by goPortalAuth APIs.
//
// Credentials instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Credentials struct {
	Email    string
	Password string
}

// RecoveryRequest defines a public type used by goPortalAuth APIs.
//
// RecoveryRequest instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RecoveryRequest struct {
	Email        string
	MobileNumber string
	MagicWord    string
}

// RegistrationForm defines a public type used by goPortalAuth APIs.
//
// RegistrationForm instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RegistrationForm struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	MobileNumber    string
	MagicWord       string
	Role            string
}

// LoginResult is returned by [Engine.Login]. Matched reports whether the
// directory verification step found the account; when it is false the
// bootstrap stopped silently after the partial session write and every other
// field is zero.
type LoginResult struct {
	Matched        bool
	RedirectTarget string
	Token          string
	Role           string
	SubjectID      string
}

// RecoveryResult is returned by [Engine.RecoverPassword]. MessageID
// identifies the dispatched notification; delivery itself is asynchronous
// and never reported through this value.
type RecoveryResult struct {
	MessageID string
}

// SessionState is the persisted session snapshot returned by
// [Engine.Session].
type SessionState = session.State

// DirectoryRecord is one portal account as the directory endpoint returns
// it.
type DirectoryRecord = directory.Record

// TokenPayload is the decoded claim set of a bearer token.
type TokenPayload = token.Payload
