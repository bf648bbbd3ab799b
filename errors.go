package goPortalAuth

import (
	"errors"

	"github.com/MrEthical07/goPortalAuth/authapi"
	"github.com/MrEthical07/goPortalAuth/directory"
	"github.com/MrEthical07/goPortalAuth/notify"
	"github.com/MrEthical07/goPortalAuth/session"
	"github.com/MrEthical07/goPortalAuth/token"
)

var (
	// ErrInvalidCredentials is an exported constant or variable used by the portal bootstrap engine.
	ErrInvalidCredentials = authapi.ErrInvalidCredentials
	// ErrAuthService is an exported constant or variable used by the portal bootstrap engine.
	ErrAuthService = authapi.ErrService
	// ErrDirectoryUnavailable is an exported constant or variable used by the portal bootstrap engine.
	ErrDirectoryUnavailable = directory.ErrUnavailable
	// ErrTokenMalformed is an exported constant or variable used by the portal bootstrap engine.
	ErrTokenMalformed = token.ErrMalformed
	// ErrSessionUnavailable is an exported constant or variable used by the portal bootstrap engine.
	ErrSessionUnavailable = session.ErrUnavailable
	// ErrNoSession is an exported constant or variable used by the portal bootstrap engine.
	ErrNoSession = session.ErrNoSession
	// ErrDispatch is an exported constant or variable used by the portal bootstrap engine.
	ErrDispatch = notify.ErrDispatch
	// ErrRegistrationConflict is an exported constant or variable used by the portal bootstrap engine.
	ErrRegistrationConflict = authapi.ErrConflict
	// ErrRegistrationValidation is an exported constant or variable used by the portal bootstrap engine.
	ErrRegistrationValidation = authapi.ErrValidation

	// ErrAccountInactive is an exported constant or variable used by the portal bootstrap engine.
	ErrAccountInactive = errors.New("account inactive")
	// ErrUserNotFound is an exported constant or variable used by the portal bootstrap engine.
	ErrUserNotFound = errors.New("user not found")
	// ErrChallengeMismatch is an exported constant or variable used by the portal bootstrap engine.
	ErrChallengeMismatch = errors.New("recovery challenge mismatch")
	// ErrLoginRateLimited is an exported constant or variable used by the portal bootstrap engine.
	ErrLoginRateLimited = errors.New("login rate limited")
	// ErrRecoveryRateLimited is an exported constant or variable used by the portal bootstrap engine.
	ErrRecoveryRateLimited = errors.New("recovery rate limited")
	// ErrRecoveryDisabled is an exported constant or variable used by the portal bootstrap engine.
	ErrRecoveryDisabled = errors.New("password recovery disabled")
	// ErrRegistrationDisabled is an exported constant or variable used by the portal bootstrap engine.
	ErrRegistrationDisabled = errors.New("registration disabled")
	// ErrEngineNotReady is an exported constant or variable used by the portal bootstrap engine.
	ErrEngineNotReady = errors.New("engine not initialized")
)
