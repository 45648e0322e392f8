package middleware

import "court-slot-engine/internal/pkg/errs"

var (
	errMissingToken   = errs.New("access token required")
	errMissingActor   = errs.New("role check without authentication")
	errRoleNotAllowed = errs.New("role not allowed")
)
