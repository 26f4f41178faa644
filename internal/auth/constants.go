package auth

const (
	ContextKeyPrincipal = "principal"

	jsonKeyError = "error"

	headerAuthorization = "Authorization"

	bearerScheme    = "bearer"
	authHeaderParts = 2
)

const (
	msgTokenExpired            = "Token has expired."
	msgUnauthorized            = "Unauthorized."
	msgForbiddenRoleFmt        = "Forbidden: role mismatch, Only %s can access!"
	msgUserNotAuthenticated    = "user not authenticated"
	msgInvalidPrincipalCtx     = "invalid principal in context"
	msgUnexpectedSigningMethod = "unexpected signing method: %v"
	msgTokenParseFailed        = "failed to parse token: %w"
	msgInvalidTokenClaims      = "invalid token claims"
	msgMissingSubject          = "token has no subject"
	msgTokenSignFailed         = "failed to sign token: %w"
	msgNilIdentity             = "cannot issue token for nil identity"
	msgCredentialLookupFailed  = "credential lookup failed"
)

const (
	decisionPublic          = "public"
	decisionAllowed         = "allowed"
	decisionForbidden       = "forbidden"
	decisionExpired         = "expired"
	decisionUnauthenticated = "unauthenticated"

	loginSuccess = "success"
	loginFailure = "failure"
	loginError   = "error"
)
