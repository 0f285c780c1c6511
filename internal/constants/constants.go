package constants

// Centralized constants for env keys, headers, routes and the OpenAI
// integration.
const (
	// Environment variable keys
	EnvSessionSecret       = "SESSION_SECRET"
	EnvGoogleClientID      = "GOOGLE_CLIENT_ID"
	EnvGoogleClientSecret  = "GOOGLE_CLIENT_SECRET"
	EnvOpenAIAPIKey        = "OPENAI_API_KEY"
	EnvSessionSecureCookie = "SESSION_SECURE_COOKIE"
	EnvArenaConfig         = "ARENA_CONFIG"
	EnvArenaDB             = "ARENA_DB"

	// HTTP headers and content types
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"

	ContentTypeJSON = "application/json"

	// Authorization prefix
	BearerPrefix = "Bearer "

	// OpenAI API endpoints and base URL
	OpenAIBaseURL             = "https://api.openai.com"
	OpenAIChatCompletionsPath = "/v1/chat/completions"

	// Default chat model; override via config.
	OpenAIChatModel = "gpt-5-nano"

	// Session / Cookie names
	CookieSessionName = "wa_session"

	// Google OAuth constants
	GoogleOAuthRedirect = "postmessage"
	GoogleUserInfoURL   = "https://www.googleapis.com/oauth2/v2/userinfo"
)

var (
	// Scopes for Google userinfo
	GoogleUserInfoScopes = []string{
		"https://www.googleapis.com/auth/userinfo.email",
		"https://www.googleapis.com/auth/userinfo.profile",
	}
)

// Routes used by the backend router
const (
	RouteAPIPrefix          = "/api"
	RouteHealth             = "/health"
	RouteRoster             = "/roster"
	RouteLeaderboard        = "/leaderboard"
	RouteAuthGoogleCallBack = "/auth/google/oauth2callback"
	RouteAuthLogout         = "/auth/logout"
	RoutePlayerStats        = "/player-stats"
	RouteWizardGenerate     = "/wizards/generate"
	RouteMatches            = "/matches"
	RouteMatchByCode        = "/matches/:matchCode"
	RouteMatchAction        = "/matches/:matchCode/action"
	RouteMatchResign        = "/matches/:matchCode/resign"
	RouteVersion            = "/version"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyDetails = "details"
)

// Error message texts shared between handlers
const (
	ErrInvalidRequest         = "invalid request"
	ErrInvalidMatchCode       = "invalid match code"
	ErrMatchNotFound          = "match not found"
	ErrMatchNotInProgress     = "match is not in progress"
	ErrAuthRequired           = "authentication required"
	ErrInvalidSession         = "invalid session"
	ErrMissingGoogleEnv       = "missing Google OAuth configuration"
	ErrFailedExchangeToken    = "failed to exchange authorization code"
	ErrFailedGetUserInfo      = "failed to fetch user info"
	ErrFailedReadUserData     = "failed to read user data: %s"
	ErrNoEmailInGoogleProfile = "no email in Google profile"
	ErrFailedCreateSession    = "failed to create session"
	ErrFailedCreateMatch      = "failed to create match"
	ErrFailedStoreAction      = "failed to store action"
	ErrGenerationFailed       = "wizard generation failed"
	ErrDescriptionRequired    = "description is required"
	ErrDescriptionExceeds     = "description exceeds the allowed length"
)

// Log field names
const (
	LogFieldAddr      = "addr"
	LogFieldMatchCode = "match_code"
	LogFieldKey       = "key"
	LogFieldName      = "name"
	LogFieldSource    = "source"
	LogFieldWinner    = "winner"
	LogFieldSeat      = "seat"
)
