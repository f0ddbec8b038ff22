package constants

// Session
const (
	ContextKeyUserID = "user_id"
	SessionName      = "zapboard_session"
	SessionMaxAge    = 86400 * 7 // 7 days
)

// Auth
const (
	MinPasswordLength = 8
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Notification templates
const (
	MaxTemplateLength = 2000
)

// Activity logs
const (
	DefaultActivityLogLimit = 50
	MaxActivityLogLimit     = 200
)

// Contacts
const (
	MaxContactNameLength = 100
	MaxPhoneNumberLength = 30
	MessageSummaryLength = 100
)
