package google

// DefaultOAuthScopes are the Google OAuth scopes required for full MCP
// functionality. These scopes are used consistently across the application
// for OAuth configurations.
//
// The scopes provide access to:
//   - Google Slides: full presentation access (create, read, batch update)
//   - Google Drive: read-only, for presentation metadata lookups
var DefaultOAuthScopes = []string{
	// Google Slides scope
	"https://www.googleapis.com/auth/presentations",

	// Google Drive scope
	"https://www.googleapis.com/auth/drive.readonly",
}
