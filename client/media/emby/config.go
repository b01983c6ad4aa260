// config.go
package emby

// Configuration holds Emby connection settings
type Configuration struct {
	BaseURL  string
	APIKey   string
	Username string
	UserID   string
}
