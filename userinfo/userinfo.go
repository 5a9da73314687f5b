// Package userinfo reports the identity the server process runs as,
// for display in the review UI.
package userinfo

import (
	"os"
	"os/user"

	"github.com/plmtools/plm-translator/models"
)

// Current returns the process user and host. Lookup failures degrade to
// a generic identity; this never fails.
func Current() models.UserInfo {
	info := models.UserInfo{
		User:     "Current User",
		Username: "unknown",
		Computer: "unknown",
	}

	u, err := user.Current()
	if err != nil {
		return info
	}

	username := u.Username
	display := u.Name
	if display == "" {
		display = username
	}

	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}

	info.Username = username
	info.Computer = host
	info.User = display
	// Hostname suffix only outside Azure App Service
	if os.Getenv("WEBSITE_SITE_NAME") == "" {
		info.User = display + " (" + host + ")"
	}

	return info
}
