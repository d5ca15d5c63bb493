package build

import "time"

// set with -ldflags "-X github.com/kylycht/hoststats/build.apiBaseURL=..."
var (
	version     string
	gitRevision string
	buildTime   string
	apiBaseURL  string

	timeFormats = []string{
		"2006-01-02 15:04:05 -0700",
		time.UnixDate,
		time.RFC3339,
		time.RFC1123,
	}
)

// DefaultAPIBaseURL is the dashboard daemon's default listen address
const DefaultAPIBaseURL = "http://localhost:8884"

// APIBaseURL returns the stats API base URL the binary was built with
func APIBaseURL() string {
	if len(apiBaseURL) == 0 {
		return DefaultAPIBaseURL
	}
	return apiBaseURL
}

// Version returns the current version
func Version() string {
	if len(version) == 0 {
		return "devel"
	}
	return version
}

// Revision returns the current revision
func Revision() string {
	if len(gitRevision) == 0 {
		return "devel"
	}
	return gitRevision
}

// Time returns the build time, or the zero time when unknown
func Time() time.Time {
	for _, layout := range timeFormats {
		if t, err := time.Parse(layout, buildTime); err == nil {
			return t
		}
	}

	return time.Time{}
}
