package build

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, "devel", Version())
	assert.Equal(t, "devel", Revision())
	assert.Equal(t, DefaultAPIBaseURL, APIBaseURL())
	assert.True(t, Time().IsZero())
}

func TestTime_ParsesLayouts(t *testing.T) {
	defer func(v string) { buildTime = v }(buildTime)

	buildTime = "2024-03-01 10:20:30 +0000"
	assert.Equal(t, time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC), Time().UTC())

	buildTime = "not a time"
	assert.True(t, Time().IsZero())
}
