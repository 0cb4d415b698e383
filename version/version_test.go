package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortAbbreviatesCommit(t *testing.T) {
	i := Info{CommitHash: "0123456789abcdef"}
	assert.Equal(t, "0123456", i.Short())

	i.CommitHash = "dev"
	assert.Equal(t, "dev", i.Short())
}

func TestStringCarriesStampedFields(t *testing.T) {
	i := Info{Version: "v1.2.3", CommitHash: "abc1234", BuildTime: "2026-01-02T03:04:05Z"}
	assert.Equal(t, "lattice v1.2.3 (commit abc1234, built 2026-01-02T03:04:05Z)", i.String())
}
