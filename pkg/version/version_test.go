package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersionString(t *testing.T) {
	oldVersion, oldCommit := Version, GitCommit
	defer func() { Version, GitCommit = oldVersion, oldCommit }()

	Version, GitCommit = "1.4.0", "0123456789abcdef"
	assert.Equal(t, "1.4.0 (0123456)", GetVersionString())

	GitCommit = "abc"
	assert.Equal(t, "1.4.0 (abc)", GetVersionString())
}

func TestGetBuildInfo(t *testing.T) {
	info := Get()
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Contains(t, GetBuildInfo(), "Platform: "+runtime.GOOS)
}
