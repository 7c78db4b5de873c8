package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelfUpdateRefusesDevelopmentBuilds(t *testing.T) {
	for _, v := range []string{"", "dev"} {
		t.Run("version "+v, func(t *testing.T) {
			withVersion(t, v)

			out, err := execute(t, "self-update")
			assert.ErrorContains(t, err, "cannot self-update a development version")
			assert.NotContains(t, out, "Checking for updates")
			assert.Equal(t, ExitCodeError, getExitCode(err))
		})
	}
}

func TestSelfUpdateRejectsArguments(t *testing.T) {
	withVersion(t, "1.4.0")

	out, err := execute(t, "self-update", "v2.0.0")
	assert.Error(t, err)
	assert.NotContains(t, out, "Current version")
}

func TestSelfUpdateReleaseSource(t *testing.T) {
	assert.Equal(t, "giantswarm/dbterra", githubRepoSlug)
}
