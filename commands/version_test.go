package commands

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	stdout, err := execute(NewVersionCmd(), "")

	require.NoError(t, err)
	assert.Equal(t, VERSION+"\n", stdout)
}

func TestTimestamp(t *testing.T) {
	stdout, err := execute(NewTimestampCmd(), "", "--separator", ".")

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}\.\d{2}\.\d{2}\.\d{2}h\d{2}min\d{2}s\n$`), stdout)
}

func TestRoot(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"get", "xlsx", "log-file", "timestamp", "authorise", "version"} {
		cmd, _, err := root.Find([]string{name})

		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}

	stdout, err := execute(root, "", "--log-format", "json", "version")
	require.NoError(t, err)
	assert.Equal(t, VERSION+"\n", stdout)
}
