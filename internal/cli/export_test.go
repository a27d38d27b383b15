package cli

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerryzhao173985/cursorlog/internal/changelog"
	"github.com/jerryzhao173985/cursorlog/internal/errors"
)

func TestExportRecords_CSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := exportRecords(&buf, sampleRecords(), "csv")
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"version", "description", "detailLink"}, rows[0])
	assert.Equal(t, []string{"0.48.x", "New agent mode with resumable sessions", "https://cursor.com/changelog/0-48"}, rows[1])
	assert.Equal(t, []string{"0.48.1", "Fixed a crash when opening very large files", ""}, rows[2])
}

func TestExportRecords_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := exportRecords(&buf, sampleRecords(), "json")
	require.NoError(t, err)

	var got []changelog.VersionRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleRecords(), got)
}

func TestExportRecords_UnknownFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := exportRecords(&buf, sampleRecords(), "xml")

	require.Error(t, err)
	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Argument, cliErr.Category)
	assert.Equal(t, ExitInvalidArguments, ExitCode(err))
}
