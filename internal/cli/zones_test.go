package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunZones_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := runZones(context.Background(), &buf, testFlags(writeTestConfig(t, brokenZoneConfigYAML)), fixedClock())
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "TITLE")
	assert.Contains(t, output, "STATUS")
	assert.Contains(t, output, "local")
	assert.Contains(t, output, "+09:00")
	assert.Contains(t, output, "ok")
	assert.Contains(t, output, "Mars/Olympus_Mons")
	assert.Contains(t, output, "invalid")
}

func TestRunZones_JSON(t *testing.T) {
	t.Parallel()

	flags := testFlags(writeTestConfig(t, testConfigYAML))
	flags.Output = OutputJSON

	var buf bytes.Buffer
	require.NoError(t, runZones(context.Background(), &buf, flags, fixedClock()))

	var result zonesResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))

	assert.Equal(t, "Asia/Tokyo", result.LocalZone.TimeZone)
	assert.True(t, result.LocalZone.Valid)
	require.Len(t, result.Zones, 5)

	offsets := map[string]string{
		"Asia/Tokyo":          "+09:00",
		"Asia/Singapore":      "+08:00",
		"Pacific/Honolulu":    "-10:00",
		"America/Los_Angeles": "-08:00",
		"Pacific/Auckland":    "+13:00",
	}
	for _, st := range result.Zones {
		assert.True(t, st.Valid, st.TimeZone)
		assert.Empty(t, st.Error, st.TimeZone)
		assert.Equal(t, offsets[st.TimeZone], st.UTCOffset, st.TimeZone)
	}
}

func TestRunZones_ReportsInvalid(t *testing.T) {
	t.Parallel()

	flags := testFlags(writeTestConfig(t, brokenZoneConfigYAML))
	flags.Output = OutputJSON

	var buf bytes.Buffer
	require.NoError(t, runZones(context.Background(), &buf, flags, fixedClock()))

	var result zonesResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Len(t, result.Zones, 2)

	assert.True(t, result.Zones[0].Valid)
	assert.False(t, result.Zones[1].Valid)
	assert.Empty(t, result.Zones[1].UTCOffset)
	assert.Contains(t, result.Zones[1].Error, "Mars/Olympus_Mons")
}

func TestStatusText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ok", statusText(zoneStatus{Valid: true}))
	assert.Equal(t, "invalid", statusText(zoneStatus{}))
}
