package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON_AcceptsKnownLayouts(t *testing.T) {
	want := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{
		`"2025-02-10"`,
		`"10-02-2025"`,
		`"2025/02/10"`,
		`"February 10, 2025"`,
		`"Feb 10, 2025"`,
		`"2025-02-10T15:04:05Z"`,
	} {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(in), &d), in)
		assert.True(t, want.Equal(d.Time), "%s parsed as %s", in, d.Time)
	}
}

func TestDate_UnmarshalJSON_EmptyAndNull(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())

	d = NewDate(time.Now())
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
}

func TestDate_UnmarshalJSON_RejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20250210`), &d))
}

func TestDate_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(time.Date(2025, 2, 10, 23, 59, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, `"2025-02-10"`, string(b))

	b, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}
