package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnixTimeUnmarshal(t *testing.T) {
	var ut UnixTime

	// Integer epoch.
	assert.NoError(t, json.Unmarshal([]byte(`1543726683`), &ut))
	assert.Equal(t, int64(1543726683), ut.Time().Unix())

	// Fractional epoch.
	assert.NoError(t, json.Unmarshal([]byte(`1543726683.25`), &ut))
	assert.Equal(t, int64(1543726683), ut.Time().Unix())
	assert.Equal(t, 250000000, ut.Time().Nanosecond())

	// Quoted epoch.
	assert.NoError(t, json.Unmarshal([]byte(`"1543726683"`), &ut))
	assert.Equal(t, int64(1543726683), ut.Time().Unix())
}

func TestUnixTimeUnmarshalNull(t *testing.T) {
	ut := UnixTime{}
	assert.NoError(t, json.Unmarshal([]byte(`null`), &ut))
	assert.True(t, ut.Time().IsZero())
}

func TestUnixTimeMarshal(t *testing.T) {
	var ut UnixTime
	assert.NoError(t, json.Unmarshal([]byte(`1543726683`), &ut))

	data, err := json.Marshal(ut)
	assert.NoError(t, err)
	assert.Equal(t, `1543726683`, string(data))
}

func TestBanUpdateDecode(t *testing.T) {
	raw := []byte(`{"id": 1, "reason": "Spam bot", "proof": "https://imgur.com/a/x", "moderator_id": 10, "active": true, "timestamp": 1543726683}`)

	var update BanUpdate
	assert.NoError(t, json.Unmarshal(raw, &update))
	assert.Equal(t, int64(1), update.User)
	assert.Equal(t, "Spam bot", update.Reason)
	assert.Equal(t, int64(10), update.Moderator)
	assert.True(t, update.Active)
	assert.Equal(t, int64(1543726683), update.Timestamp.Time().Unix())
}
