package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition_MarshalGeoOmitsPercentFields(t *testing.T) {
	p := NewGeoPosition(41.31, 69.25)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	assert.JSONEq(t, `{"kind":"geo","lat":41.31,"lng":69.25}`, string(data))
}

func TestPosition_MarshalPercentOmitsGeoFields(t *testing.T) {
	p := NewPercentPosition(15, 85)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	assert.JSONEq(t, `{"kind":"percent","xPercent":15,"yPercent":85}`, string(data))
}

func TestPosition_MarshalZeroCoordinatesSurvive(t *testing.T) {
	// Нулевой остров: lat=0/lng=0 - валидная координата и не должна пропадать
	p := NewGeoPosition(0, 0)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	assert.JSONEq(t, `{"kind":"geo","lat":0,"lng":0}`, string(data))
}

func TestPosition_UnmarshalInfersKindFromFields(t *testing.T) {
	var geo Position
	require.NoError(t, json.Unmarshal([]byte(`{"lat":41.3,"lng":69.2}`), &geo))
	assert.Equal(t, PositionGeo, geo.Kind)
	assert.InDelta(t, 41.3, geo.Lat, 0.001)

	var pct Position
	require.NoError(t, json.Unmarshal([]byte(`{"xPercent":10,"yPercent":20}`), &pct))
	assert.Equal(t, PositionPercent, pct.Kind)
	assert.InDelta(t, 20.0, pct.YPercent, 0.001)
}

func TestPosition_UnmarshalRejectsMixedFields(t *testing.T) {
	var p Position
	err := json.Unmarshal([]byte(`{"lat":41.3,"lng":69.2,"xPercent":10,"yPercent":20}`), &p)
	require.Error(t, err)
}

func TestPosition_UnmarshalRejectsEmpty(t *testing.T) {
	var p Position
	err := json.Unmarshal([]byte(`{}`), &p)
	require.Error(t, err)
}

func TestPosition_UnmarshalRejectsPartialGeo(t *testing.T) {
	var p Position
	err := json.Unmarshal([]byte(`{"lat":41.3}`), &p)
	require.Error(t, err)
}

func TestPosition_RoundTrip(t *testing.T) {
	original := NewPercentPosition(33.5, 66.5)

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var restored Position
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, original, restored)
}

func TestPosition_Validate(t *testing.T) {
	assert.NoError(t, NewGeoPosition(41.3, 69.2).Validate())
	assert.NoError(t, NewPercentPosition(0, 100).Validate())

	assert.Error(t, NewGeoPosition(91, 0).Validate())
	assert.Error(t, NewGeoPosition(0, -181).Validate())
	assert.Error(t, NewPercentPosition(101, 50).Validate())
	assert.Error(t, NewPercentPosition(50, -1).Validate())
	assert.Error(t, Position{Kind: "bogus"}.Validate())
}
