package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayloadValue(t *testing.T) {
	var nilPayload Payload
	v, err := nilPayload.Value()
	assert.NoError(t, err)
	assert.Equal(t, []byte("{}"), v)

	v, err = Payload{"budget": 150.0, "verified": true}.Value()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"budget":150,"verified":true}`, string(v.([]byte)))
}

func TestPayloadScan(t *testing.T) {
	var p Payload
	assert.NoError(t, p.Scan([]byte(`{"source":"webhook","attempt":2}`)))
	assert.Equal(t, "webhook", p["source"])
	assert.Equal(t, 2.0, p["attempt"])

	assert.NoError(t, p.Scan(`{"nested":{"a":1}}`))
	assert.Contains(t, p, "nested")

	assert.NoError(t, p.Scan(nil))
	assert.NotNil(t, p)
	assert.Empty(t, p)

	assert.Error(t, p.Scan(42))
}

func TestStringListRoundTrip(t *testing.T) {
	var nilList StringList
	v, err := nilList.Value()
	assert.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)

	v, err = StringList{"plumbing", "repair"}.Value()
	assert.NoError(t, err)

	var l StringList
	assert.NoError(t, l.Scan(v))
	assert.Equal(t, StringList{"plumbing", "repair"}, l)

	assert.NoError(t, l.Scan(nil))
	assert.Empty(t, l)
}
