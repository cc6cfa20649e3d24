package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultValidation(t *testing.T) {
	d, err := New("hello.dive")
	require.NoError(t, err)

	assert.Equal(t, "hello.dive", d.String())
	root, ok := d.Root()
	assert.True(t, ok)
	assert.Equal(t, "dive", root)
	assert.Equal(t, 1, d.Levels())
	assert.Equal(t, uint(2), d.LabelCount())
	assert.Equal(t, []string{"hello", "dive"}, d.Labels())
}

func TestDomain_Punycode(t *testing.T) {
	d, err := New("xn--mnchen-3ya.de")
	require.NoError(t, err)
	assert.Equal(t, "münchen.de", d.String())

	ascii, err := d.ToPunycode()
	require.NoError(t, err)
	assert.Equal(t, "xn--mnchen-3ya.de", ascii)
}

func TestDomain_Normalizes(t *testing.T) {
	d, err := New("WWW.München.DE")
	require.NoError(t, err)
	assert.Equal(t, "www.münchen.de", d.String())
}

func TestDomain_Idempotent(t *testing.T) {
	inputs := []string{"hello.dive", "xn--mnchen-3ya.de", "A.B.C.Example", "under_score.dive"}
	for _, in := range inputs {
		first, err := New(in)
		require.NoError(t, err, in)
		second, err := New(first.String())
		require.NoError(t, err, in)
		assert.Equal(t, first, second, in)
	}
}

func TestDomain_ZeroValue(t *testing.T) {
	var d Domain
	_, ok := d.Root()
	assert.False(t, ok)
	assert.Equal(t, 0, d.Levels())
}

func TestDomain_JSON(t *testing.T) {
	d, err := New("xn--mnchen-3ya.de")
	require.NoError(t, err)

	data, err := json.Marshal(struct {
		Domain Domain `json:"domain"`
	}{d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"domain":"münchen.de"}`, string(data))

	var back Domain
	require.NoError(t, json.Unmarshal([]byte(`"MÜNCHEN.de"`), &back))
	assert.Equal(t, d, back)

	err = json.Unmarshal([]byte(`"bad host.de"`), &back)
	assert.ErrorIs(t, err, ErrNotValid)
}
