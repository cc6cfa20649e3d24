package domain

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vipcxj/divedns/internal/bounds"
)

func TestDecodeConfig_YAML(t *testing.T) {
	in := `
expect_root: dive
expect_levels: "[2..4]"
expect_length:
  start: {Include: 1}
  end: {Exclude: 64}
`
	c, err := DecodeConfig(strings.NewReader(in))
	require.NoError(t, err)

	v := c.Validator()
	root, ok := v.Root()
	require.True(t, ok)
	assert.Equal(t, "dive", root)
	levels, ok := v.Levels()
	require.True(t, ok)
	assert.Equal(t, bounds.NewInclusiveRange[uint](2, 4), levels)
	length, ok := v.Length()
	require.True(t, ok)
	assert.Equal(t, bounds.NewHalfOpenRange[uint](1, 64), length)

	_, err = v.Validate("hello.dive")
	assert.NoError(t, err)
	_, err = v.Validate("dive")
	assert.ErrorAs(t, err, new(*LevelsOutOfRangeError))
}

func TestDecodeConfig_JSON(t *testing.T) {
	in := `{"expect_levels": {"start": {"Exclude": 0}, "end": {"Include": 2}}}`
	c, err := DecodeConfig(strings.NewReader(in))
	require.NoError(t, err)
	assert.Nil(t, c.ExpectRoot)
	assert.Nil(t, c.ExpectLength)
	require.NotNil(t, c.ExpectLevels)
	assert.Equal(t, "(0..2]", c.ExpectLevels.String())
}

func TestDecodeConfig_Empty(t *testing.T) {
	c, err := DecodeConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Config{}, c)
	assert.Equal(t, DefaultValidator(), c.Validator())
}

func TestDecodeConfig_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "expect_tld: dive\n",
		"bad notation":  "expect_levels: \"1-3\"\n",
		"bad bound":     "expect_length:\n  start: {Open: 1}\n  end: {Include: 3}\n",
		"not a mapping": "- dive\n",
	}
	for name, in := range cases {
		_, err := DecodeConfig(strings.NewReader(in))
		assert.Error(t, err, name)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "validator.yaml")
	require.NoError(t, os.WriteFile(path, []byte("expect_root: com\n"), 0o644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, c.ExpectRoot)
	assert.Equal(t, "com", *c.ExpectRoot)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidator_Serialization(t *testing.T) {
	v := NewValidator(WithRoot("dive"), WithLength(bounds.NewInclusiveRange[uint](1, 253)))

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"expect_root":"dive","expect_length":{"start":{"Include":1},"end":{"Include":253}}}`, string(data))

	var fromJSON Validator
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Equal(t, v.Config(), fromJSON.Config())

	out, err := yaml.Marshal(v)
	require.NoError(t, err)
	var fromYAML Validator
	require.NoError(t, yaml.Unmarshal(out, &fromYAML))
	assert.Equal(t, v.Config(), fromYAML.Config())
}

func TestConfig_ValidatorIsDetached(t *testing.T) {
	root := "dive"
	c := Config{ExpectRoot: &root}
	v := c.Validator()
	root = "com"

	got, _ := v.Root()
	assert.Equal(t, "dive", got)
}
