package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_FlattenAndNest(t *testing.T) {
	p := &Parser{}

	values, err := p.Parse(`{"init":{"defaultBranch":"main"},"transfer":{"workers":8},"color":{"ui":"never"}}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"init.defaultbranch": "main",
		"transfer.workers":   "8",
		"color.ui":           "never",
	}, values)

	out, err := p.Serialize(values)
	require.NoError(t, err)

	again, err := p.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, values, again)
}

func TestParser_Empty(t *testing.T) {
	values, err := (&Parser{}).Parse("   ")
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestParser_Rejects(t *testing.T) {
	p := &Parser{}
	for _, in := range []string{`[1,2]`, `{"a":`, `{"a":{"b":["x"]}}`} {
		_, err := p.Parse(in)
		assert.Error(t, err, in)
	}

	_, err := p.Serialize(map[string]string{"a": "1", "a.b": "2"})
	assert.Error(t, err)
}

func TestValidator(t *testing.T) {
	v := &Validator{}
	tests := []struct {
		key, value string
		ok         bool
	}{
		{KeyDefaultBranch, "main", true},
		{KeyDefaultBranch, "bad name", false},
		{KeyDefaultBranch, "a..b", false},
		{KeyTransferWorkers, "16", true},
		{KeyTransferWorkers, "0", false},
		{KeyColorUI, "always", true},
		{KeyColorUI, "sometimes", false},
		{KeyLogFormat, "table", true},
		{KeyLogFormat, "xml", false},
		{"custom.key", "anything", true},
		{"nosection", "x", false},
		{"a..b", "x", false},
	}
	for _, tt := range tests {
		err := v.ValidateKeyValue(tt.key, tt.value)
		assert.Equal(t, tt.ok, err == nil, "%s=%s: %v", tt.key, tt.value, err)
	}
}
