package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calculator-api/domain"
)

func TestToBlockYAML_KeepsJSONNames(t *testing.T) {
	out, err := toBlockYAML(domain.WeightRange{Min: 60.5, Max: 70})
	require.NoError(t, err)
	assert.Equal(t, "min: 60.5\nmax: 70\n", string(out))
}

func TestRender_Formats(t *testing.T) {
	result := domain.CipherResult{Method: domain.CipherReverse, Direction: domain.Encrypt, Output: "cba"}
	t.Cleanup(func() { jsonOutput, yamlOutput = false, false })

	var buf bytes.Buffer
	jsonOutput = true
	require.NoError(t, render(&buf, "Text cipher", result))
	assert.JSONEq(t, `{"method":"reverse","direction":"encrypt","output":"cba"}`, buf.String())

	buf.Reset()
	jsonOutput, yamlOutput = false, true
	require.NoError(t, render(&buf, "Text cipher", result))
	assert.Equal(t, "method: reverse\ndirection: encrypt\noutput: cba\n", buf.String())

	buf.Reset()
	yamlOutput = false
	require.NoError(t, render(&buf, "Text cipher", result))
	assert.Contains(t, buf.String(), "Text cipher")
	assert.Contains(t, buf.String(), "output:")
	assert.Contains(t, buf.String(), "cba")
}

func TestParseAmount(t *testing.T) {
	amount, err := parseAmount("0.25")
	require.NoError(t, err)
	assert.Equal(t, 0.25, amount)

	_, err = parseAmount("lots")
	assert.Error(t, err)
}
