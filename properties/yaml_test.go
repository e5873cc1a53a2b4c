package properties

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAML_FlattensNestedMappings(t *testing.T) {
	content := `
server:
  http:
    port: 8080
    tls: false
  name: edge
threshold: 0.25
`

	got, err := YAML{}.Properties(strings.NewReader(content))

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"server.http.port": "8080",
		"server.http.tls":  "false",
		"server.name":      "edge",
		"threshold":        "0.25",
	}, got)
}

func TestYAML_SequencesAreCommaJoined(t *testing.T) {
	content := `
hosts:
  - alpha
  - beta
  - gamma
ports: [80, 443]
`

	got, err := YAML{}.Properties(strings.NewReader(content))

	require.NoError(t, err)
	assert.Equal(t, "alpha,beta,gamma", got["hosts"])
	assert.Equal(t, "80,443", got["ports"])
}

func TestYAML_MappingSequencesGetIndexSegments(t *testing.T) {
	content := `
servers:
  - host: a
    port: 1
  - host: b
`

	got, err := YAML{}.Properties(strings.NewReader(content))

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"servers.0.host": "a",
		"servers.0.port": "1",
		"servers.1.host": "b",
	}, got)
}

func TestYAML_NullValueIsEmptyString(t *testing.T) {
	got, err := YAML{}.Properties(strings.NewReader("feature:\n"))

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"feature": ""}, got)
}

func TestYAML_EmptyDocument(t *testing.T) {
	got, err := YAML{}.Properties(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestYAML_Malformed(t *testing.T) {
	_, err := YAML{}.Properties(strings.NewReader("key: [unclosed"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestYAML_NonMappingRoot(t *testing.T) {
	_, err := YAML{}.Properties(strings.NewReader("- just\n- a\n- list\n"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
}
