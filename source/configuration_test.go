package source

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfiguration() *Configuration {
	return NewConfiguration(map[string]string{
		"db.host":      "localhost",
		"db.port":      "5432",
		"db.replicas":  "alpha, beta,gamma",
		"debug":        "true",
		"threshold":    "0.5",
		"grace.period": "30s",
		"empty":        "",
	}, map[string]string{
		"db.host": "override.yaml",
	})
}

func TestConfiguration_Get(t *testing.T) {
	cfg := newTestConfiguration()

	v, err := cfg.Get("db.host")

	require.NoError(t, err)
	assert.Equal(t, "localhost", v)
}

func TestConfiguration_Get_MissingKey(t *testing.T) {
	_, err := newTestConfiguration().Get("no.such.key")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.Contains(t, err.Error(), "no.such.key")
}

func TestConfiguration_TypedAccessors(t *testing.T) {
	cfg := newTestConfiguration()

	port, err := cfg.GetInt("db.port")
	require.NoError(t, err)
	assert.Equal(t, 5432, port)

	debug, err := cfg.GetBool("debug")
	require.NoError(t, err)
	assert.True(t, debug)

	threshold, err := cfg.GetFloat("threshold")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, threshold, 1e-9)

	grace, err := cfg.GetDuration("grace.period")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, grace)

	replicas, err := cfg.GetStrings("db.replicas")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, replicas)
}

func TestConfiguration_TypedAccessors_WrongType(t *testing.T) {
	cfg := newTestConfiguration()

	_, err := cfg.GetInt("db.host")
	assert.ErrorIs(t, err, ErrValueType)

	_, err = cfg.GetBool("db.host")
	assert.ErrorIs(t, err, ErrValueType)

	_, err = cfg.GetFloat("db.host")
	assert.ErrorIs(t, err, ErrValueType)

	_, err = cfg.GetDuration("db.port")
	assert.ErrorIs(t, err, ErrValueType)
}

func TestConfiguration_TypedAccessors_MissingKey(t *testing.T) {
	cfg := newTestConfiguration()

	_, err := cfg.GetInt("no.such.key")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	_, err = cfg.GetStrings("no.such.key")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestConfiguration_GetStrings_EmptyValue(t *testing.T) {
	list, err := newTestConfiguration().GetStrings("empty")

	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestConfiguration_Group(t *testing.T) {
	db := newTestConfiguration().Group("db")

	assert.Equal(t, 3, db.Len())

	host, err := db.Get("host")
	require.NoError(t, err)
	assert.Equal(t, "localhost", host)

	origin, ok := db.Provenance("host")
	assert.True(t, ok)
	assert.Equal(t, "override.yaml", origin)

	assert.True(t, newTestConfiguration().Group("nothing.here").IsEmpty())
}

func TestConfiguration_ContainmentAndEmptiness(t *testing.T) {
	cfg := newTestConfiguration()

	assert.True(t, cfg.Has("debug"))
	assert.False(t, cfg.Has("no.such.key"))
	assert.False(t, cfg.IsEmpty())
	assert.True(t, Empty().IsEmpty())
	assert.Zero(t, Empty().Len())
}

func TestConfiguration_Keys_Sorted(t *testing.T) {
	keys := newTestConfiguration().Keys()

	assert.Equal(t, []string{
		"db.host", "db.port", "db.replicas", "debug", "empty", "grace.period", "threshold",
	}, keys)
}

func TestConfiguration_IsolatedFromCallerMaps(t *testing.T) {
	values := map[string]string{"a": "1"}
	cfg := NewConfiguration(values, nil)

	values["a"] = "changed"
	values["b"] = "2"

	v, err := cfg.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
	assert.False(t, cfg.Has("b"))

	// All() hands out a copy, not the internal map.
	all := cfg.All()
	all["a"] = "mutated"
	v, err = cfg.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
}
