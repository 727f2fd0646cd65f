package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("ESG_TEST_KEY", "value")

	assert.Equal(t, "value", GetEnv("ESG_TEST_KEY", "default"))
	assert.Equal(t, "default", GetEnv("ESG_TEST_MISSING", "default"))
}

func TestGetInt(t *testing.T) {
	t.Setenv("ESG_TEST_INT", "42")
	t.Setenv("ESG_TEST_BAD_INT", "forty two")

	v, err := GetInt("ESG_TEST_INT", 1)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = GetInt("ESG_TEST_INT_MISSING", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = GetInt("ESG_TEST_BAD_INT", 1)
	assert.Error(t, err)
}

func TestGetDuration(t *testing.T) {
	t.Setenv("ESG_TEST_DURATION", "250ms")
	t.Setenv("ESG_TEST_BAD_DURATION", "soon")

	v, err := GetDuration("ESG_TEST_DURATION", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, v)

	v, err = GetDuration("ESG_TEST_DURATION_MISSING", time.Second)
	require.NoError(t, err)
	assert.Equal(t, time.Second, v)

	_, err = GetDuration("ESG_TEST_BAD_DURATION", time.Second)
	assert.Error(t, err)
}

func TestGetBool(t *testing.T) {
	t.Setenv("ESG_TEST_BOOL", "true")

	v, err := GetBool("ESG_TEST_BOOL", false)
	require.NoError(t, err)
	assert.True(t, v)

	v, err = GetBool("ESG_TEST_BOOL_MISSING", false)
	require.NoError(t, err)
	assert.False(t, v)
}
