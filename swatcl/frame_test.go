package swatcl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsGlobalName(t *testing.T) {
	assert.True(t, isGlobalName("Counter"))
	assert.False(t, isGlobalName("counter"))
	assert.False(t, isGlobalName(""))
}

func TestSetGetVariableLocalScope(t *testing.T) {
	i := NewInterpreter()
	require := assert.New(t)
	require.NoError(i.SetVariable("x", "1"))
	v, err := i.GetVariable("x")
	require.NoError(err)
	require.Equal("1", v)
}

func TestGlobalNameReachesTopFrameAcrossCalls(t *testing.T) {
	i := NewInterpreter()
	assert.NoError(t, i.SetVariable("Counter", "0"))
	i.pushFrame()
	defer i.popFrame()
	assert.NoError(t, i.SetVariable("Counter", "1"))
	v, err := i.GetVariable("Counter")
	assert.NoError(t, err)
	assert.Equal(t, "1", v)
}

func TestLocalNameIsFrameScoped(t *testing.T) {
	i := NewInterpreter()
	assert.NoError(t, i.SetVariable("x", "outer"))
	i.pushFrame()
	_, err := i.GetVariable("x")
	assert.Error(t, err)
	i.popFrame()
	v, err := i.GetVariable("x")
	assert.NoError(t, err)
	assert.Equal(t, "outer", v)
}

func TestGetUndefinedVariable(t *testing.T) {
	i := NewInterpreter()
	_, err := i.GetVariable("nope")
	assert.Error(t, err)
	assert.Equal(t, EVariable, err.Kind)
}
