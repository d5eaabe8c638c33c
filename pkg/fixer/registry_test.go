package fixer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	reg := fakeRegistry()

	assert.Equal(t, []string{"b_to_c", "dangerous", "rename_old"}, reg.Names())

	name, ok := reg.Resolve("old_name")
	require.True(t, ok)
	assert.Equal(t, "rename_old", name)

	_, ok = reg.Resolve("missing")
	assert.False(t, ok)

	reg.RegisterAlias("dangling", "missing")
	_, ok = reg.Resolve("dangling")
	assert.False(t, ok)

	reg.RegisterAlias("older_name", "rename_old")
	assert.Equal(t, []string{"old_name", "older_name"}, reg.AliasesOf("rename_old"))
	assert.Empty(t, reg.AliasesOf("b_to_c"))
}

func TestRegistry_NewReturnsFreshInstances(t *testing.T) {
	t.Parallel()

	reg := fakeRegistry()

	a, ok := reg.New("rename_old")
	require.True(t, ok)
	b, ok := reg.New("old_name")
	require.True(t, ok)
	assert.NotSame(t, a, b)

	require.NoError(t, a.(*optionFake).Configure(map[string]any{"to": "$a"}))
	assert.Equal(t, "$new", b.(*optionFake).Values().String("to"))

	_, ok = reg.New("missing")
	assert.False(t, ok)
}

func TestRegistry_FixersSortedByName(t *testing.T) {
	t.Parallel()

	var names []string
	for _, f := range fakeRegistry().Fixers() {
		names = append(names, f.Name())
	}
	assert.Equal(t, []string{"b_to_c", "dangerous", "rename_old"}, names)
}
