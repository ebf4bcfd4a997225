package parambuilder

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParams(t *testing.T) {
	params := NewParams(P("a", 1), NullKey("x"), P("b", "two"))
	require.Equal(t, 3, params.Len())

	v, ok := params.Get("b")
	assert.True(t, ok)
	assert.Equal(t, String("two"), v)
	_, ok = params.Get("c")
	assert.False(t, ok)

	params.Set("a", "one").Set("c", 3)
	entries := params.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, "a", entries[0].Key.Default(""))
	assert.Equal(t, String("one"), entries[0].Value)
	_, ok = entries[1].keyText()
	assert.False(t, ok)
	assert.Equal(t, "c", entries[3].Key.Default(""))

	assert.True(t, params.Delete("a"))
	assert.False(t, params.Delete("a"))
	assert.Equal(t, 3, params.Len())
	q, err := Query(params)
	require.NoError(t, err)
	assert.Equal(t, "?b=two&c=3", q)
}

func TestParams_AddNullKeysAlwaysAppends(t *testing.T) {
	params := NewParams()
	params.Add(NullKey(1)).Add(NullKey(2)).Add(P("a", 1)).Add(P("a", 2))
	assert.Equal(t, 3, params.Len())
	v, _ := params.Get("a")
	assert.Equal(t, Int(2), v)
}

func TestParams_EntriesIsCopy(t *testing.T) {
	params := NewParams(P("a", 1))
	entries := params.Entries()
	entries[0] = P("b", 2)
	_, ok := params.Get("a")
	assert.True(t, ok)
}

func TestParams_Nil(t *testing.T) {
	var params *Params
	assert.Equal(t, 0, params.Len())
	assert.Nil(t, params.Entries())
	_, ok := params.Get("a")
	assert.False(t, ok)
	assert.False(t, params.Delete("a"))
}
