package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementTable_Shape(t *testing.T) {
	for _, e := range Elements() {
		require.True(t, e.Valid())
		assert.Len(t, e.Strengths(), 2, "%s strengths", e)
		assert.Len(t, e.Weaknesses(), 2, "%s weaknesses", e)
		assert.Greater(t, e.Accuracy(), 0.0)
		assert.LessOrEqual(t, e.Accuracy(), 1.0)
		assert.NotEmpty(t, e.DisplayName())

		for _, s := range e.Strengths() {
			assert.True(t, s.Valid())
			assert.NotEqual(t, e, s, "%s cannot be strong against itself", e)
		}
		for _, w := range e.Weaknesses() {
			assert.True(t, w.Valid())
			assert.NotEqual(t, e, w, "%s cannot be weak against itself", e)
		}
	}
}

func TestElementRelations(t *testing.T) {
	assert.True(t, Fire.StrongAgainst(Ice))
	assert.True(t, Fire.StrongAgainst(Death))
	assert.True(t, Fire.WeakAgainst(Storm))
	assert.True(t, Fire.WeakAgainst(Myth))
	assert.False(t, Fire.StrongAgainst(Balance))
	assert.False(t, Fire.WeakAgainst(Balance))

	assert.Equal(t, 0.7, Storm.Accuracy())
	assert.Equal(t, 0.9, Life.Accuracy())
}

func TestParseElement(t *testing.T) {
	e, err := ParseElement("fire")
	require.NoError(t, err)
	assert.Equal(t, Fire, e)

	e, err = ParseElement("  Balance ")
	require.NoError(t, err)
	assert.Equal(t, Balance, e)

	_, err = ParseElement("VOID")
	assert.Error(t, err)
}
