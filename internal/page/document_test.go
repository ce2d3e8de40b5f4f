package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_ClassList(t *testing.T) {
	n := NewNode("copied", "hidden", "px-2")

	n.AddClass("hidden")
	assert.Equal(t, []string{"hidden", "px-2"}, n.Classes())

	n.AddClass("absolute")
	n.RemoveClass("hidden")
	n.RemoveClass("not-there")

	assert.Equal(t, []string{"px-2", "absolute"}, n.Classes())
	assert.True(t, n.HasClass("absolute"))
	assert.False(t, n.HasClass("hidden"))
}

func TestNode_TextStyleSize(t *testing.T) {
	n := NewNode("x").WithText("hello").WithSize(40, 20)

	assert.Equal(t, "x", n.ID())
	assert.Equal(t, "hello", n.Text())
	assert.InDelta(t, 40, n.OffsetWidth(), 0)
	assert.InDelta(t, 20, n.OffsetHeight(), 0)

	assert.Empty(t, n.Style("left"))
	n.SetStyle("left", "80px")
	assert.Equal(t, "80px", n.Style("left"))
}

func TestMemoryDocument_ElementByID(t *testing.T) {
	doc := NewMemoryDocument(NewNode("a"))

	el, ok := doc.ElementByID("a")
	require.True(t, ok)
	assert.Equal(t, "a", el.ID())

	_, ok = doc.ElementByID("b")
	assert.False(t, ok)

	doc.Append(NewNode("b"))
	_, ok = doc.ElementByID("b")
	assert.True(t, ok)
}

func TestPx(t *testing.T) {
	assert.Equal(t, "80px", px(80))
	assert.Equal(t, "170px", px(170))
	assert.Equal(t, "12.5px", px(12.5))
	assert.Equal(t, "-3px", px(-3))
}
