package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusmap/internal/geom"
	"campusmap/internal/logger"
	"campusmap/internal/pathway"
	"campusmap/internal/render"
	"campusmap/internal/render/rendertest"
)

func registry(t *testing.T) *pathway.Registry {
	t.Helper()
	r, err := pathway.NewRegistry([]pathway.Pathway{
		{ID: "A", Points: []geom.LonLat{{0, 0}, {1, 1}}},
		{ID: "B", Points: []geom.LonLat{{1, 1}, {2, 2}}},
		{ID: "C", Points: []geom.LonLat{{126.0935, 8.6331}, {126.0936, 8.6332}, {126.0937, 8.6335}}},
	}, nil)
	require.NoError(t, err)
	return r
}

func TestInitializeCreatesOneNormalHandlePerPathway(t *testing.T) {
	reg := registry(t)
	st := render.NewState(reg, logger.Discard())
	rec := rendertest.New()

	n := st.Initialize(rec)

	assert.Equal(t, 3, n)
	assert.True(t, st.Ready())
	require.Len(t, rec.Lines, 3)
	for i, id := range reg.AllIDs() {
		style, ok := st.StyleOf(id)
		assert.True(t, ok)
		assert.Equal(t, render.Normal, style)
		assert.Equal(t, geom.ToRenderOrder(reg.Points(id)), rec.Lines[i].Points)
	}
	assert.Equal(t, []geom.LatLon{{8.6331, 126.0935}, {8.6332, 126.0936}, {8.6335, 126.0937}}, rec.Lines[2].Points)
}

func TestOperationsBeforeReadyAreNoOps(t *testing.T) {
	st := render.NewState(registry(t), logger.Discard())

	assert.False(t, st.Ready())
	assert.ErrorIs(t, st.SetStyle("A", render.Highlighted), render.ErrNotReady)
	assert.ErrorIs(t, st.BringToFront("A"), render.ErrNotReady)
	_, ok := st.StyleOf("A")
	assert.False(t, ok)

	assert.Equal(t, 0, st.Initialize(nil))
	assert.False(t, st.Ready())
}

func TestSetStyleUnknownID(t *testing.T) {
	st := render.NewState(registry(t), logger.Discard())
	rec := rendertest.New()
	st.Initialize(rec)

	err := st.SetStyle("ghost", render.Highlighted)

	assert.ErrorIs(t, err, render.ErrNotFound)
	assert.Contains(t, err.Error(), "ghost")
	assert.Equal(t, 0, rec.Ops["style"])
	assert.ErrorIs(t, st.BringToFront("ghost"), render.ErrNotFound)
}

func TestSetStyleAndBringToFront(t *testing.T) {
	st := render.NewState(registry(t), logger.Discard())
	rec := rendertest.New()
	st.Initialize(rec)

	require.NoError(t, st.SetStyle("A", render.Highlighted))
	require.NoError(t, st.BringToFront("A"))

	style, _ := st.StyleOf("A")
	assert.Equal(t, render.Highlighted, style)
	assert.Equal(t, render.Highlighted, rec.Lines[0].Style)
	assert.Same(t, rec.Lines[0], rec.Front())
	assert.Equal(t, []string{"A"}, st.FrontOrder())
	assert.Equal(t, []string{"A"}, st.Highlighted())

	require.NoError(t, st.BringToFront("B"))
	require.NoError(t, st.BringToFront("A"))
	assert.Equal(t, []string{"B", "A"}, st.FrontOrder())
}

func TestTeardownAndRemountStartsFresh(t *testing.T) {
	st := render.NewState(registry(t), logger.Discard())
	first := rendertest.New()
	st.Initialize(first)
	require.NoError(t, st.SetStyle("B", render.Highlighted))

	st.Teardown()
	assert.False(t, st.Ready())
	assert.Equal(t, 0, st.Len())
	assert.ErrorIs(t, st.SetStyle("B", render.Normal), render.ErrNotReady)

	second := rendertest.New()
	st.Initialize(second)

	assert.Equal(t, 3, st.Len())
	assert.Empty(t, st.Highlighted())
	assert.Empty(t, st.FrontOrder())
	require.NoError(t, st.SetStyle("A", render.Highlighted))
	assert.Equal(t, 1, first.Ops["style"], "old surface must not be touched after teardown")
	assert.Equal(t, 1, second.Ops["style"])
}

func TestReinitializeWithoutTeardownDropsOldHandles(t *testing.T) {
	st := render.NewState(registry(t), logger.Discard())
	first := rendertest.New()
	st.Initialize(first)
	second := rendertest.New()
	st.Initialize(second)

	require.NoError(t, st.SetStyle("C", render.Highlighted))

	assert.Equal(t, render.Normal, first.Lines[2].Style)
	assert.Equal(t, render.Highlighted, second.Lines[2].Style)
}

func TestStyleAttributes(t *testing.T) {
	n := render.Normal.Attributes()
	h := render.Highlighted.Attributes()

	assert.Equal(t, "#60A5FA", n.Color)
	assert.False(t, n.Solid())
	assert.Less(t, n.Opacity, h.Opacity)
	assert.Less(t, n.Weight, h.Weight)
	assert.Equal(t, "#FFD523", h.Color)
	assert.True(t, h.Solid())
	assert.Equal(t, "highlighted", render.Highlighted.String())
}
