package weights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayer(t *testing.T) {
	l, err := NewLayer(2, 3, make([]float32, 6), []float32{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 2, l.InputSize())
	assert.Equal(t, 3, l.OutputSize())
	assert.Equal(t, "2→3", l.String())
}

func TestNewLayer_ShapeErrors(t *testing.T) {
	_, err := NewLayer(2, 3, make([]float32, 5), make([]float32, 3))
	var se *ShapeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "kernel", se.Param)
	assert.Equal(t, 6, se.Want)

	_, err = NewLayer(2, 3, make([]float32, 6), make([]float32, 2))
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "bias", se.Param)

	_, err = NewLayer(0, 3, nil, make([]float32, 3))
	assert.Error(t, err)
}

func TestCollection(t *testing.T) {
	a, err := NewLayer(1, 1, []float32{1}, []float32{0})
	require.NoError(t, err)
	b, err := NewLayer(1, 2, []float32{1, 1}, []float32{0, 0})
	require.NoError(t, err)

	c := Collection{"dense_1": b, "dense": a}
	assert.Equal(t, []string{"dense", "dense_1"}, c.Names())
	assert.Equal(t, []string{"dense 1→1", "dense_1 1→2"}, c.Describe())

	got, err := c.Get("dense_1")
	require.NoError(t, err)
	assert.Same(t, b, got)

	_, err = c.Get("Dense")
	var nf *LayerNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Dense", nf.Name)
}
