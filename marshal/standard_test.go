package marshal

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plexgraph/graph-bridge/registry"
)

func newStandardRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	require.NoError(t, RegisterStandard(reg))
	reg.Seal()
	return reg
}

func TestRegisterStandard_Coverage(t *testing.T) {
	reg := newStandardRegistry(t)

	wanted := []registry.TypeID{
		BoolID, Int16ID, Int32ID, Int64ID, FloatID, DoubleID, StringID,
		ObjectID, DegreeID,
		VectorBoolID, VectorInt16ID, VectorInt32ID, VectorInt64ID,
		VectorFloatID, VectorDoubleID, VectorStringID,
		PairDoubleID, PairInt64ID,
		PropertyValueID, DegreeSelectorID,
	}
	for _, id := range wanted {
		_, err := reg.Lookup(id)
		assert.NoError(t, err, "missing converter %s", id)
	}
	assert.Equal(t, len(wanted), reg.Len())
}

func TestRegisterStandard_ConstructThroughRegistry(t *testing.T) {
	reg := newStandardRegistry(t)

	native, err := reg.Construct(VectorInt32ID, []any{1, 2, 3, 4})
	require.NoError(t, err)
	vec, ok := native.(*Vector[int32])
	require.True(t, ok, "got %T", native)
	assert.True(t, vec.Equal(VectorOf[int32](1, 2, 3, 4)))

	native, err = reg.Construct(DegreeSelectorID, "out")
	require.NoError(t, err)
	pv := native.(PropertyValue)
	assert.Equal(t, DegreeID, pv.Tag())

	_, err = reg.Construct(VectorInt32ID, []any{1, "x"})
	assert.Error(t, err, "conversion failure must be reported at the call site")
}

func TestRegisterStandard_ViewCapabilityPlacement(t *testing.T) {
	reg := newStandardRegistry(t)

	numeric := []registry.TypeID{
		VectorInt16ID, VectorInt32ID, VectorInt64ID, VectorFloatID, VectorDoubleID,
	}
	for _, id := range numeric {
		c, err := reg.Lookup(id)
		require.NoError(t, err)
		_, ok := c.(Viewer)
		assert.True(t, ok, "%s must expose the view capability", id)
	}

	for _, id := range []registry.TypeID{VectorBoolID, VectorStringID} {
		c, err := reg.Lookup(id)
		require.NoError(t, err)
		_, ok := c.(Viewer)
		assert.False(t, ok, "%s must not expose the view capability", id)
	}
}

func TestDefault_SealedSingleton(t *testing.T) {
	reg := Default()
	assert.True(t, reg.Sealed())
	assert.Same(t, reg, Default())

	err := reg.Register(NewScalarConverter(registry.TypeID("late"), BoolCodec))
	assert.Error(t, err, "registration after boot must be refused")
}

func TestDefault_ConcurrentLookups(t *testing.T) {
	reg := Default()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := reg.Construct(VectorDoubleID, []any{1.0, 2.0}); err != nil {
					t.Error(err)
					return
				}
				if _, err := reg.Lookup(DegreeID); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
