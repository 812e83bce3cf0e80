package registry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plexgraph/graph-bridge/errors"
)

// fakeConverter accepts only non-negative ints.
type fakeConverter struct {
	id TypeID
}

func (f fakeConverter) TypeID() TypeID { return f.id }

func (f fakeConverter) Convertible(host any) bool {
	n, ok := host.(int)
	return ok && n >= 0
}

func (f fakeConverter) Construct(host any) (any, error) {
	n, ok := host.(int)
	if !ok || n < 0 {
		return nil, errors.TypeMismatch(errors.PhaseConstruct, nil, fmt.Sprintf("%T", host), string(f.id))
	}
	return n, nil
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register(fakeConverter{id: "count"}))

	c, err := reg.Lookup("count")
	require.NoError(t, err)
	assert.Equal(t, TypeID("count"), c.TypeID())

	_, err = reg.Lookup("missing")
	require.Error(t, err)
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errors.KindNotFound, e.Kind)
}

func TestRegistry_DuplicateRejected(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register(fakeConverter{id: "count"}))

	err := reg.Register(fakeConverter{id: "count"})
	require.Error(t, err)
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errors.KindDuplicate, e.Kind)
}

func TestRegistry_SealForbidsRegistration(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register(fakeConverter{id: "count"}))

	reg.Seal()
	reg.Seal() // idempotent
	assert.True(t, reg.Sealed())

	err := reg.Register(fakeConverter{id: "other"})
	require.Error(t, err)
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errors.KindSealed, e.Kind)

	// Existing entries still resolve.
	_, err = reg.Lookup("count")
	assert.NoError(t, err)
}

func TestRegistry_Construct(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register(fakeConverter{id: "count"}))
	reg.Seal()

	v, err := reg.Construct("count", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	_, err = reg.Construct("count", -1)
	require.Error(t, err)
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errors.KindTypeMismatch, e.Kind)

	_, err = reg.Construct("missing", 5)
	assert.Error(t, err)
}

func TestRegistry_TypeIDsInRegistrationOrder(t *testing.T) {
	reg := New()
	ids := []TypeID{"c", "a", "b"}
	for _, id := range ids {
		require.NoError(t, reg.Register(fakeConverter{id: id}))
	}

	assert.Equal(t, ids, reg.TypeIDs())
	assert.Equal(t, 3, reg.Len())
}
