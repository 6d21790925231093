package value_test

import (
	"testing"

	"github.com/clicat/gbin/format"
	"github.com/clicat/gbin/value"
	"github.com/stretchr/testify/require"
)

func TestValue_NumElements(t *testing.T) {
	v := value.NewLogical([]int{2, 3}, make([]byte, 6))
	require.Equal(t, 6, v.NumElements())

	empty := value.NewLogical(nil, nil)
	require.Equal(t, 0, empty.NumElements())
}

func TestValue_IsRecord(t *testing.T) {
	r := value.NewStruct(value.NewRecord())
	require.True(t, r.IsRecord())

	n := value.NewLogical([]int{1}, []byte{1})
	require.False(t, n.IsRecord())
}

func TestRecord_SetGetKeysOrder(t *testing.T) {
	r := value.NewRecord()
	r.Set("b", value.NewLogical([]int{1}, []byte{1}))
	r.Set("a", value.NewLogical([]int{1}, []byte{0}))
	r.Set("b", value.NewLogical([]int{1}, []byte{0})) // overwrite, keeps position

	require.Equal(t, []string{"b", "a"}, r.Keys())
	require.Equal(t, 2, r.Len())

	v, ok := r.Get("b")
	require.True(t, ok)
	require.Equal(t, byte(0), v.LogicalData[0])
}

func TestRecord_FlattenNestedPaths(t *testing.T) {
	root := value.NewRecord()
	inner := value.NewRecord()
	inner.Set("y", value.NewLogical([]int{1}, []byte{1}))
	root.Set("x", value.NewStruct(inner))
	root.Set("z", value.NewLogical([]int{1}, []byte{0}))

	leaves := root.Flatten()
	require.Len(t, leaves, 2)
	require.Equal(t, "x.y", leaves[0].Path)
	require.Equal(t, "z", leaves[1].Path)
}

func TestRecord_FlattenEmptyNestedRecordIsStructLeaf(t *testing.T) {
	root := value.NewRecord()
	root.Set("empty", value.NewStruct(value.NewRecord()))

	leaves := root.Flatten()
	require.Len(t, leaves, 1)
	require.Equal(t, "empty", leaves[0].Path)
	require.Equal(t, format.KindStruct, leaves[0].Value.Kind)
}

func TestRecord_InsertAutoCreatesIntermediateRecords(t *testing.T) {
	root := value.NewRecord()
	err := root.Insert("a.b.c", value.NewLogical([]int{1}, []byte{1}))
	require.NoError(t, err)

	v, ok := root.Lookup("a.b.c")
	require.True(t, ok)
	require.Equal(t, byte(1), v.LogicalData[0])
}

func TestRecord_InsertCollisionWithLeafIsError(t *testing.T) {
	root := value.NewRecord()
	require.NoError(t, root.Insert("a", value.NewLogical([]int{1}, []byte{1})))

	err := root.Insert("a.b", value.NewLogical([]int{1}, []byte{0}))
	require.Error(t, err)
}

func TestRecord_LookupMissingReturnsFalse(t *testing.T) {
	root := value.NewRecord()
	_, ok := root.Lookup("nope")
	require.False(t, ok)
}
