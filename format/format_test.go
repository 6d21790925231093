package format_test

import (
	"testing"

	"github.com/clicat/gbin/format"
	"github.com/stretchr/testify/require"
)

func TestKind_ParseRoundTrip(t *testing.T) {
	kinds := []format.Kind{
		format.KindNumeric, format.KindLogical, format.KindString, format.KindChar,
		format.KindDateTime, format.KindDuration, format.KindCalendarDuration,
		format.KindCategorical, format.KindOpaque, format.KindStruct,
	}

	for _, k := range kinds {
		require.Equal(t, k, format.ParseKind(k.String()))
	}

	require.Equal(t, format.KindUnknown, format.ParseKind("nonsense"))
}

func TestClass_BytesPerElement(t *testing.T) {
	require.Equal(t, 8, format.ClassDouble.BytesPerElement())
	require.Equal(t, 8, format.ClassInt64.BytesPerElement())
	require.Equal(t, 4, format.ClassSingle.BytesPerElement())
	require.Equal(t, 2, format.ClassUint16.BytesPerElement())
	require.Equal(t, 1, format.ClassInt8.BytesPerElement())
	require.Equal(t, 0, format.ClassUnknown.BytesPerElement())
}

func TestClass_ParseRoundTrip(t *testing.T) {
	classes := []format.Class{
		format.ClassDouble, format.ClassSingle, format.ClassInt8, format.ClassUint8,
		format.ClassInt16, format.ClassUint16, format.ClassInt32, format.ClassUint32,
		format.ClassInt64, format.ClassUint64,
	}

	for _, c := range classes {
		require.Equal(t, c, format.ParseClass(c.String()))
	}
}

func TestCompressionMethod_ParseDefaultsToNone(t *testing.T) {
	require.Equal(t, format.CompressionZlib, format.ParseCompressionMethod("zlib"))
	require.Equal(t, format.CompressionNone, format.ParseCompressionMethod("none"))
	require.Equal(t, format.CompressionNone, format.ParseCompressionMethod("bogus"))
}

func TestCompressionMode_String(t *testing.T) {
	require.Equal(t, "auto", format.CompressionAuto.String())
	require.Equal(t, "never", format.CompressionNever.String())
	require.Equal(t, "always", format.CompressionAlways.String())
}
