package payload_test

import (
	"testing"

	"github.com/clicat/gbin/format"
	"github.com/clicat/gbin/header"
	"github.com/clicat/gbin/payload"
	"github.com/clicat/gbin/value"
	"github.com/stretchr/testify/require"
)

func TestNumeric_RoundTrip(t *testing.T) {
	real := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16} // 2 float64 "real" elements worth of bytes
	v := value.NewNumeric(format.ClassDouble, []int{2}, false, real, nil)

	raw, err := payload.EncodeNumeric(v)
	require.NoError(t, err)
	require.Equal(t, real, raw)

	out, err := payload.DecodeNumeric(raw, format.ClassDouble, []int{2}, false)
	require.NoError(t, err)
	require.Equal(t, real, out.RealLE)
}

func TestNumeric_ComplexRoundTrip(t *testing.T) {
	real := make([]byte, 16)
	imag := make([]byte, 16)
	for i := range real {
		real[i] = byte(i)
		imag[i] = byte(i + 100)
	}

	v := value.NewNumeric(format.ClassInt64, []int{2}, true, real, imag)

	raw, err := payload.EncodeNumeric(v)
	require.NoError(t, err)
	require.Len(t, raw, 32)

	out, err := payload.DecodeNumeric(raw, format.ClassInt64, []int{2}, true)
	require.NoError(t, err)
	require.Equal(t, real, out.RealLE)
	require.Equal(t, imag, out.ImagLE)
}

func TestNumeric_LengthMismatchIsError(t *testing.T) {
	v := value.NewNumeric(format.ClassDouble, []int{2}, false, []byte{1, 2, 3}, nil)
	_, err := payload.EncodeNumeric(v)
	require.Error(t, err)
}

func TestLogical_RoundTrip(t *testing.T) {
	v := value.NewLogical([]int{3}, []byte{1, 0, 1})

	raw, err := payload.EncodeLogical(v)
	require.NoError(t, err)

	out, err := payload.DecodeLogical(raw, []int{3})
	require.NoError(t, err)
	require.Equal(t, []byte{1, 0, 1}, out.LogicalData)
}

func TestLogical_InvalidByteIsError(t *testing.T) {
	v := value.NewLogical([]int{1}, []byte{5})
	_, err := payload.EncodeLogical(v)
	require.Error(t, err)
}

func TestString_RoundTripWithMissing(t *testing.T) {
	a, b := "hello", "world"
	items := []*string{&a, nil, &b}
	v := value.NewString([]int{3}, items)

	raw, err := payload.EncodeString(v)
	require.NoError(t, err)

	out, err := payload.DecodeString(raw, []int{3})
	require.NoError(t, err)
	require.Equal(t, "hello", *out.StringItems[0])
	require.Nil(t, out.StringItems[1])
	require.Equal(t, "world", *out.StringItems[2])
}

func TestChar_RoundTrip(t *testing.T) {
	v := value.NewChar([]int{3}, []uint16{'a', 'b', 'c'})

	raw, err := payload.EncodeChar(v)
	require.NoError(t, err)
	require.Len(t, raw, 6)

	out, err := payload.DecodeChar(raw, []int{3})
	require.NoError(t, err)
	require.Equal(t, []uint16{'a', 'b', 'c'}, out.CharUnits)
}

func TestDateTime_RoundTrip(t *testing.T) {
	v := value.NewDateTime([]int{2}, "UTC", "en_US", "iso8601", []byte{0, 1}, []int64{1000, 2000})

	raw, err := payload.EncodeDateTime(v)
	require.NoError(t, err)

	out, err := payload.DecodeDateTime(raw, []int{2})
	require.NoError(t, err)
	require.Equal(t, "UTC", out.Timezone)
	require.Equal(t, []byte{0, 1}, out.NaTMask)
	require.Equal(t, []int64{1000, 2000}, out.UnixMS)
}

func TestDuration_RoundTrip(t *testing.T) {
	v := value.NewDuration([]int{2}, []byte{0, 1}, []int64{500, -500})

	raw, err := payload.EncodeDuration(v)
	require.NoError(t, err)

	out, err := payload.DecodeDuration(raw, []int{2})
	require.NoError(t, err)
	require.Equal(t, []int64{500, -500}, out.DurationMS)
}

func TestCalendarDuration_RoundTrip(t *testing.T) {
	v := value.NewCalendarDuration([]int{1}, []byte{0}, []int32{1}, []int32{15}, []int64{3600000})

	raw, err := payload.EncodeCalendarDuration(v)
	require.NoError(t, err)

	out, err := payload.DecodeCalendarDuration(raw, []int{1})
	require.NoError(t, err)
	require.Equal(t, []int32{1}, out.CalMonths)
	require.Equal(t, []int32{15}, out.CalDays)
	require.Equal(t, []int64{3600000}, out.CalTimeMS)
}

func TestCategorical_RoundTrip(t *testing.T) {
	v := value.NewCategorical([]int{2}, []string{"red", "blue"}, []uint32{0, 1})

	raw, err := payload.EncodeCategorical(v)
	require.NoError(t, err)

	out, err := payload.DecodeCategorical(raw, []int{2})
	require.NoError(t, err)
	require.Equal(t, []string{"red", "blue"}, out.Categories)
	require.Equal(t, []uint32{0, 1}, out.Codes)
}

func TestOpaque_RoundTrip(t *testing.T) {
	v := value.NewOpaque("vendor-x", "bytes", []int{4}, false, "raw", []byte{9, 9, 9, 9})

	raw, err := payload.EncodeOpaque(v)
	require.NoError(t, err)
	require.Equal(t, []byte{9, 9, 9, 9}, raw)

	out := payload.DecodeOpaque(raw, "vendor-x", "bytes", []int{4}, false, "raw")
	require.Equal(t, []byte{9, 9, 9, 9}, out.OpaqueBytes)
}

func TestEmptyStruct_RoundTrip(t *testing.T) {
	raw := payload.EncodeEmptyStruct()
	require.Empty(t, raw)

	out := payload.DecodeEmptyStruct()
	require.True(t, out.IsRecord())
	require.Equal(t, 0, out.Record.Len())
}

func TestDispatch_DecodeUnknownKindDegradesToOpaque(t *testing.T) {
	f := header.Field{
		Name:  "mystery",
		Kind:  format.Kind(200),
		Class: "mystery-class",
		Shape: []int{2},
	}

	raw := []byte{1, 2, 3, 4}
	v, err := payload.Decode(raw, f)
	require.NoError(t, err)
	require.Equal(t, format.KindOpaque, v.Kind)
	require.Equal(t, raw, v.OpaqueBytes)
}

func TestDispatch_EncodeNonEmptyRecordIsUnsupported(t *testing.T) {
	r := value.NewRecord()
	r.Set("x", value.NewLogical([]int{1}, []byte{1}))

	_, _, err := payload.Encode(value.NewStruct(r))
	require.Error(t, err)
}
