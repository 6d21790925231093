package wire

// SwapLEElements byte-swaps every bpe-wide element of data in place when the
// host is big-endian, so that numeric element bytes declared little-endian
// on disk (spec.md §3.3) round-trip correctly on both write and read
// (spec.md §9). On a little-endian host this is a no-op. bpe==1 is always a
// no-op since single bytes have no order.
func SwapLEElements(data []byte, bpe int) {
	if bpe <= 1 || HostEngine() == Engine() {
		return
	}

	for off := 0; off+bpe <= len(data); off += bpe {
		elem := data[off : off+bpe]
		for i, j := 0, bpe-1; i < j; i, j = i+1, j-1 {
			elem[i], elem[j] = elem[j], elem[i]
		}
	}
}
