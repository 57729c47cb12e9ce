package fa

// Final mixing step of 32-bit MurmurHash3.
func mix32(v int) uint64 {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return uint64(k ^ (k >> 16))
}

// Combines two hashes; not commutative, so (a, b) and (b, a) differ.
func mixPair(a, b uint64) uint64 {
	const phi = uint64(0x9e3779b97f4a7c15)
	h := a*phi + b
	return h ^ (h >> 29)
}
