package contract

import "nostromo_launchpad/sdk"

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our
// keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// configKey addresses the single contract config record.
func configKey() string {
	return string([]byte{kConfig})
}

// tierKey builds the catalog key for one tier level.
func tierKey(level TierLevel) string {
	return string([]byte{kTier, byte(level)})
}

// userTierKey mixes the prefix with the raw identity bytes so we avoid
// nested maps in host storage.
func userTierKey(addr sdk.Address) string {
	return userKey(kUserTier, addr)
}

// projectMetaKey builds a storage key string for project metadata by id.
func projectMetaKey(id uint64) string {
	var buf [9]byte
	buf[0] = kProjectMeta
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// projectFinanceKey sits in its own prefix so finance terms stay contiguous.
func projectFinanceKey(id uint64) string {
	var buf [9]byte
	buf[0] = kProjectFinance
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// userKey is the shared shape for per-user ledger rows.
func userKey(prefix byte, addr sdk.Address) string {
	s := addr.String()
	buf := make([]byte, 0, 1+len(s))
	buf = append(buf, prefix)
	buf = append(buf, s...)
	return string(buf)
}
