package sdk

// Address is a wallet identity in its textual form, a 60 character
// upper-case identity string on the settlement network.
type Address string

// IdentityLength is the length of a well-formed identity string.
const IdentityLength = 60

// ZeroAddress marks "no identity". Ledger entries never carry it.
const ZeroAddress Address = ""

// String returns the literal identity string.
func (a Address) String() string {
	return string(a)
}

// IsZero reports whether the address is the empty identity.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// IsValid performs a light sanity check: well-formed identities are exactly
// IdentityLength upper-case letters. Hosts are expected to hand the contract
// validated identities; this exists for harness-side input checking.
func (a Address) IsValid() bool {
	if len(a) != IdentityLength {
		return false
	}
	for i := 0; i < len(a); i++ {
		if a[i] < 'A' || a[i] > 'Z' {
			return false
		}
	}
	return true
}
