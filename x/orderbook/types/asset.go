package types

import (
	"crypto/sha256"
	"fmt"
)

// AssetInfoKind distinguishes the two ways an asset can be identified,
// per spec.md §1 "Token-asset encoding details beyond a two-variant
// capability (native-coin denomination string; contract-addressed token)".
type AssetInfoKind int32

const (
	AssetInfoKindUnspecified AssetInfoKind = iota
	AssetInfoKindNativeToken
	AssetInfoKindToken
)

// AssetInfo identifies a fungible asset the engine custodies by reference,
// never by inspecting its internals beyond equality and this canonical key
// (spec.md §9 "Dynamic dispatch on asset kind").
type AssetInfo struct {
	Kind          AssetInfoKind
	Denom         string // set when Kind == AssetInfoKindNativeToken
	ContractAddr  string // set when Kind == AssetInfoKindToken
}

// NewNativeTokenInfo builds a native-coin denom asset identity.
func NewNativeTokenInfo(denom string) AssetInfo {
	return AssetInfo{Kind: AssetInfoKindNativeToken, Denom: denom}
}

// NewTokenInfo builds a contract-addressed token asset identity.
func NewTokenInfo(contractAddr string) AssetInfo {
	return AssetInfo{Kind: AssetInfoKindToken, ContractAddr: contractAddr}
}

// CanonicalKey returns the byte key used for equality comparison, hashing,
// and host-side transfer dispatch.
func (a AssetInfo) CanonicalKey() []byte {
	switch a.Kind {
	case AssetInfoKindNativeToken:
		return append([]byte{'n'}, []byte(a.Denom)...)
	case AssetInfoKindToken:
		return append([]byte{'t'}, []byte(a.ContractAddr)...)
	default:
		return nil
	}
}

// Equal reports whether two asset infos name the same asset.
func (a AssetInfo) Equal(b AssetInfo) bool {
	return a.Kind == b.Kind && a.Denom == b.Denom && a.ContractAddr == b.ContractAddr
}

// String renders a human-readable asset identity for event attributes.
func (a AssetInfo) String() string {
	switch a.Kind {
	case AssetInfoKindNativeToken:
		return a.Denom
	case AssetInfoKindToken:
		return a.ContractAddr
	default:
		return "unspecified"
	}
}

// Asset pairs an asset identity with an amount — delivered funds, a refund,
// or a settlement transfer output.
type Asset struct {
	Info   AssetInfo
	Amount Amount
}

func (a Asset) String() string {
	return fmt.Sprintf("%s %s", a.Amount.String(), a.Info.String())
}

// PairKey is the deterministic, order-independent identity of a trading
// pair (spec.md §3.1: "H(base_info ‖ quote_info) order-independent across
// the two infos"). Sorting the two canonical keys before hashing makes
// PairKey(base, quote) == PairKey(quote, base), matching the original
// contract's `oraiswap::asset::pair_key` helper.
type PairKey [32]byte

// NewPairKey computes the canonical pair key for two distinct assets.
func NewPairKey(a, b AssetInfo) (PairKey, error) {
	if a.Equal(b) {
		return PairKey{}, fmt.Errorf("%w: base and quote must differ", ErrInvalidPair)
	}
	ka, kb := a.CanonicalKey(), b.CanonicalKey()
	first, second := ka, kb
	if compareBytes(kb, ka) < 0 {
		first, second = kb, ka
	}
	h := sha256.New()
	h.Write(first)
	h.Write([]byte{0})
	h.Write(second)
	var out PairKey
	copy(out[:], h.Sum(nil))
	return out, nil
}

// Bytes returns the key as a byte slice suitable for store-key composition.
func (k PairKey) Bytes() []byte { return k[:] }

// PairKeyFromBytes reconstructs a PairKey from a 32-byte slice previously
// produced by Bytes, used when a key is recovered from a composite store key
// rather than recomputed from asset identities.
func PairKeyFromBytes(b []byte) PairKey {
	var out PairKey
	copy(out[:], b)
	return out
}

func compareBytes(a, b []byte) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
