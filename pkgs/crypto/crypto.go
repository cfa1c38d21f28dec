package crypto

import (
	kyber_bls12381 "github.com/drand/kyber-bls12381"
	"github.com/drand/kyber/pairing"
	"github.com/herumi/bls-eth-go-binary/bls"
)

const (
	// PublicKeyLength is the length of a compressed G1 point
	PublicKeyLength = 48
	// SignatureLength is the length of a compressed G2 point
	SignatureLength = 96
	// SecretKeyLength is the length of a serialized scalar
	SecretKeyLength = 32
	// MaxGroupSize is the maximum number of members a public key set can commit to
	MaxGroupSize = 256
)

var suite = kyber_bls12381.NewBLS12381Suite()

func init() {
	_ = bls.Init(bls.BLS12_381)
	_ = bls.SetETHmode(bls.EthModeDraft07)
	// reject points outside of the prime order subgroup at deserialization
	bls.VerifyPublicKeyOrder(true)
	bls.VerifySignatureOrder(true)
}

// Suite returns the pairing suite public key sets are committed in.
func Suite() pairing.Suite {
	return suite
}
