// Package proof holds the two kinds of quorum agreement proof produced by a
// threshold BLS signing group: the combined AggregatedProof and a single
// member's ProofShare. Both are immutable values whose only operation is to
// verify themselves against a payload.
package proof

import (
	"github.com/ssvlabs/ssv-quorum-proof/pkgs/crypto"
)

// AggregatedProof proves that a quorum of the signing group agreed on a payload.
type AggregatedProof struct {
	// PublicKey is the group public key
	PublicKey crypto.PublicKey `json:"public_key"`
	// Signature is the signature combined from a quorum of shares
	Signature crypto.Signature `json:"signature"`
}

// Verify reports whether the proof's signature is valid for payload under the
// proof's public key.
func (p *AggregatedProof) Verify(payload []byte) bool {
	return p.PublicKey.Verify(p.Signature, payload)
}

func (p *AggregatedProof) Equal(other *AggregatedProof) bool {
	return p.Compare(other) == 0
}

// Compare orders proofs by public key, then by signature. A nil proof sorts
// first.
func (p *AggregatedProof) Compare(other *AggregatedProof) int {
	switch {
	case p == nil && other == nil:
		return 0
	case p == nil:
		return -1
	case other == nil:
		return 1
	}
	if c := p.PublicKey.Compare(other.PublicKey); c != 0 {
		return c
	}
	return p.Signature.Compare(other.Signature)
}

// ProofShare is a single member's share of an AggregatedProof.
type ProofShare struct {
	// PublicKeySet of the signing group
	PublicKeySet *crypto.PublicKeySet `json:"public_key_set"`
	// Index of the member that created this share
	Index uint64 `json:"index"`
	// SignatureShare made with the Index-th secret key share
	SignatureShare crypto.SignatureShare `json:"signature_share"`
}

// NewProofShare signs payload with the secret key share of the member at
// index. The index is not checked against the key set here; Verify reports an
// out of range index.
func NewProofShare(keySet *crypto.PublicKeySet, index uint64, secretKeyShare *crypto.SecretKeyShare, payload []byte) *ProofShare {
	return &ProofShare{
		PublicKeySet:   keySet,
		Index:          index,
		SignatureShare: secretKeyShare.Sign(payload),
	}
}

// Verify reports whether the signature share is valid for payload under the
// Index-th public key share. An index the key set does not cover is reported
// as crypto.ErrInvalidIndex, never as a plain false.
func (p *ProofShare) Verify(payload []byte) (bool, error) {
	// a key set that was never decoded or built has nothing to verify against
	if p.PublicKeySet == nil || p.PublicKeySet.Threshold() == 0 {
		return false, nil
	}
	pks, err := p.PublicKeySet.PublicKeyShare(p.Index)
	if err != nil {
		return false, err
	}
	return pks.VerifyShare(p.SignatureShare, payload), nil
}

// PublicKey returns the group public key the share contributes to.
func (p *ProofShare) PublicKey() crypto.PublicKey {
	return p.PublicKeySet.PublicKey()
}

func (p *ProofShare) Equal(other *ProofShare) bool {
	return p.Compare(other) == 0
}

// Compare orders shares by key set, then index, then signature share. A nil
// share sorts first.
func (p *ProofShare) Compare(other *ProofShare) int {
	switch {
	case p == nil && other == nil:
		return 0
	case p == nil:
		return -1
	case other == nil:
		return 1
	}
	if c := p.PublicKeySet.Compare(other.PublicKeySet); c != 0 {
		return c
	}
	switch {
	case p.Index < other.Index:
		return -1
	case p.Index > other.Index:
		return 1
	}
	return p.SignatureShare.Compare(other.SignatureShare)
}
