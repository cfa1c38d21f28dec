package crypto

import (
	"bytes"
	"encoding/hex"

	"github.com/herumi/bls-eth-go-binary/bls"
)

// PublicKey is a BLS12-381 public key (G1). The zero value is not a valid
// key and never verifies anything.
type PublicKey struct {
	raw [PublicKeyLength]byte
	pk  *bls.PublicKey
}

// PublicKeyFromBytes decodes a compressed public key, rejecting anything that
// is not a non-identity element of the prime order subgroup.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) != PublicKeyLength {
		return PublicKey{}, malformed("public key length %d, expected %d", len(b), PublicKeyLength)
	}
	pk := &bls.PublicKey{}
	if err := pk.Deserialize(b); err != nil {
		return PublicKey{}, malformed("could not deserialize public key: %s", err)
	}
	if pk.IsZero() {
		return PublicKey{}, malformed("public key is the point at infinity")
	}
	return newPublicKey(pk), nil
}

func newPublicKey(pk *bls.PublicKey) PublicKey {
	p := PublicKey{pk: pk}
	copy(p.raw[:], pk.Serialize())
	return p
}

// Bytes returns the compressed encoding.
func (p PublicKey) Bytes() []byte {
	b := make([]byte, PublicKeyLength)
	copy(b, p.raw[:])
	return b
}

// IsZero reports whether p is the zero value.
func (p PublicKey) IsZero() bool {
	return p.pk == nil
}

func (p PublicKey) Equal(other PublicKey) bool {
	return p.raw == other.raw
}

func (p PublicKey) Compare(other PublicKey) int {
	return bytes.Compare(p.raw[:], other.raw[:])
}

func (p PublicKey) String() string {
	return hex.EncodeToString(p.raw[:])
}

// Verify checks sig over msg.
func (p PublicKey) Verify(sig Signature, msg []byte) bool {
	if p.pk == nil || sig.sig == nil {
		return false
	}
	return sig.sig.VerifyByte(p.pk, msg)
}

// VerifyShare checks a signature share over msg, p being the signer's public
// key share.
func (p PublicKey) VerifyShare(share SignatureShare, msg []byte) bool {
	if p.pk == nil || share.sig == nil {
		return false
	}
	return share.sig.VerifyByte(p.pk, msg)
}

// Signature is a BLS12-381 signature (G2).
type Signature struct {
	raw [SignatureLength]byte
	sig *bls.Sign
}

func SignatureFromBytes(b []byte) (Signature, error) {
	sig, err := deserializeSign(b)
	if err != nil {
		return Signature{}, err
	}
	s := Signature{sig: sig}
	copy(s.raw[:], sig.Serialize())
	return s, nil
}

func (s Signature) Bytes() []byte {
	b := make([]byte, SignatureLength)
	copy(b, s.raw[:])
	return b
}

func (s Signature) IsZero() bool {
	return s.sig == nil
}

func (s Signature) Equal(other Signature) bool {
	return s.raw == other.raw
}

func (s Signature) Compare(other Signature) int {
	return bytes.Compare(s.raw[:], other.raw[:])
}

func (s Signature) String() string {
	return hex.EncodeToString(s.raw[:])
}

// SignatureShare is a single member's partial signature. It has the same
// encoding as a Signature but is only meaningful under a public key share.
type SignatureShare struct {
	raw [SignatureLength]byte
	sig *bls.Sign
}

func SignatureShareFromBytes(b []byte) (SignatureShare, error) {
	sig, err := deserializeSign(b)
	if err != nil {
		return SignatureShare{}, err
	}
	s := SignatureShare{sig: sig}
	copy(s.raw[:], sig.Serialize())
	return s, nil
}

func (s SignatureShare) Bytes() []byte {
	b := make([]byte, SignatureLength)
	copy(b, s.raw[:])
	return b
}

func (s SignatureShare) IsZero() bool {
	return s.sig == nil
}

func (s SignatureShare) Equal(other SignatureShare) bool {
	return s.raw == other.raw
}

func (s SignatureShare) Compare(other SignatureShare) int {
	return bytes.Compare(s.raw[:], other.raw[:])
}

func (s SignatureShare) String() string {
	return hex.EncodeToString(s.raw[:])
}

func deserializeSign(b []byte) (*bls.Sign, error) {
	if len(b) != SignatureLength {
		return nil, malformed("signature length %d, expected %d", len(b), SignatureLength)
	}
	sig := &bls.Sign{}
	if err := sig.Deserialize(b); err != nil {
		return nil, malformed("could not deserialize signature: %s", err)
	}
	return sig, nil
}

// SecretKey is a BLS12-381 secret key.
type SecretKey struct {
	sk *bls.SecretKey
}

// GenerateSecretKey returns a fresh random secret key.
func GenerateSecretKey() *SecretKey {
	sk := &bls.SecretKey{}
	sk.SetByCSPRNG()
	return &SecretKey{sk: sk}
}

func SecretKeyFromBytes(b []byte) (*SecretKey, error) {
	sk, err := deserializeSecretKey(b)
	if err != nil {
		return nil, err
	}
	return &SecretKey{sk: sk}, nil
}

func (k *SecretKey) Bytes() []byte {
	return k.sk.Serialize()
}

func (k *SecretKey) PublicKey() PublicKey {
	return newPublicKey(k.sk.GetPublicKey())
}

// Sign signs msg. BLS signing is deterministic.
func (k *SecretKey) Sign(msg []byte) Signature {
	sig := k.sk.SignByte(msg)
	s := Signature{sig: sig}
	copy(s.raw[:], sig.Serialize())
	return s
}

// String never renders key material.
func (k *SecretKey) String() string {
	return "SecretKey(..)"
}

// SecretKeyShare is a member's share of the group secret key, as handed out
// by key distribution.
type SecretKeyShare struct {
	sk *bls.SecretKey
}

func SecretKeyShareFromBytes(b []byte) (*SecretKeyShare, error) {
	sk, err := deserializeSecretKey(b)
	if err != nil {
		return nil, err
	}
	return &SecretKeyShare{sk: sk}, nil
}

func (k *SecretKeyShare) Bytes() []byte {
	return k.sk.Serialize()
}

// PublicKeyShare returns the public counterpart of this share.
func (k *SecretKeyShare) PublicKeyShare() PublicKey {
	return newPublicKey(k.sk.GetPublicKey())
}

func (k *SecretKeyShare) Sign(msg []byte) SignatureShare {
	sig := k.sk.SignByte(msg)
	s := SignatureShare{sig: sig}
	copy(s.raw[:], sig.Serialize())
	return s
}

func (k *SecretKeyShare) String() string {
	return "SecretKeyShare(..)"
}

func deserializeSecretKey(b []byte) (*bls.SecretKey, error) {
	if len(b) != SecretKeyLength {
		return nil, malformed("secret key length %d, expected %d", len(b), SecretKeyLength)
	}
	sk := &bls.SecretKey{}
	if err := sk.Deserialize(b); err != nil {
		return nil, malformed("could not deserialize secret key: %s", err)
	}
	if sk.IsZero() {
		return nil, malformed("secret key is zero")
	}
	return sk, nil
}
