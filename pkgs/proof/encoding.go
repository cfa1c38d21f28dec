package proof

import (
	ssz "github.com/ferranbt/fastssz"
	"github.com/pkg/errors"

	"github.com/ssvlabs/ssv-quorum-proof/pkgs/crypto"
)

const (
	aggregatedProofSize = crypto.PublicKeyLength + crypto.SignatureLength
	// proofShareFixedSize is the offset of PublicKeySet plus Index plus SignatureShare
	proofShareFixedSize = 4 + 8 + crypto.SignatureLength
)

// MarshalSSZ ssz marshals the AggregatedProof object
func (p *AggregatedProof) MarshalSSZ() ([]byte, error) {
	return p.MarshalSSZTo(make([]byte, 0, p.SizeSSZ()))
}

// MarshalSSZTo ssz marshals the AggregatedProof object to a target array
func (p *AggregatedProof) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf

	// Field (0) 'PublicKey'
	dst = append(dst, p.PublicKey.Bytes()...)

	// Field (1) 'Signature'
	dst = append(dst, p.Signature.Bytes()...)

	return
}

// UnmarshalSSZ ssz unmarshals the AggregatedProof object
func (p *AggregatedProof) UnmarshalSSZ(buf []byte) error {
	if len(buf) != aggregatedProofSize {
		return errors.Wrapf(crypto.ErrMalformedKeyMaterial, "aggregated proof: %s", ssz.ErrSize)
	}

	// Field (0) 'PublicKey'
	pk, err := crypto.PublicKeyFromBytes(buf[0:crypto.PublicKeyLength])
	if err != nil {
		return err
	}

	// Field (1) 'Signature'
	sig, err := crypto.SignatureFromBytes(buf[crypto.PublicKeyLength:aggregatedProofSize])
	if err != nil {
		return err
	}

	p.PublicKey = pk
	p.Signature = sig
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the AggregatedProof object
func (p *AggregatedProof) SizeSSZ() (size int) {
	size = aggregatedProofSize
	return
}

// HashTreeRoot ssz hashes the AggregatedProof object
func (p *AggregatedProof) HashTreeRoot() ([32]byte, error) {
	hh := ssz.DefaultHasherPool.Get()
	defer ssz.DefaultHasherPool.Put(hh)
	if err := p.HashTreeRootWith(hh); err != nil {
		return [32]byte{}, err
	}
	return hh.HashRoot()
}

// HashTreeRootWith ssz hashes the AggregatedProof object with a hasher
func (p *AggregatedProof) HashTreeRootWith(hh *ssz.Hasher) (err error) {
	indx := hh.Index()

	// Field (0) 'PublicKey'
	hh.PutBytes(p.PublicKey.Bytes())

	// Field (1) 'Signature'
	hh.PutBytes(p.Signature.Bytes())

	hh.Merkleize(indx)
	return
}

// MarshalSSZ ssz marshals the ProofShare object
func (p *ProofShare) MarshalSSZ() ([]byte, error) {
	return p.MarshalSSZTo(make([]byte, 0, p.SizeSSZ()))
}

// MarshalSSZTo ssz marshals the ProofShare object to a target array
func (p *ProofShare) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf
	if p.PublicKeySet == nil {
		err = errors.New("proof share has no public key set")
		return
	}
	offset := int(proofShareFixedSize)

	// Offset (0) 'PublicKeySet'
	dst = ssz.WriteOffset(dst, offset)

	// Field (1) 'Index'
	dst = ssz.MarshalUint64(dst, p.Index)

	// Field (2) 'SignatureShare'
	dst = append(dst, p.SignatureShare.Bytes()...)

	// Field (0) 'PublicKeySet'
	if dst, err = p.PublicKeySet.MarshalSSZTo(dst); err != nil {
		return
	}
	return
}

// UnmarshalSSZ ssz unmarshals the ProofShare object. The index is decoded as
// is; an out of range index surfaces from Verify.
func (p *ProofShare) UnmarshalSSZ(buf []byte) error {
	size := uint64(len(buf))
	if size < proofShareFixedSize {
		return errors.Wrapf(crypto.ErrMalformedKeyMaterial, "proof share: %s", ssz.ErrSize)
	}
	tail := buf

	// Offset (0) 'PublicKeySet'
	o0 := ssz.ReadOffset(buf[0:4])
	if o0 != proofShareFixedSize {
		return errors.Wrapf(crypto.ErrMalformedKeyMaterial, "proof share: %s", ssz.ErrOffset)
	}

	// Field (1) 'Index'
	index := ssz.UnmarshallUint64(buf[4:12])

	// Field (2) 'SignatureShare'
	sigShare, err := crypto.SignatureShareFromBytes(buf[12:proofShareFixedSize])
	if err != nil {
		return err
	}

	// Field (0) 'PublicKeySet'
	keySet := new(crypto.PublicKeySet)
	if err := keySet.UnmarshalSSZ(tail[o0:]); err != nil {
		return err
	}

	p.PublicKeySet = keySet
	p.Index = index
	p.SignatureShare = sigShare
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the ProofShare object
func (p *ProofShare) SizeSSZ() (size int) {
	size = proofShareFixedSize
	if p.PublicKeySet != nil {
		size += p.PublicKeySet.SizeSSZ()
	}
	return
}

// HashTreeRoot ssz hashes the ProofShare object
func (p *ProofShare) HashTreeRoot() ([32]byte, error) {
	hh := ssz.DefaultHasherPool.Get()
	defer ssz.DefaultHasherPool.Put(hh)
	if err := p.HashTreeRootWith(hh); err != nil {
		return [32]byte{}, err
	}
	return hh.HashRoot()
}

// HashTreeRootWith ssz hashes the ProofShare object with a hasher
func (p *ProofShare) HashTreeRootWith(hh *ssz.Hasher) (err error) {
	if p.PublicKeySet == nil {
		return errors.New("proof share has no public key set")
	}
	indx := hh.Index()

	// Field (0) 'PublicKeySet'
	if err = p.PublicKeySet.HashTreeRootWith(hh); err != nil {
		return
	}

	// Field (1) 'Index'
	hh.PutUint64(p.Index)

	// Field (2) 'SignatureShare'
	hh.PutBytes(p.SignatureShare.Bytes())

	hh.Merkleize(indx)
	return
}
