package crypto

import (
	ssz "github.com/ferranbt/fastssz"
)

// publicKeySetFixedSize is the offset of Commitments plus Size
const publicKeySetFixedSize = 12

// MarshalSSZ ssz marshals the PublicKeySet object
func (s *PublicKeySet) MarshalSSZ() ([]byte, error) {
	return s.MarshalSSZTo(make([]byte, 0, s.SizeSSZ()))
}

// MarshalSSZTo ssz marshals the PublicKeySet object to a target array
func (s *PublicKeySet) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf
	offset := int(publicKeySetFixedSize)

	// Offset (0) 'Commitments'
	dst = ssz.WriteOffset(dst, offset)

	// Field (1) 'Size'
	dst = ssz.MarshalUint64(dst, s.size)

	// Field (0) 'Commitments'
	if size := len(s.commitments); size > MaxGroupSize {
		err = ssz.ErrListTooBig
		return
	}
	for _, c := range s.commitments {
		dst = append(dst, c.raw[:]...)
	}
	return
}

// UnmarshalSSZ ssz unmarshals the PublicKeySet object. Every commitment is
// validated as a group element.
func (s *PublicKeySet) UnmarshalSSZ(buf []byte) error {
	size := uint64(len(buf))
	if size < publicKeySetFixedSize {
		return malformed("public key set: %s", ssz.ErrSize)
	}
	tail := buf

	// Offset (0) 'Commitments'
	o0 := ssz.ReadOffset(buf[0:4])
	if o0 != publicKeySetFixedSize {
		return malformed("public key set: %s", ssz.ErrOffset)
	}

	// Field (1) 'Size'
	groupSize := ssz.UnmarshallUint64(buf[4:12])

	// Field (0) 'Commitments'
	buf = tail[o0:]
	if len(buf)%PublicKeyLength != 0 {
		return malformed("public key set: %s", ssz.ErrSize)
	}
	num := len(buf) / PublicKeyLength
	if num > MaxGroupSize {
		return malformed("public key set: %s", ssz.ErrListTooBig)
	}
	commitments := make([]PublicKey, num)
	for i := 0; i < num; i++ {
		pk, err := PublicKeyFromBytes(buf[i*PublicKeyLength : (i+1)*PublicKeyLength])
		if err != nil {
			return err
		}
		commitments[i] = pk
	}
	decoded, err := NewPublicKeySet(commitments, groupSize)
	if err != nil {
		return err
	}
	*s = *decoded
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the PublicKeySet object
func (s *PublicKeySet) SizeSSZ() (size int) {
	size = publicKeySetFixedSize
	size += len(s.commitments) * PublicKeyLength
	return
}

// HashTreeRoot ssz hashes the PublicKeySet object
func (s *PublicKeySet) HashTreeRoot() ([32]byte, error) {
	hh := ssz.DefaultHasherPool.Get()
	defer ssz.DefaultHasherPool.Put(hh)
	if err := s.HashTreeRootWith(hh); err != nil {
		return [32]byte{}, err
	}
	return hh.HashRoot()
}

// HashTreeRootWith ssz hashes the PublicKeySet object with a hasher
func (s *PublicKeySet) HashTreeRootWith(hh *ssz.Hasher) (err error) {
	indx := hh.Index()

	// Field (0) 'Commitments'
	{
		if size := len(s.commitments); size > MaxGroupSize {
			err = ssz.ErrListTooBig
			return
		}
		subIndx := hh.Index()
		for _, c := range s.commitments {
			hh.PutBytes(c.raw[:])
		}
		numItems := uint64(len(s.commitments))
		hh.MerkleizeWithMixin(subIndx, numItems, MaxGroupSize)
	}

	// Field (1) 'Size'
	hh.PutUint64(s.size)

	hh.Merkleize(indx)
	return
}
