package wire

import (
	ssz "github.com/ferranbt/fastssz"
)

const envelopeFixedSize = 40

// MarshalSSZ ssz marshals the Envelope object
func (e *Envelope) MarshalSSZ() ([]byte, error) {
	return e.MarshalSSZTo(make([]byte, 0, e.SizeSSZ()))
}

// MarshalSSZTo ssz marshals the Envelope object to a target array
func (e *Envelope) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf
	offset := int(envelopeFixedSize)

	// Field (0) 'Type'
	dst = ssz.MarshalUint64(dst, uint64(e.Type))

	// Field (1) 'Identifier'
	dst = append(dst, e.Identifier[:]...)

	// Offset (2) 'Data'
	dst = ssz.WriteOffset(dst, offset)
	offset += len(e.Data)

	// Offset (3) 'Version'
	dst = ssz.WriteOffset(dst, offset)

	// Field (2) 'Data'
	if size := len(e.Data); size > maxDataSize {
		err = ssz.ErrBytesLength
		return
	}
	dst = append(dst, e.Data...)

	// Field (3) 'Version'
	if size := len(e.Version); size > maxVersionSize {
		err = ssz.ErrBytesLength
		return
	}
	dst = append(dst, e.Version...)

	return
}

// UnmarshalSSZ ssz unmarshals the Envelope object
func (e *Envelope) UnmarshalSSZ(buf []byte) error {
	size := uint64(len(buf))
	if size < envelopeFixedSize {
		return ssz.ErrSize
	}
	tail := buf
	var o2, o3 uint64

	// Field (0) 'Type'
	e.Type = EnvelopeType(ssz.UnmarshallUint64(buf[0:8]))

	// Field (1) 'Identifier'
	copy(e.Identifier[:], buf[8:32])

	// Offset (2) 'Data'
	if o2 = ssz.ReadOffset(buf[32:36]); o2 > size || o2 != envelopeFixedSize {
		return ssz.ErrOffset
	}

	// Offset (3) 'Version'
	if o3 = ssz.ReadOffset(buf[36:40]); o3 > size || o2 > o3 {
		return ssz.ErrOffset
	}

	// Field (2) 'Data'
	{
		buf = tail[o2:o3]
		if len(buf) > maxDataSize {
			return ssz.ErrBytesLength
		}
		e.Data = append([]byte{}, buf...)
	}

	// Field (3) 'Version'
	{
		buf = tail[o3:]
		if len(buf) > maxVersionSize {
			return ssz.ErrBytesLength
		}
		e.Version = append([]byte{}, buf...)
	}
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the Envelope object
func (e *Envelope) SizeSSZ() (size int) {
	size = envelopeFixedSize
	size += len(e.Data)
	size += len(e.Version)
	return
}
