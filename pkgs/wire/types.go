package wire

type SSZMarshaller interface {
	MarshalSSZ() ([]byte, error)
	UnmarshalSSZ(buf []byte) error
}

type EnvelopeType uint64

const (
	AggregatedProofType EnvelopeType = iota
	ProofShareType
)

func (t EnvelopeType) String() string {
	switch t {
	case AggregatedProofType:
		return "AggregatedProofType"
	case ProofShareType:
		return "ProofShareType"
	default:
		return "no type impl"
	}
}

const (
	maxDataSize    = 8388608 // 2^23
	maxVersionSize = 128
)

// Envelope carries an encoded proof between members. Type tells the receiver
// which verification path applies to Data.
type Envelope struct {
	Type       EnvelopeType
	Identifier [24]byte `ssz-size:"24"`
	Data       []byte   `ssz-max:"8388608"` // 2^23
	Version    []byte   `ssz-max:"128"`
}
