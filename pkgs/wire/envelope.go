package wire

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ssvlabs/ssv-quorum-proof/pkgs/proof"
)

var ErrWrongType = errors.New("unexpected envelope type")

// NewID returns a random envelope identifier.
func NewID() [24]byte {
	var id [24]byte
	b := uuid.New()
	b2 := uuid.New()
	copy(id[:16], b[:])
	copy(id[16:], b2[:8])
	return id
}

func SealAggregatedProof(id [24]byte, p *proof.AggregatedProof, version []byte) (*Envelope, error) {
	return seal(AggregatedProofType, id, p, version)
}

func SealProofShare(id [24]byte, p *proof.ProofShare, version []byte) (*Envelope, error) {
	return seal(ProofShareType, id, p, version)
}

func seal(t EnvelopeType, id [24]byte, m SSZMarshaller, version []byte) (*Envelope, error) {
	if err := CheckVersion(version); err != nil {
		return nil, err
	}
	data, err := m.MarshalSSZ()
	if err != nil {
		return nil, errors.Wrapf(err, "could not encode %s", t)
	}
	return &Envelope{
		Type:       t,
		Identifier: id,
		Data:       data,
		Version:    version,
	}, nil
}

// AggregatedProof decodes the envelope's aggregated proof.
func (e *Envelope) AggregatedProof() (*proof.AggregatedProof, error) {
	p := &proof.AggregatedProof{}
	if err := e.open(AggregatedProofType, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ProofShare decodes the envelope's proof share.
func (e *Envelope) ProofShare() (*proof.ProofShare, error) {
	p := &proof.ProofShare{}
	if err := e.open(ProofShareType, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (e *Envelope) open(t EnvelopeType, m SSZMarshaller) error {
	if e.Type != t {
		return errors.Wrapf(ErrWrongType, "got %s, expected %s", e.Type, t)
	}
	if err := CheckVersion(e.Version); err != nil {
		return err
	}
	return m.UnmarshalSSZ(e.Data)
}
