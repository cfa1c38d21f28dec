package crypto

import (
	"fmt"

	"github.com/drand/kyber"
	"github.com/drand/kyber/share"
	"github.com/pkg/errors"
)

// PublicKeySet is the public commitment to a threshold key: the commitments to
// the coefficients of the secret polynomial, and the number of members holding
// a share of it. The group public key is the constant term; member i's public
// key share is the committed polynomial evaluated at i+1.
type PublicKeySet struct {
	commitments []PublicKey
	size        uint64
	poly        *share.PubPoly
}

// NewPublicKeySet builds a key set from its coefficient commitments (constant
// term first) and its group size. The threshold is len(commitments).
func NewPublicKeySet(commitments []PublicKey, size uint64) (*PublicKeySet, error) {
	if len(commitments) == 0 {
		return nil, malformed("public key set has no commitments")
	}
	if size > MaxGroupSize {
		return nil, malformed("group size %d exceeds maximum %d", size, MaxGroupSize)
	}
	if uint64(len(commitments)) > size {
		return nil, malformed("threshold %d exceeds group size %d", len(commitments), size)
	}
	g := suite.G1()
	points := make([]kyber.Point, len(commitments))
	for i, c := range commitments {
		if c.IsZero() {
			return nil, malformed("commitment %d is empty", i)
		}
		p := g.Point()
		if err := p.UnmarshalBinary(c.raw[:]); err != nil {
			return nil, malformed("commitment %d: %s", i, err)
		}
		points[i] = p
	}
	cs := make([]PublicKey, len(commitments))
	copy(cs, commitments)
	return &PublicKeySet{
		commitments: cs,
		size:        size,
		poly:        share.NewPubPoly(g, g.Point().Base(), points),
	}, nil
}

// PublicKey returns the group public key.
func (s *PublicKeySet) PublicKey() PublicKey {
	if s == nil || len(s.commitments) == 0 {
		return PublicKey{}
	}
	return s.commitments[0]
}

// PublicKeyShare derives the public key share of the member at index.
func (s *PublicKeySet) PublicKeyShare(index uint64) (PublicKey, error) {
	if s == nil || s.poly == nil {
		return PublicKey{}, malformed("empty public key set")
	}
	if index >= s.size {
		return PublicKey{}, errors.Wrapf(ErrInvalidIndex, "index %d, group size %d", index, s.size)
	}
	eval := s.poly.Eval(int(index))
	b, err := eval.V.MarshalBinary()
	if err != nil {
		return PublicKey{}, errors.Wrap(err, "could not marshal public key share")
	}
	return PublicKeyFromBytes(b)
}

// Threshold returns how many shares are needed to produce a group signature.
func (s *PublicKeySet) Threshold() int {
	if s == nil {
		return 0
	}
	return len(s.commitments)
}

// Size returns the number of members the set commits to.
func (s *PublicKeySet) Size() uint64 {
	if s == nil {
		return 0
	}
	return s.size
}

// Commitments returns a copy of the coefficient commitments.
func (s *PublicKeySet) Commitments() []PublicKey {
	if s == nil {
		return nil
	}
	cs := make([]PublicKey, len(s.commitments))
	copy(cs, s.commitments)
	return cs
}

func (s *PublicKeySet) Equal(other *PublicKeySet) bool {
	return s.Compare(other) == 0
}

// Compare orders key sets by commitments, then by size. A nil set sorts first.
func (s *PublicKeySet) Compare(other *PublicKeySet) int {
	switch {
	case s == nil && other == nil:
		return 0
	case s == nil:
		return -1
	case other == nil:
		return 1
	}
	for i := 0; i < len(s.commitments) && i < len(other.commitments); i++ {
		if c := s.commitments[i].Compare(other.commitments[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(s.commitments) < len(other.commitments):
		return -1
	case len(s.commitments) > len(other.commitments):
		return 1
	case s.size < other.size:
		return -1
	case s.size > other.size:
		return 1
	}
	return 0
}

// String renders the group public key and the set's shape, not the commitments.
func (s *PublicKeySet) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("PublicKeySet { public_key: %s, threshold: %d, size: %d, .. }", s.PublicKey(), s.Threshold(), s.size)
}
