// Package dealer hands out threshold keys the way a trusted dealer would. It
// stands in for the key distribution subsystem in tests and in the CLI.
package dealer

import (
	"fmt"

	"github.com/drand/kyber/share"
	"github.com/drand/kyber/util/random"
	"github.com/pkg/errors"

	"github.com/ssvlabs/ssv-quorum-proof/pkgs/crypto"
)

var ErrInvalidParameters = errors.New("invalid key set parameters")

// Share is the secret material handed to a single member.
type Share struct {
	Index          uint64                 `json:"index"`
	SecretKeyShare *crypto.SecretKeyShare `json:"secret_key_share"`
}

// KeySet is a freshly dealt threshold key: the public key set every member and
// verifier knows, and one secret key share per member.
type KeySet struct {
	PublicKeySet *crypto.PublicKeySet
	Shares       []*Share
}

// Generate deals a key set where any threshold of size members can sign.
func Generate(threshold, size int) (*KeySet, error) {
	if threshold < 1 || threshold > size || size > crypto.MaxGroupSize {
		return nil, errors.Wrapf(ErrInvalidParameters, "threshold %d, size %d", threshold, size)
	}
	g := crypto.Suite().G1()
	priPoly := share.NewPriPoly(g, threshold, nil, random.New())
	_, commits := priPoly.Commit(g.Point().Base()).Info()

	commitments := make([]crypto.PublicKey, len(commits))
	for i, c := range commits {
		byts, err := c.MarshalBinary()
		if err != nil {
			return nil, errors.Wrap(err, "could not marshal commitment")
		}
		if commitments[i], err = crypto.PublicKeyFromBytes(byts); err != nil {
			return nil, err
		}
	}
	keySet, err := crypto.NewPublicKeySet(commitments, uint64(size))
	if err != nil {
		return nil, err
	}

	shares := make([]*Share, size)
	for _, priShare := range priPoly.Shares(size) {
		byts, err := priShare.V.MarshalBinary()
		if err != nil {
			return nil, errors.Wrap(err, "could not marshal secret share")
		}
		sks, err := crypto.SecretKeyShareFromBytes(byts)
		if err != nil {
			return nil, err
		}
		shares[priShare.I] = &Share{
			Index:          uint64(priShare.I),
			SecretKeyShare: sks,
		}
	}
	return &KeySet{
		PublicKeySet: keySet,
		Shares:       shares,
	}, nil
}

// SecretKeyShare returns the secret key share of the member at index.
func (k *KeySet) SecretKeyShare(index uint64) (*crypto.SecretKeyShare, error) {
	if index >= uint64(len(k.Shares)) {
		return nil, fmt.Errorf("no secret key share for index %d", index)
	}
	return k.Shares[index].SecretKeyShare, nil
}
