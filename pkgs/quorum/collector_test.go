package quorum

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ssvlabs/ssv-quorum-proof/pkgs/crypto"
	"github.com/ssvlabs/ssv-quorum-proof/pkgs/dealer"
	"github.com/ssvlabs/ssv-quorum-proof/pkgs/proof"
)

func newShares(t *testing.T, ks *dealer.KeySet, payload []byte) []*proof.ProofShare {
	shares := make([]*proof.ProofShare, 0, len(ks.Shares))
	for _, s := range ks.Shares {
		shares = append(shares, proof.NewProofShare(ks.PublicKeySet, s.Index, s.SecretKeyShare, payload))
	}
	return shares
}

func TestCollectorCombine(t *testing.T) {
	ks, err := dealer.Generate(3, 5)
	require.NoError(t, err)
	payload := []byte("quorum-test")
	shares := newShares(t, ks, payload)
	c, err := NewCollector(zap.NewNop(), ks.PublicKeySet, payload)
	require.NoError(t, err)

	for _, index := range []int{4, 1} {
		added, err := c.Add(shares[index])
		require.NoError(t, err)
		require.True(t, added)
	}
	require.False(t, c.Ready())
	_, err = c.Combine()
	require.True(t, errors.Is(err, ErrNotEnoughShares))

	added, err := c.Add(shares[1])
	require.NoError(t, err)
	require.False(t, added)

	added, err = c.Add(shares[3])
	require.NoError(t, err)
	require.True(t, added)
	require.True(t, c.Ready())
	require.Equal(t, []uint64{1, 3, 4}, c.Indices())

	p, err := c.Combine()
	require.NoError(t, err)
	require.True(t, p.Verify(payload))
	require.False(t, p.Verify([]byte("other")))
	require.True(t, p.PublicKey.Equal(ks.PublicKeySet.PublicKey()))
}

func TestCollectorAnyQuorumGivesTheSameProof(t *testing.T) {
	ks, err := dealer.Generate(3, 5)
	require.NoError(t, err)
	payload := []byte("payload")
	shares := newShares(t, ks, payload)

	var proofs []*proof.AggregatedProof
	for _, subset := range [][]int{{0, 1, 2}, {2, 3, 4}, {0, 2, 4}} {
		c, err := NewCollector(zap.NewNop(), ks.PublicKeySet, payload)
		require.NoError(t, err)
		for _, index := range subset {
			_, err := c.Add(shares[index])
			require.NoError(t, err)
		}
		p, err := c.Combine()
		require.NoError(t, err)
		proofs = append(proofs, p)
	}
	require.True(t, proofs[0].Equal(proofs[1]))
	require.True(t, proofs[0].Equal(proofs[2]))
}

func TestCollectorRejects(t *testing.T) {
	ks, err := dealer.Generate(2, 3)
	require.NoError(t, err)
	payload := []byte("payload")
	c, err := NewCollector(zap.NewNop(), ks.PublicKeySet, payload)
	require.NoError(t, err)

	t.Run("other payload", func(t *testing.T) {
		s := proof.NewProofShare(ks.PublicKeySet, 0, ks.Shares[0].SecretKeyShare, []byte("other"))
		_, err := c.Add(s)
		require.True(t, errors.Is(err, ErrInvalidShare))
	})

	t.Run("wrong index", func(t *testing.T) {
		s := proof.NewProofShare(ks.PublicKeySet, 1, ks.Shares[0].SecretKeyShare, payload)
		_, err := c.Add(s)
		require.True(t, errors.Is(err, ErrInvalidShare))
	})

	t.Run("index out of range", func(t *testing.T) {
		s := proof.NewProofShare(ks.PublicKeySet, 3, ks.Shares[0].SecretKeyShare, payload)
		_, err := c.Add(s)
		require.True(t, errors.Is(err, crypto.ErrInvalidIndex))
	})

	t.Run("other key set", func(t *testing.T) {
		other, err := dealer.Generate(2, 3)
		require.NoError(t, err)
		s := proof.NewProofShare(other.PublicKeySet, 0, other.Shares[0].SecretKeyShare, payload)
		_, err = c.Add(s)
		require.True(t, errors.Is(err, ErrKeySetMismatch))
		_, err = c.Add(nil)
		require.True(t, errors.Is(err, ErrKeySetMismatch))
	})

	require.Empty(t, c.Indices())
}

func TestCollectorAddBatch(t *testing.T) {
	ks, err := dealer.Generate(3, 5)
	require.NoError(t, err)
	payload := []byte("payload")
	shares := newShares(t, ks, payload)
	forged := proof.NewProofShare(ks.PublicKeySet, 2, ks.Shares[0].SecretKeyShare, payload)

	c, err := NewCollector(zap.NewNop(), ks.PublicKeySet, payload)
	require.NoError(t, err)
	batch := []*proof.ProofShare{shares[0], forged, shares[1], shares[3], shares[3]}
	added, err := c.AddBatch(context.Background(), batch)
	require.True(t, errors.Is(err, ErrInvalidShare))
	require.Equal(t, 3, added)
	require.Equal(t, []uint64{0, 1, 3}, c.Indices())

	p, err := c.Combine()
	require.NoError(t, err)
	require.True(t, p.Verify(payload))

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		c, err := NewCollector(zap.NewNop(), ks.PublicKeySet, payload)
		require.NoError(t, err)
		added, err := c.AddBatch(ctx, shares)
		require.True(t, errors.Is(err, context.Canceled))
		require.Equal(t, 0, added)
	})
}

func TestNewCollectorMissingKeySet(t *testing.T) {
	_, err := NewCollector(zap.NewNop(), nil, []byte("payload"))
	require.True(t, errors.Is(err, ErrMissingKeySet))
	_, err = NewCollector(zap.NewNop(), &crypto.PublicKeySet{}, []byte("payload"))
	require.True(t, errors.Is(err, ErrMissingKeySet))
}
