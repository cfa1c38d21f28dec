package wire

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/ssvlabs/ssv-quorum-proof/pkgs/crypto"
	"github.com/ssvlabs/ssv-quorum-proof/pkgs/dealer"
	"github.com/ssvlabs/ssv-quorum-proof/pkgs/proof"
)

var testVersion = []byte("v0.1.0")

func TestEnvelopeAggregatedProof(t *testing.T) {
	sk := crypto.GenerateSecretKey()
	p := &proof.AggregatedProof{
		PublicKey: sk.PublicKey(),
		Signature: sk.Sign([]byte("payload")),
	}
	id := NewID()
	env, err := SealAggregatedProof(id, p, testVersion)
	require.NoError(t, err)

	byts, err := env.MarshalSSZ()
	require.NoError(t, err)
	decoded := &Envelope{}
	require.NoError(t, decoded.UnmarshalSSZ(byts))
	require.Equal(t, env, decoded)
	require.Equal(t, AggregatedProofType, decoded.Type)
	require.Equal(t, id, decoded.Identifier)

	opened, err := decoded.AggregatedProof()
	require.NoError(t, err)
	require.True(t, opened.Equal(p))
	require.True(t, opened.Verify([]byte("payload")))

	_, err = decoded.ProofShare()
	require.True(t, errors.Is(err, ErrWrongType))
}

func TestEnvelopeProofShare(t *testing.T) {
	ks, err := dealer.Generate(3, 5)
	require.NoError(t, err)
	p := proof.NewProofShare(ks.PublicKeySet, 2, ks.Shares[2].SecretKeyShare, []byte("payload"))
	env, err := SealProofShare(NewID(), p, testVersion)
	require.NoError(t, err)

	byts, err := env.MarshalSSZ()
	require.NoError(t, err)
	decoded := &Envelope{}
	require.NoError(t, decoded.UnmarshalSSZ(byts))

	opened, err := decoded.ProofShare()
	require.NoError(t, err)
	require.True(t, opened.Equal(p))
	ok, err := opened.Verify([]byte("payload"))
	require.NoError(t, err)
	require.True(t, ok)

	_, err = decoded.AggregatedProof()
	require.True(t, errors.Is(err, ErrWrongType))
}

func TestEnvelopeMalformed(t *testing.T) {
	require.Error(t, (&Envelope{}).UnmarshalSSZ(make([]byte, 10)))

	env := &Envelope{Type: AggregatedProofType, Data: []byte{1, 2, 3}, Version: testVersion}
	byts, err := env.MarshalSSZ()
	require.NoError(t, err)
	byts[32] = 0
	require.Error(t, (&Envelope{}).UnmarshalSSZ(byts))

	_, err = env.AggregatedProof()
	require.True(t, errors.Is(err, crypto.ErrMalformedKeyMaterial))
}

func TestCheckVersion(t *testing.T) {
	require.NoError(t, CheckVersion([]byte("v0.1.0")))
	require.NoError(t, CheckVersion([]byte("v1.2.3")))
	require.Error(t, CheckVersion([]byte("v0.0.9")))
	require.Error(t, CheckVersion([]byte("not a version")))
	require.Error(t, CheckVersion(nil))

	sk := crypto.GenerateSecretKey()
	p := &proof.AggregatedProof{PublicKey: sk.PublicKey(), Signature: sk.Sign(nil)}
	_, err := SealAggregatedProof(NewID(), p, []byte("v0.0.1"))
	require.Error(t, err)
}

func TestNewID(t *testing.T) {
	require.NotEqual(t, NewID(), NewID())
}
