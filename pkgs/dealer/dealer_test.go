package dealer

import (
	"fmt"
	"testing"

	"github.com/herumi/bls-eth-go-binary/bls"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	ks, err := Generate(3, 5)
	require.NoError(t, err)
	require.Equal(t, 3, ks.PublicKeySet.Threshold())
	require.Equal(t, uint64(5), ks.PublicKeySet.Size())
	require.Len(t, ks.Shares, 5)

	for i, s := range ks.Shares {
		require.Equal(t, uint64(i), s.Index)
		pks, err := ks.PublicKeySet.PublicKeyShare(s.Index)
		require.NoError(t, err)
		require.True(t, pks.Equal(s.SecretKeyShare.PublicKeyShare()))
	}

	_, err = ks.SecretKeyShare(5)
	require.Error(t, err)
}

func TestGenerateRecoversGroupKey(t *testing.T) {
	ks, err := Generate(3, 5)
	require.NoError(t, err)

	// any 3 public key shares interpolate to the group key
	idVec := make([]bls.ID, 0)
	pkVec := make([]bls.PublicKey, 0)
	for _, index := range []uint64{4, 0, 2} {
		blsID := bls.ID{}
		require.NoError(t, blsID.SetDecString(fmt.Sprintf("%d", index+1)))
		pk := bls.PublicKey{}
		require.NoError(t, pk.Deserialize(ks.Shares[index].SecretKeyShare.PublicKeyShare().Bytes()))
		idVec = append(idVec, blsID)
		pkVec = append(pkVec, pk)
	}
	recovered := bls.PublicKey{}
	require.NoError(t, recovered.Recover(pkVec, idVec))
	require.Equal(t, ks.PublicKeySet.PublicKey().Bytes(), recovered.Serialize())
}

func TestGenerateInvalidParameters(t *testing.T) {
	for _, tc := range []struct {
		threshold, size int
	}{
		{0, 3},
		{4, 3},
		{1, 257},
	} {
		_, err := Generate(tc.threshold, tc.size)
		require.True(t, errors.Is(err, ErrInvalidParameters), "threshold %d size %d", tc.threshold, tc.size)
	}
}
