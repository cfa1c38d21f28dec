package cli

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/ssvlabs/ssv-quorum-proof/cli/verify"
	"github.com/ssvlabs/ssv-quorum-proof/pkgs/crypto"
	"github.com/ssvlabs/ssv-quorum-proof/pkgs/utils"
	"github.com/ssvlabs/ssv-quorum-proof/pkgs/wire"
)

func run(t *testing.T, dir string, args ...string) error {
	t.Helper()
	args = append(args,
		"--outputPath", dir,
		"--logFilePath", filepath.Join(dir, "debug.log"),
		"--logFormat", "console",
		"--logLevel", "info",
	)
	RootCmd.SetArgs(args)
	return RootCmd.Execute()
}

func TestQuorumFlow(t *testing.T) {
	dir := t.TempDir()
	payload := "0x" + hex.EncodeToString([]byte("quorum-test"))

	require.NoError(t, run(t, dir, "keygen", "--threshold", "3", "--members", "5"))
	keySetPath := filepath.Join(dir, "keyset.json")
	keySet := &crypto.PublicKeySet{}
	require.NoError(t, utils.ReadJSON(keySetPath, keySet))
	require.Equal(t, 3, keySet.Threshold())
	require.Equal(t, uint64(5), keySet.Size())

	var shares []string
	for _, i := range []uint64{0, 2, 4} {
		require.NoError(t, run(t, dir, "sign",
			"--keySetPath", keySetPath,
			"--secretSharePath", filepath.Join(dir, fmt.Sprintf("share-%d.json", i)),
			"--index", fmt.Sprintf("%d", i),
			"--payload", payload,
		))
		path := filepath.Join(dir, fmt.Sprintf("proof_share-%d.ssz", i))
		shares = append(shares, path)
		require.NoError(t, run(t, dir, "verify", "--proofPath", path, "--payload", payload))
	}

	require.NoError(t, run(t, dir, "combine",
		"--keySetPath", keySetPath,
		"--proofSharePaths", shares[0]+","+shares[1]+","+shares[2],
		"--payload", payload,
	))
	proofPath := filepath.Join(dir, "aggregated_proof.ssz")
	byts, err := os.ReadFile(proofPath)
	require.NoError(t, err)
	env := &wire.Envelope{}
	require.NoError(t, env.UnmarshalSSZ(byts))
	require.Equal(t, wire.AggregatedProofType, env.Type)
	aggregated, err := env.AggregatedProof()
	require.NoError(t, err)
	require.True(t, aggregated.PublicKey.Equal(keySet.PublicKey()))
	require.True(t, aggregated.Verify([]byte("quorum-test")))

	require.NoError(t, run(t, dir, "verify", "--proofPath", proofPath, "--payload", "quorum-test"))
	err = run(t, dir, "verify", "--proofPath", proofPath, "--payload", "goodbye")
	require.True(t, errors.Is(err, verify.ErrInvalidProof))
}

func TestVerifyOutOfRangeIndex(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run(t, dir, "keygen", "--threshold", "2", "--members", "3"))
	require.NoError(t, run(t, dir, "sign",
		"--keySetPath", filepath.Join(dir, "keyset.json"),
		"--secretSharePath", filepath.Join(dir, "share-0.json"),
		"--index", "7",
		"--payload", "quorum-test",
	))
	err := run(t, dir, "verify", "--proofPath", filepath.Join(dir, "proof_share-7.ssz"), "--payload", "quorum-test")
	require.True(t, errors.Is(err, crypto.ErrInvalidIndex))
	require.False(t, errors.Is(err, verify.ErrInvalidProof))
}

func TestKeygenInvalidParameters(t *testing.T) {
	dir := t.TempDir()
	require.Error(t, run(t, dir, "keygen", "--threshold", "4", "--members", "3"))
	require.Error(t, run(t, dir, "keygen", "--threshold", "0", "--members", "3"))
}
