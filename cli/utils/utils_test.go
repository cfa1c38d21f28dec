package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssvlabs/ssv-quorum-proof/cli/flags"
	"github.com/ssvlabs/ssv-quorum-proof/pkgs/dealer"
	"github.com/ssvlabs/ssv-quorum-proof/pkgs/proof"
	"github.com/ssvlabs/ssv-quorum-proof/pkgs/utils"
	"github.com/ssvlabs/ssv-quorum-proof/pkgs/wire"
)

func TestSetGlobalLogger(t *testing.T) {
	flags.LogLevel = "debug"
	flags.LogFormat = "console"
	flags.LogLevelFormat = "capital"
	flags.LogFilePath = filepath.Join(t.TempDir(), "debug.log")

	logger, err := SetGlobalLogger(nil, "utils-tests")
	require.NoError(t, err)
	require.NotNil(t, logger)
	require.FileExists(t, flags.LogFilePath)

	flags.LogLevel = "loud"
	_, err = SetGlobalLogger(nil, "utils-tests")
	require.Error(t, err)
}

func TestKeySetAndEnvelopeFiles(t *testing.T) {
	dir := t.TempDir()
	ks, err := dealer.Generate(2, 3)
	require.NoError(t, err)

	keySetPath := filepath.Join(dir, "keyset.json")
	require.NoError(t, utils.WriteJSON(keySetPath, ks.PublicKeySet))
	keySet, err := LoadKeySet(keySetPath)
	require.NoError(t, err)
	require.True(t, keySet.Equal(ks.PublicKeySet))

	sharePath := filepath.Join(dir, "share-1.json")
	require.NoError(t, utils.WriteJSON(sharePath, ks.Shares[1]))
	share, err := LoadShare(sharePath)
	require.NoError(t, err)
	require.Equal(t, uint64(1), share.Index)

	p := proof.NewProofShare(keySet, share.Index, share.SecretKeyShare, []byte("payload"))
	env, err := wire.SealProofShare(wire.NewID(), p, []byte("v0.1.0"))
	require.NoError(t, err)
	envPath := filepath.Join(dir, "proof_share-1.ssz")
	require.NoError(t, WriteEnvelope(envPath, env))
	read, err := ReadEnvelope(envPath)
	require.NoError(t, err)
	opened, err := read.ProofShare()
	require.NoError(t, err)
	require.True(t, opened.Equal(p))

	_, err = LoadShare(keySetPath)
	require.Error(t, err)
}
