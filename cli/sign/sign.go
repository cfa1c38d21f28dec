package sign

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ssvlabs/ssv-quorum-proof/cli/flags"
	cli_utils "github.com/ssvlabs/ssv-quorum-proof/cli/utils"
	"github.com/ssvlabs/ssv-quorum-proof/pkgs/proof"
	"github.com/ssvlabs/ssv-quorum-proof/pkgs/wire"
)

func init() {
	flags.SetSignFlags(Sign)
}

var Sign = &cobra.Command{
	Use:   "sign",
	Short: "Signs a payload with a member secret key share",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cli_utils.SetViperConfig(cmd); err != nil {
			return err
		}
		if err := flags.BindSignFlags(cmd); err != nil {
			return err
		}
		logger, err := cli_utils.SetGlobalLogger(cmd, "quorum-sign")
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		keySet, err := cli_utils.LoadKeySet(flags.KeySetPath)
		if err != nil {
			return err
		}
		share, err := cli_utils.LoadShare(flags.SecretSharePath)
		if err != nil {
			return err
		}
		index := share.Index
		if flags.IndexSet {
			index = flags.Index
		}
		proofShare := proof.NewProofShare(keySet, index, share.SecretKeyShare, flags.Payload)
		// a share from the wrong key set or index is still written, verify reports it
		if ok, err := proofShare.Verify(flags.Payload); err != nil || !ok {
			logger.Warn("⚠️ proof share does not verify against the key set", zap.Object("proof_share", proofShare), zap.Error(err))
		}
		env, err := wire.SealProofShare(wire.NewID(), proofShare, cli_utils.Version(cmd))
		if err != nil {
			return err
		}
		if err := cli_utils.WriteResults(logger, fmt.Sprintf("proof_share-%d", index), proofShare, env); err != nil {
			return err
		}
		logger.Info("✍️ proof share created", zap.Object("proof_share", proofShare))
		return nil
	},
}
