package combine

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ssvlabs/ssv-quorum-proof/cli/flags"
	cli_utils "github.com/ssvlabs/ssv-quorum-proof/cli/utils"
	"github.com/ssvlabs/ssv-quorum-proof/pkgs/proof"
	"github.com/ssvlabs/ssv-quorum-proof/pkgs/quorum"
	"github.com/ssvlabs/ssv-quorum-proof/pkgs/wire"
)

func init() {
	flags.SetCombineFlags(Combine)
}

var Combine = &cobra.Command{
	Use:   "combine",
	Short: "Combines a quorum of proof shares into an aggregated proof",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cli_utils.SetViperConfig(cmd); err != nil {
			return err
		}
		if err := flags.BindCombineFlags(cmd); err != nil {
			return err
		}
		logger, err := cli_utils.SetGlobalLogger(cmd, "quorum-combine")
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		keySet, err := cli_utils.LoadKeySet(flags.KeySetPath)
		if err != nil {
			return err
		}
		shares := make([]*proof.ProofShare, 0, len(flags.ProofSharePaths))
		for _, path := range flags.ProofSharePaths {
			env, err := cli_utils.ReadEnvelope(path)
			if err != nil {
				return err
			}
			share, err := env.ProofShare()
			if err != nil {
				logger.Warn("⚠️ skipping proof share", zap.String("path", path), zap.Error(err))
				continue
			}
			shares = append(shares, share)
		}
		collector, err := quorum.NewCollector(logger, keySet, flags.Payload)
		if err != nil {
			return err
		}
		added, err := collector.AddBatch(cmd.Context(), shares)
		if err != nil {
			logger.Warn("⚠️ some proof shares were rejected", zap.Error(err))
		}
		logger.Info("📥 proof shares collected", zap.Int("added", added), zap.Uint64s("indices", collector.Indices()))
		aggregated, err := collector.Combine()
		if err != nil {
			return err
		}
		env, err := wire.SealAggregatedProof(wire.NewID(), aggregated, cli_utils.Version(cmd))
		if err != nil {
			return err
		}
		if err := cli_utils.WriteResults(logger, "aggregated_proof", aggregated, env); err != nil {
			return err
		}
		logger.Info("✅ aggregated proof created", zap.Object("proof", aggregated))
		return nil
	},
}
