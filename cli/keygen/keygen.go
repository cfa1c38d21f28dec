package keygen

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ssvlabs/ssv-quorum-proof/cli/flags"
	cli_utils "github.com/ssvlabs/ssv-quorum-proof/cli/utils"
	"github.com/ssvlabs/ssv-quorum-proof/pkgs/dealer"
	"github.com/ssvlabs/ssv-quorum-proof/pkgs/utils"
)

func init() {
	flags.SetKeygenFlags(Keygen)
}

var Keygen = &cobra.Command{
	Use:   "keygen",
	Short: "Deals a threshold key set to a group of members",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cli_utils.SetViperConfig(cmd); err != nil {
			return err
		}
		if err := flags.BindKeygenFlags(cmd); err != nil {
			return err
		}
		logger, err := cli_utils.SetGlobalLogger(cmd, "quorum-keygen")
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
		logger.Info("🪛 Quorum proof", zap.String("Version", cmd.Root().Version))

		keySet, err := dealer.Generate(int(flags.Threshold), int(flags.Members))
		if err != nil {
			return err
		}
		keySetPath := filepath.Join(flags.OutputPath, "keyset.json")
		if err := utils.WriteJSON(keySetPath, keySet.PublicKeySet); err != nil {
			return err
		}
		for _, share := range keySet.Shares {
			path := filepath.Join(flags.OutputPath, fmt.Sprintf("share-%d.json", share.Index))
			if err := utils.WriteJSON(path, share); err != nil {
				return err
			}
		}
		logger.Info("🔑 key set generated",
			zap.Stringer("public_key", keySet.PublicKeySet.PublicKey()),
			zap.Int("threshold", keySet.PublicKeySet.Threshold()),
			zap.Uint64("members", keySet.PublicKeySet.Size()),
			zap.String("path", flags.OutputPath))
		return nil
	},
}
