package flags

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ssvlabs/ssv-quorum-proof/pkgs/crypto"
)

// keygen flags
var (
	Threshold uint64
	Members   uint64
)

func SetKeygenFlags(cmd *cobra.Command) {
	SetBaseFlags(cmd)
	ThresholdFlag(cmd)
	MembersFlag(cmd)
}

// BindKeygenFlags binds flags to yaml config parameters for the key set generation
func BindKeygenFlags(cmd *cobra.Command) error {
	if err := BindBaseFlags(cmd); err != nil {
		return err
	}
	if err := viper.BindPFlag("threshold", cmd.PersistentFlags().Lookup("threshold")); err != nil {
		return err
	}
	if err := viper.BindPFlag("members", cmd.PersistentFlags().Lookup("members")); err != nil {
		return err
	}
	Threshold = viper.GetUint64("threshold")
	Members = viper.GetUint64("members")
	if Threshold == 0 {
		return fmt.Errorf("😥 threshold should be at least 1")
	}
	if Members < Threshold || Members > crypto.MaxGroupSize {
		return fmt.Errorf("😥 members should be between threshold (%d) and %d, got %d", Threshold, crypto.MaxGroupSize, Members)
	}
	return nil
}
