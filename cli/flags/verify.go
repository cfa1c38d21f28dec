package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// verify flags
var (
	ProofPath string
)

func SetVerifyFlags(cmd *cobra.Command) {
	SetBaseFlags(cmd)
	ProofPathFlag(cmd)
	PayloadFlag(cmd)
}

// BindVerifyFlags binds flags to yaml config parameters for the verification
func BindVerifyFlags(cmd *cobra.Command) error {
	if err := BindBaseFlags(cmd); err != nil {
		return err
	}
	if err := viper.BindPFlag("proofPath", cmd.PersistentFlags().Lookup("proofPath")); err != nil {
		return err
	}
	if err := bindPayload(cmd); err != nil {
		return err
	}
	var err error
	ProofPath, err = cleanPath("proofPath", viper.GetString("proofPath"))
	return err
}
