package flags

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// combine flags
var (
	ProofSharePaths []string
)

func SetCombineFlags(cmd *cobra.Command) {
	SetBaseFlags(cmd)
	KeySetPathFlag(cmd)
	ProofSharePathsFlag(cmd)
	PayloadFlag(cmd)
}

// BindCombineFlags binds flags to yaml config parameters for combining proof shares
func BindCombineFlags(cmd *cobra.Command) error {
	if err := BindBaseFlags(cmd); err != nil {
		return err
	}
	if err := viper.BindPFlag("keySetPath", cmd.PersistentFlags().Lookup("keySetPath")); err != nil {
		return err
	}
	if err := viper.BindPFlag("proofSharePaths", cmd.PersistentFlags().Lookup("proofSharePaths")); err != nil {
		return err
	}
	if err := bindPayload(cmd); err != nil {
		return err
	}
	var err error
	if KeySetPath, err = cleanPath("keySetPath", viper.GetString("keySetPath")); err != nil {
		return err
	}
	ProofSharePaths = ProofSharePaths[:0]
	for _, path := range viper.GetStringSlice("proofSharePaths") {
		clean, err := cleanPath("proofSharePaths", path)
		if err != nil {
			return err
		}
		ProofSharePaths = append(ProofSharePaths, clean)
	}
	if len(ProofSharePaths) == 0 {
		return fmt.Errorf("😥 proofSharePaths flag is required")
	}
	return nil
}
