package cli

import (
	"log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ssvlabs/ssv-quorum-proof/cli/combine"
	"github.com/ssvlabs/ssv-quorum-proof/cli/keygen"
	"github.com/ssvlabs/ssv-quorum-proof/cli/sign"
	"github.com/ssvlabs/ssv-quorum-proof/cli/verify"
)

func init() {
	RootCmd.AddCommand(keygen.Keygen)
	RootCmd.AddCommand(sign.Sign)
	RootCmd.AddCommand(combine.Combine)
	RootCmd.AddCommand(verify.Verify)
}

// RootCmd represents the root command of quorum proof CLI
var RootCmd = &cobra.Command{
	Use:     "quorum-proof",
	Short:   "CLI for producing and verifying threshold BLS quorum agreement proofs",
	Version: "v0.1.0",
}

// Execute executes the root command
func Execute(appName, version string) {
	RootCmd.Short = appName
	RootCmd.Version = version

	if err := RootCmd.Execute(); err != nil {
		log.Fatal("failed to execute root command", zap.Error(err))
	}
}
