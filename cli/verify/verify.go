package verify

import (
	"fmt"
	"os"

	"github.com/aquasecurity/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ssvlabs/ssv-quorum-proof/cli/flags"
	cli_utils "github.com/ssvlabs/ssv-quorum-proof/cli/utils"
	"github.com/ssvlabs/ssv-quorum-proof/pkgs/wire"
)

// ErrInvalidProof is returned when the proof does not verify the payload
var ErrInvalidProof = errors.New("proof is not valid for the payload")

func init() {
	flags.SetVerifyFlags(Verify)
}

var Verify = &cobra.Command{
	Use:   "verify",
	Short: "Verifies an aggregated proof or a proof share against a payload",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cli_utils.SetViperConfig(cmd); err != nil {
			return err
		}
		if err := flags.BindVerifyFlags(cmd); err != nil {
			return err
		}
		logger, err := cli_utils.SetGlobalLogger(cmd, "quorum-verify")
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		env, err := cli_utils.ReadEnvelope(flags.ProofPath)
		if err != nil {
			return err
		}
		tbl := table.New(os.Stdout)
		var valid bool
		switch env.Type {
		case wire.AggregatedProofType:
			p, err := env.AggregatedProof()
			if err != nil {
				return err
			}
			valid = p.Verify(flags.Payload)
			tbl.SetHeaders("Kind", "Public Key", "Valid")
			tbl.AddRow(env.Type.String(), p.PublicKey.String(), fmt.Sprintf("%t", valid))
		case wire.ProofShareType:
			p, err := env.ProofShare()
			if err != nil {
				return err
			}
			valid, err = p.Verify(flags.Payload)
			if err != nil {
				return errors.Wrapf(err, "proof share verification, index %d", p.Index)
			}
			tbl.SetHeaders("Kind", "Group Public Key", "Index", "Valid")
			tbl.AddRow(env.Type.String(), p.PublicKey().String(), fmt.Sprintf("%d", p.Index), fmt.Sprintf("%t", valid))
		default:
			return errors.Wrapf(wire.ErrWrongType, "envelope type %d", env.Type)
		}
		tbl.Render()

		if !valid {
			return ErrInvalidProof
		}
		logger.Info("✅ proof is valid", zap.String("kind", env.Type.String()))
		return nil
	},
}
