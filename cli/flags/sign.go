package flags

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ssvlabs/ssv-quorum-proof/pkgs/utils"
)

// sign flags
var (
	KeySetPath      string
	SecretSharePath string
	Index           uint64
	IndexSet        bool
	Payload         []byte
)

func SetSignFlags(cmd *cobra.Command) {
	SetBaseFlags(cmd)
	KeySetPathFlag(cmd)
	SecretSharePathFlag(cmd)
	IndexFlag(cmd)
	PayloadFlag(cmd)
}

// BindSignFlags binds flags to yaml config parameters for signing a proof share
func BindSignFlags(cmd *cobra.Command) error {
	if err := BindBaseFlags(cmd); err != nil {
		return err
	}
	if err := viper.BindPFlag("keySetPath", cmd.PersistentFlags().Lookup("keySetPath")); err != nil {
		return err
	}
	if err := viper.BindPFlag("secretSharePath", cmd.PersistentFlags().Lookup("secretSharePath")); err != nil {
		return err
	}
	if err := viper.BindPFlag("index", cmd.PersistentFlags().Lookup("index")); err != nil {
		return err
	}
	if err := bindPayload(cmd); err != nil {
		return err
	}
	var err error
	if KeySetPath, err = cleanPath("keySetPath", viper.GetString("keySetPath")); err != nil {
		return err
	}
	if SecretSharePath, err = cleanPath("secretSharePath", viper.GetString("secretSharePath")); err != nil {
		return err
	}
	Index = viper.GetUint64("index")
	IndexSet = viper.IsSet("index")
	return nil
}

func bindPayload(cmd *cobra.Command) error {
	if err := viper.BindPFlag("payload", cmd.PersistentFlags().Lookup("payload")); err != nil {
		return err
	}
	var err error
	Payload, err = utils.ParsePayload(viper.GetString("payload"))
	if err != nil {
		return fmt.Errorf("😥 Failed to parse payload: %s", err)
	}
	return nil
}

func cleanPath(key, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("😥 %s flag is required", key)
	}
	path = filepath.Clean(path)
	if strings.Contains(path, "..") {
		return "", fmt.Errorf("😥 %s cant contain traversal", key)
	}
	return path, nil
}
