package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bloxapp/ssv/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ssvlabs/ssv-quorum-proof/cli/flags"
	"github.com/ssvlabs/ssv-quorum-proof/pkgs/crypto"
	"github.com/ssvlabs/ssv-quorum-proof/pkgs/dealer"
	"github.com/ssvlabs/ssv-quorum-proof/pkgs/utils"
	"github.com/ssvlabs/ssv-quorum-proof/pkgs/wire"
)

// SetViperConfig reads a yaml config file if provided
func SetViperConfig(cmd *cobra.Command) error {
	if err := viper.BindPFlag("configPath", cmd.PersistentFlags().Lookup("configPath")); err != nil {
		return err
	}
	configPath := viper.GetString("configPath")
	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return err
		}
		viper.SetConfigType("yaml")
		viper.SetConfigFile(configPath)
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return err
			}
		}
		fmt.Printf("🗄️ config yaml file found at %s, using it \n", configPath)
		return nil
	}
	fmt.Println("⚠️ config file was not provided, using flag parameters")
	return nil
}

// SetGlobalLogger creates a logger
func SetGlobalLogger(cmd *cobra.Command, name string) (*zap.Logger, error) {
	// If the log file doesn't exist, create it
	f, err := os.OpenFile(flags.LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	if err := logging.SetGlobalLogger(flags.LogLevel, flags.LogLevelFormat, flags.LogFormat, &logging.LogFileOptions{FileName: flags.LogFilePath}); err != nil {
		return nil, fmt.Errorf("logging.SetGlobalLogger: %w", err)
	}
	logger := zap.L().Named(name)
	return logger, nil
}

// Version returns the application version set on the root command
func Version(cmd *cobra.Command) []byte {
	return []byte(cmd.Root().Version)
}

// LoadKeySet reads a public key set json file
func LoadKeySet(path string) (*crypto.PublicKeySet, error) {
	keySet := &crypto.PublicKeySet{}
	if err := utils.ReadJSON(path, keySet); err != nil {
		return nil, fmt.Errorf("😥 Failed to read public key set from %s: %w", path, err)
	}
	return keySet, nil
}

// LoadShare reads a member secret key share json file
func LoadShare(path string) (*dealer.Share, error) {
	share := &dealer.Share{}
	if err := utils.ReadJSON(path, share); err != nil {
		return nil, fmt.Errorf("😥 Failed to read secret key share from %s: %w", path, err)
	}
	if share.SecretKeyShare == nil {
		return nil, fmt.Errorf("😥 secret key share file %s has no key", path)
	}
	return share, nil
}

// WriteEnvelope stores the envelope ssz encoded
func WriteEnvelope(path string, env *wire.Envelope) error {
	byts, err := env.MarshalSSZ()
	if err != nil {
		return err
	}
	return os.WriteFile(path, byts, 0o600)
}

// ReadEnvelope reads an ssz encoded envelope
func ReadEnvelope(path string) (*wire.Envelope, error) {
	byts, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	env := &wire.Envelope{}
	if err := env.UnmarshalSSZ(byts); err != nil {
		return nil, fmt.Errorf("😥 Failed to decode envelope %s: %w", path, err)
	}
	return env, nil
}

// WriteResults stores data as json and the envelope as ssz under the output path
func WriteResults(logger *zap.Logger, name string, data any, env *wire.Envelope) error {
	jsonPath := filepath.Join(flags.OutputPath, name+".json")
	if err := utils.WriteJSON(jsonPath, data); err != nil {
		return err
	}
	sszPath := filepath.Join(flags.OutputPath, name+".ssz")
	if err := WriteEnvelope(sszPath, env); err != nil {
		return err
	}
	logger.Info("💾 results written", zap.String("json", jsonPath), zap.String("ssz", sszPath))
	return nil
}
