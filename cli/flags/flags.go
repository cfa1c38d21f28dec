package flags

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Flag names.
const (
	threshold       = "threshold"
	members         = "members"
	keySetPath      = "keySetPath"
	secretSharePath = "secretSharePath"
	index           = "index"
	payload         = "payload"
	proofSharePaths = "proofSharePaths"
	proofPath       = "proofPath"
)

// ThresholdFlag adds threshold flag to the command
func ThresholdFlag(c *cobra.Command) {
	AddPersistentIntFlag(c, threshold, 0, "Number of shares needed to produce an aggregated proof", true)
}

// MembersFlag adds the number of group members flag to the command
func MembersFlag(c *cobra.Command) {
	AddPersistentIntFlag(c, members, 0, "Number of group members holding a secret key share", true)
}

// KeySetPathFlag adds path to the public key set json file
func KeySetPathFlag(c *cobra.Command) {
	AddPersistentStringFlag(c, keySetPath, "", "Path to the public key set json file", true)
}

// SecretSharePathFlag adds path to a member's secret key share json file
func SecretSharePathFlag(c *cobra.Command) {
	AddPersistentStringFlag(c, secretSharePath, "", "Path to the member secret key share json file", true)
}

// IndexFlag adds the member index flag to the command
func IndexFlag(c *cobra.Command) {
	AddPersistentIntFlag(c, index, 0, "Member index, overrides the index stored in the secret share file", false)
}

// PayloadFlag adds the payload to sign or verify, 0x prefixed values are read as hex
func PayloadFlag(c *cobra.Command) {
	AddPersistentStringFlag(c, payload, "", "Payload bytes, 0x prefixed values are decoded as hex", true)
}

// ProofSharePathsFlag adds paths to proof share envelopes
func ProofSharePathsFlag(c *cobra.Command) {
	AddPersistentStringSliceFlag(c, proofSharePaths, []string{}, "Paths to proof share .ssz files", true)
}

// ProofPathFlag adds path to a proof envelope
func ProofPathFlag(c *cobra.Command) {
	AddPersistentStringFlag(c, proofPath, "", "Path to an aggregated proof or proof share .ssz file", true)
}

// AddPersistentStringFlag adds a string flag to the command
func AddPersistentStringFlag(c *cobra.Command, flag, value, description string, isRequired bool) {
	req := ""
	if isRequired {
		req = " (required)"
	}

	c.PersistentFlags().String(flag, value, fmt.Sprintf("%s%s", description, req))

	if isRequired {
		_ = c.MarkPersistentFlagRequired(flag)
	}
}

// AddPersistentIntFlag adds a int flag to the command
func AddPersistentIntFlag(c *cobra.Command, flag string, value uint64, description string, isRequired bool) {
	req := ""
	if isRequired {
		req = " (required)"
	}

	c.PersistentFlags().Uint64(flag, value, fmt.Sprintf("%s%s", description, req))

	if isRequired {
		_ = c.MarkPersistentFlagRequired(flag)
	}
}

// AddPersistentStringSliceFlag adds a string slice flag to the command
func AddPersistentStringSliceFlag(c *cobra.Command, flag string, value []string, description string, isRequired bool) {
	req := ""
	if isRequired {
		req = " (required)"
	}

	c.PersistentFlags().StringSlice(flag, value, fmt.Sprintf("%s%s", description, req))

	if isRequired {
		_ = c.MarkPersistentFlagRequired(flag)
	}
}
