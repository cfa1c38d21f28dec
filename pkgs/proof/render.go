package proof

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

func (p AggregatedProof) String() string {
	return fmt.Sprintf("AggregatedProof { public_key: %s, signature: %s }", p.PublicKey, p.Signature)
}

func (p AggregatedProof) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("public_key", p.PublicKey.String())
	enc.AddString("signature", p.Signature.String())
	return nil
}

// String renders the group public key and the index only. The key set
// commitments and the signature share are left out of any log output.
func (p ProofShare) String() string {
	return fmt.Sprintf("ProofShare { public_key: %s, index: %d, .. }", p.groupKey(), p.Index)
}

func (p ProofShare) GoString() string {
	return p.String()
}

func (p ProofShare) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("public_key", p.groupKey())
	enc.AddUint64("index", p.Index)
	return nil
}

func (p ProofShare) groupKey() string {
	if p.PublicKeySet == nil {
		return "<nil>"
	}
	return p.PublicKeySet.PublicKey().String()
}
