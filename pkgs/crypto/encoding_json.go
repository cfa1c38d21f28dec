package crypto

import (
	"encoding/hex"
	"encoding/json"
)

func (p PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(p.raw[:]))
}

func (p *PublicKey) UnmarshalJSON(data []byte) error {
	b, err := unmarshalHex(data)
	if err != nil {
		return err
	}
	pk, err := PublicKeyFromBytes(b)
	if err != nil {
		return err
	}
	*p = pk
	return nil
}

func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(s.raw[:]))
}

func (s *Signature) UnmarshalJSON(data []byte) error {
	b, err := unmarshalHex(data)
	if err != nil {
		return err
	}
	sig, err := SignatureFromBytes(b)
	if err != nil {
		return err
	}
	*s = sig
	return nil
}

func (s SignatureShare) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(s.raw[:]))
}

func (s *SignatureShare) UnmarshalJSON(data []byte) error {
	b, err := unmarshalHex(data)
	if err != nil {
		return err
	}
	sig, err := SignatureShareFromBytes(b)
	if err != nil {
		return err
	}
	*s = sig
	return nil
}

func (k *SecretKeyShare) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(k.Bytes()))
}

func (k *SecretKeyShare) UnmarshalJSON(data []byte) error {
	b, err := unmarshalHex(data)
	if err != nil {
		return err
	}
	sk, err := deserializeSecretKey(b)
	if err != nil {
		return err
	}
	k.sk = sk
	return nil
}

type publicKeySetJSON struct {
	Commitments []PublicKey `json:"commitments"`
	Size        uint64      `json:"size"`
}

func (s *PublicKeySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(publicKeySetJSON{
		Commitments: s.commitments,
		Size:        s.size,
	})
}

func (s *PublicKeySet) UnmarshalJSON(data []byte) error {
	var raw publicKeySetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := NewPublicKeySet(raw.Commitments, raw.Size)
	if err != nil {
		return err
	}
	*s = *decoded
	return nil
}

func unmarshalHex(data []byte) ([]byte, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, malformed("cant decode hex: %s", err)
	}
	return b, nil
}
