// Package quorum collects proof shares from distinct members until the
// signing threshold is met and combines them into an aggregated proof. It
// relies only on the verification contract of the proof package.
package quorum

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/herumi/bls-eth-go-binary/bls"
	"github.com/pkg/errors"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/ssvlabs/ssv-quorum-proof/pkgs/crypto"
	"github.com/ssvlabs/ssv-quorum-proof/pkgs/proof"
)

var (
	ErrKeySetMismatch  = errors.New("proof share is for a different public key set")
	ErrInvalidShare    = errors.New("invalid proof share")
	ErrNotEnoughShares = errors.New("not enough proof shares")
	ErrMissingKeySet   = errors.New("collector needs a public key set")
)

// Collector gathers verified proof shares over a single payload.
type Collector struct {
	logger  *zap.Logger
	keySet  *crypto.PublicKeySet
	payload []byte

	mtx    sync.Mutex
	shares map[uint64]*proof.ProofShare
}

func NewCollector(logger *zap.Logger, keySet *crypto.PublicKeySet, payload []byte) (*Collector, error) {
	if keySet == nil || keySet.Threshold() == 0 {
		return nil, ErrMissingKeySet
	}
	return &Collector{
		logger:  logger.With(zap.Stringer("group", keySet.PublicKey())),
		keySet:  keySet,
		payload: append([]byte{}, payload...),
		shares:  make(map[uint64]*proof.ProofShare),
	}, nil
}

// Add verifies share and stores it. It returns false without an error when a
// share for the same index was already collected.
func (c *Collector) Add(share *proof.ProofShare) (bool, error) {
	if err := c.check(share); err != nil {
		return false, err
	}
	return c.store(share), nil
}

// AddBatch verifies shares concurrently and stores the valid ones. It returns
// how many shares were newly stored, and the rejections joined together.
func (c *Collector) AddBatch(ctx context.Context, shares []*proof.ProofShare) (int, error) {
	var (
		mtx   sync.Mutex
		added int
	)
	p := pool.New().WithContext(ctx).WithMaxGoroutines(runtime.NumCPU())
	for _, share := range shares {
		share := share
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := c.check(share); err != nil {
				return err
			}
			if c.store(share) {
				mtx.Lock()
				added++
				mtx.Unlock()
			}
			return nil
		})
	}
	err := p.Wait()
	return added, err
}

func (c *Collector) check(share *proof.ProofShare) error {
	if share == nil || !c.keySet.Equal(share.PublicKeySet) {
		return ErrKeySetMismatch
	}
	ok, err := share.Verify(c.payload)
	if err != nil {
		c.logger.Debug("rejected proof share", zap.Object("share", share), zap.Error(err))
		return err
	}
	if !ok {
		c.logger.Debug("rejected proof share", zap.Object("share", share))
		return errors.Wrapf(ErrInvalidShare, "index %d", share.Index)
	}
	return nil
}

func (c *Collector) store(share *proof.ProofShare) bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if _, ok := c.shares[share.Index]; ok {
		c.logger.Debug("duplicate proof share", zap.Uint64("index", share.Index))
		return false
	}
	c.shares[share.Index] = share
	c.logger.Debug("collected proof share",
		zap.Uint64("index", share.Index),
		zap.Int("collected", len(c.shares)),
		zap.Int("threshold", c.keySet.Threshold()))
	return true
}

// Ready reports whether enough shares were collected to combine them.
func (c *Collector) Ready() bool {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return len(c.shares) >= c.keySet.Threshold()
}

// Indices returns the collected member indices in ascending order.
func (c *Collector) Indices() []uint64 {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	indices := make([]uint64, 0, len(c.shares))
	for index := range c.shares {
		indices = append(indices, index)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })
	return indices
}

// Combine interpolates the group signature from the threshold lowest indexed
// shares and returns it as an aggregated proof, verified against the group
// public key.
func (c *Collector) Combine() (*proof.AggregatedProof, error) {
	threshold := c.keySet.Threshold()
	indices := c.Indices()
	if len(indices) < threshold {
		return nil, errors.Wrapf(ErrNotEnoughShares, "have %d, need %d", len(indices), threshold)
	}
	indices = indices[:threshold]

	c.mtx.Lock()
	sigVec := make([]bls.Sign, 0, threshold)
	idVec := make([]bls.ID, 0, threshold)
	for _, index := range indices {
		blsID := bls.ID{}
		if err := blsID.SetDecString(fmt.Sprintf("%d", index+1)); err != nil {
			c.mtx.Unlock()
			return nil, err
		}
		sig := bls.Sign{}
		if err := sig.Deserialize(c.shares[index].SignatureShare.Bytes()); err != nil {
			c.mtx.Unlock()
			return nil, err
		}
		idVec = append(idVec, blsID)
		sigVec = append(sigVec, sig)
	}
	c.mtx.Unlock()

	recovered := bls.Sign{}
	if err := recovered.Recover(sigVec, idVec); err != nil {
		return nil, errors.Wrap(err, "could not recover signature from shares")
	}
	signature, err := crypto.SignatureFromBytes(recovered.Serialize())
	if err != nil {
		return nil, err
	}
	p := &proof.AggregatedProof{
		PublicKey: c.keySet.PublicKey(),
		Signature: signature,
	}
	if !p.Verify(c.payload) {
		return nil, fmt.Errorf("signature recovered from shares is invalid: sig %x", recovered.Serialize())
	}
	c.logger.Info("combined proof shares", zap.Any("indices", indices))
	return p, nil
}
