package market

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/crypto"
	cid "github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/market-actors/actors/builtin/verifreg"
)

// PieceCIDPrefix is the only CID shape allowed for a deal's piece: a
// fil-commitment-unsealed over a sha2-256-trunc254-padded multihash.
var PieceCIDPrefix = cid.Prefix{
	Version:  1,
	Codec:    cid.FilCommitmentUnsealed,
	MhType:   mh.SHA2_256_TRUNC254_PADDED,
	MhLength: 32,
}

// DealLabel is an arbitrary client chosen label for a deal: either a utf8
// string or a raw byte sequence, never both. The zero value is the empty
// string.
type DealLabel struct {
	bs        []byte
	notString bool
}

var EmptyDealLabel = DealLabel{}

func NewLabelFromString(s string) (DealLabel, error) {
	if len(s) > DealMaxLabelSize {
		return EmptyDealLabel, xerrors.Errorf("provided string is too large to be a label (%d), max length (%d)", len(s), DealMaxLabelSize)
	}
	if !utf8.ValidString(s) {
		return EmptyDealLabel, xerrors.Errorf("provided string is invalid utf8")
	}
	return DealLabel{
		bs:        []byte(s),
		notString: false,
	}, nil
}

func NewLabelFromBytes(b []byte) (DealLabel, error) {
	if len(b) > DealMaxLabelSize {
		return EmptyDealLabel, xerrors.Errorf("provided bytes are too large to be a label (%d), max length (%d)", len(b), DealMaxLabelSize)
	}
	return DealLabel{
		bs:        b,
		notString: true,
	}, nil
}

func (label DealLabel) IsString() bool {
	return !label.notString
}

func (label DealLabel) IsBytes() bool {
	return label.notString
}

func (label DealLabel) ToString() (string, error) {
	if !label.IsString() {
		return "", xerrors.Errorf("label is not string")
	}
	return string(label.bs), nil
}

func (label DealLabel) ToBytes() ([]byte, error) {
	if !label.IsBytes() {
		return nil, xerrors.Errorf("label is not bytes")
	}
	return label.bs, nil
}

func (label DealLabel) Length() int {
	return len(label.bs)
}

func (l DealLabel) Equals(o DealLabel) bool {
	return bytes.Equal(l.bs, o.bs) && l.notString == o.notString
}

func (label *DealLabel) MarshalCBOR(w io.Writer) error {
	if label == nil {
		return xerrors.Errorf("cannot marshal nil deal label")
	}
	if label.IsString() && !utf8.Valid(label.bs) {
		return xerrors.Errorf("label is not valid utf8")
	}
	majorType := byte(cbg.MajByteString)
	if label.IsString() {
		majorType = cbg.MajTextString
	}
	if err := cbg.WriteMajorTypeHeader(w, majorType, uint64(len(label.bs))); err != nil {
		return err
	}
	_, err := w.Write(label.bs)
	return err
}

func (label *DealLabel) UnmarshalCBOR(br io.Reader) error {
	if label == nil {
		return xerrors.Errorf("cannot unmarshal into nil deal label")
	}

	maj, length, err := cbg.CborReadHeader(br)
	if err != nil {
		return err
	}
	if maj != cbg.MajTextString && maj != cbg.MajByteString {
		return fmt.Errorf("unexpected major tag (%d) when unmarshaling deal label", maj)
	}
	if length > cbg.MaxLength {
		return fmt.Errorf("label was too long (%d)", length)
	}
	buf := make([]byte, length)
	_, err = io.ReadAtLeast(br, buf, int(length))
	if err != nil {
		return err
	}
	label.bs = buf
	label.notString = maj != cbg.MajTextString
	if !label.notString && !utf8.Valid(buf) {
		return fmt.Errorf("label string not valid utf8")
	}
	return nil
}

// DealProposal is the immutable terms of a storage deal, fixed once the deal
// is published. Client and Provider always hold ID addresses.
type DealProposal struct {
	PieceCID     cid.Cid
	PieceSize    abi.PaddedPieceSize
	VerifiedDeal bool
	Client       addr.Address
	Provider     addr.Address
	Label        DealLabel
	StartEpoch   abi.ChainEpoch
	EndEpoch     abi.ChainEpoch

	// StoragePricePerEpoch holds the total price divided by the deal
	// duration, not a rate quoted per byte.
	StoragePricePerEpoch abi.TokenAmount
	ProviderCollateral   abi.TokenAmount
	ClientCollateral     abi.TokenAmount
}

// ClientDealProposal is a DealProposal signed by the proposal's client.
type ClientDealProposal struct {
	Proposal        DealProposal
	ClientSignature crypto.Signature
}

func (p *DealProposal) Duration() abi.ChainEpoch {
	return p.EndEpoch - p.StartEpoch
}

func (p *DealProposal) TotalStorageFee() abi.TokenAmount {
	return big.Mul(p.StoragePricePerEpoch, big.NewInt(int64(p.Duration())))
}

func (p *DealProposal) ClientBalanceRequirement() abi.TokenAmount {
	return big.Add(p.ClientCollateral, p.TotalStorageFee())
}

func (p *DealProposal) ProviderBalanceRequirement() abi.TokenAmount {
	return p.ProviderCollateral
}

// Cid returns the canonical fingerprint of the proposal: the CID of its
// serialization. Proposals are deduplicated by this fingerprint, so the
// addresses must already be in ID form when it is taken.
func (p *DealProposal) Cid() (cid.Cid, error) {
	buf := new(bytes.Buffer)
	if err := p.MarshalCBOR(buf); err != nil {
		return cid.Undef, err
	}
	return abi.CidBuilder.Sum(buf.Bytes())
}

const EpochUndefined = abi.ChainEpoch(-1)

// DealState is the mutable settlement state of an activated deal.
type DealState struct {
	// SectorStartEpoch is -1 if not yet included in proven sector.
	SectorStartEpoch abi.ChainEpoch
	// LastUpdatedEpoch is -1 if deal state never updated.
	LastUpdatedEpoch abi.ChainEpoch
	// SlashEpoch is -1 if deal never slashed.
	SlashEpoch abi.ChainEpoch
	// VerifiedClaim is the allocation claimed at activation, or zero for an
	// unverified deal.
	VerifiedClaim verifreg.AllocationID
}
