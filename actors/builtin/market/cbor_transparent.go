package market

import (
	"fmt"
	"io"

	"github.com/filecoin-project/go-state-types/abi"
	cbg "github.com/whyrusleeping/cbor-gen"
)

// The deal getter params and single-field returns serialize transparently:
// no tuple wrapper, just the inner value. Hand-written because cbor-gen
// only emits tuple encoders.

func (t *DealQueryParams) MarshalCBOR(w io.Writer) error {
	return cbg.WriteMajorTypeHeader(w, cbg.MajUnsignedInt, uint64(t.ID))
}

func (t *DealQueryParams) UnmarshalCBOR(r io.Reader) error {
	id, err := readTransparentUint(r)
	if err != nil {
		return err
	}
	t.ID = abi.DealID(id)
	return nil
}

func (t *GetDealClientReturn) MarshalCBOR(w io.Writer) error {
	return cbg.WriteMajorTypeHeader(w, cbg.MajUnsignedInt, uint64(t.Client))
}

func (t *GetDealClientReturn) UnmarshalCBOR(r io.Reader) error {
	id, err := readTransparentUint(r)
	if err != nil {
		return err
	}
	t.Client = abi.ActorID(id)
	return nil
}

func (t *GetDealProviderReturn) MarshalCBOR(w io.Writer) error {
	return cbg.WriteMajorTypeHeader(w, cbg.MajUnsignedInt, uint64(t.Provider))
}

func (t *GetDealProviderReturn) UnmarshalCBOR(r io.Reader) error {
	id, err := readTransparentUint(r)
	if err != nil {
		return err
	}
	t.Provider = abi.ActorID(id)
	return nil
}

func (t *GetDealLabelReturn) MarshalCBOR(w io.Writer) error {
	return t.Label.MarshalCBOR(w)
}

func (t *GetDealLabelReturn) UnmarshalCBOR(r io.Reader) error {
	return t.Label.UnmarshalCBOR(r)
}

func (t *GetDealTotalPriceReturn) MarshalCBOR(w io.Writer) error {
	return t.TotalPrice.MarshalCBOR(w)
}

func (t *GetDealTotalPriceReturn) UnmarshalCBOR(r io.Reader) error {
	return t.TotalPrice.UnmarshalCBOR(r)
}

func (t *GetDealClientCollateralReturn) MarshalCBOR(w io.Writer) error {
	return t.Collateral.MarshalCBOR(w)
}

func (t *GetDealClientCollateralReturn) UnmarshalCBOR(r io.Reader) error {
	return t.Collateral.UnmarshalCBOR(r)
}

func (t *GetDealProviderCollateralReturn) MarshalCBOR(w io.Writer) error {
	return t.Collateral.MarshalCBOR(w)
}

func (t *GetDealProviderCollateralReturn) UnmarshalCBOR(r io.Reader) error {
	return t.Collateral.UnmarshalCBOR(r)
}

func (t *GetDealVerifiedReturn) MarshalCBOR(w io.Writer) error {
	return cbg.WriteBool(w, t.Verified)
}

func (t *GetDealVerifiedReturn) UnmarshalCBOR(r io.Reader) error {
	maj, extra, err := cbg.CborReadHeader(r)
	if err != nil {
		return err
	}
	if maj != cbg.MajOther {
		return fmt.Errorf("booleans must be major type 7")
	}
	switch extra {
	case 20:
		t.Verified = false
	case 21:
		t.Verified = true
	default:
		return fmt.Errorf("booleans are either major type 7, value 20 or 21 (got %d)", extra)
	}
	return nil
}

func readTransparentUint(r io.Reader) (uint64, error) {
	maj, extra, err := cbg.CborReadHeader(r)
	if err != nil {
		return 0, err
	}
	if maj != cbg.MajUnsignedInt {
		return 0, fmt.Errorf("wrong type for uint64 field: %d", maj)
	}
	return extra, nil
}
