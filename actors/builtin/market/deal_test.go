package market_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cbg "github.com/whyrusleeping/cbor-gen"

	"github.com/filecoin-project/market-actors/actors/builtin/market"
)

func TestDealLabel(t *testing.T) {
	t.Run("the zero value is an empty string", func(t *testing.T) {
		label := market.EmptyDealLabel
		assert.True(t, label.IsString())
		assert.False(t, label.IsBytes())
		s, err := label.ToString()
		require.NoError(t, err)
		assert.Equal(t, "", s)
		assert.Equal(t, 0, label.Length())
	})

	t.Run("string labels round-trip through CBOR", func(t *testing.T) {
		label, err := market.NewLabelFromString("i am a label, turn me into cbor maj typ 3 plz")
		require.NoError(t, err)

		buf := new(bytes.Buffer)
		require.NoError(t, label.MarshalCBOR(buf))
		assert.Equal(t, byte(cbg.MajTextString), buf.Bytes()[0]>>5)

		var out market.DealLabel
		require.NoError(t, out.UnmarshalCBOR(buf))
		assert.True(t, label.Equals(out))
		assert.True(t, out.IsString())
	})

	t.Run("byte labels round-trip through CBOR", func(t *testing.T) {
		label, err := market.NewLabelFromBytes([]byte{0xca, 0xfe, 0xb0, 0x0a})
		require.NoError(t, err)

		buf := new(bytes.Buffer)
		require.NoError(t, label.MarshalCBOR(buf))
		assert.Equal(t, byte(cbg.MajByteString), buf.Bytes()[0]>>5)

		var out market.DealLabel
		require.NoError(t, out.UnmarshalCBOR(buf))
		assert.True(t, label.Equals(out))
		assert.True(t, out.IsBytes())
	})

	t.Run("a string and byte label with the same payload differ", func(t *testing.T) {
		asString, err := market.NewLabelFromString("payload")
		require.NoError(t, err)
		asBytes, err := market.NewLabelFromBytes([]byte("payload"))
		require.NoError(t, err)
		assert.False(t, asString.Equals(asBytes))
	})

	t.Run("rejects oversized labels", func(t *testing.T) {
		_, err := market.NewLabelFromString(strings.Repeat("x", market.DealMaxLabelSize+1))
		assert.Error(t, err)
		_, err = market.NewLabelFromBytes(make([]byte, market.DealMaxLabelSize+1))
		assert.Error(t, err)

		// The boundary itself is fine.
		_, err = market.NewLabelFromString(strings.Repeat("x", market.DealMaxLabelSize))
		assert.NoError(t, err)
	})

	t.Run("rejects invalid utf8 strings", func(t *testing.T) {
		_, err := market.NewLabelFromString(string([]byte{0xde, 0xad}))
		assert.Error(t, err)

		// But the same payload is acceptable as bytes.
		_, err = market.NewLabelFromBytes([]byte{0xde, 0xad})
		assert.NoError(t, err)
	})

	t.Run("rejects a text-tagged cbor payload with invalid utf8", func(t *testing.T) {
		buf := new(bytes.Buffer)
		require.NoError(t, cbg.WriteMajorTypeHeader(buf, cbg.MajTextString, 2))
		buf.Write([]byte{0xde, 0xad})

		var out market.DealLabel
		assert.Error(t, out.UnmarshalCBOR(buf))
	})

	t.Run("rejects non-string cbor major types", func(t *testing.T) {
		buf := new(bytes.Buffer)
		require.NoError(t, cbg.WriteMajorTypeHeader(buf, cbg.MajUnsignedInt, 42))

		var out market.DealLabel
		assert.Error(t, out.UnmarshalCBOR(buf))
	})
}

func TestDealProposalHelpers(t *testing.T) {
	proposal := market.DealProposal{
		StartEpoch:           100,
		EndEpoch:             1100,
		StoragePricePerEpoch: abi.NewTokenAmount(3),
		ProviderCollateral:   abi.NewTokenAmount(50),
		ClientCollateral:     abi.NewTokenAmount(70),
	}

	assert.EqualValues(t, 1000, proposal.Duration())
	assert.Equal(t, abi.NewTokenAmount(3000), proposal.TotalStorageFee())
	assert.Equal(t, abi.NewTokenAmount(3070), proposal.ClientBalanceRequirement())
	assert.Equal(t, abi.NewTokenAmount(50), proposal.ProviderBalanceRequirement())
}
