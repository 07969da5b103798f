package testing

import (
	addr "github.com/filecoin-project/go-address"
	cid "github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
)

func NewIDAddr(t testingT, id uint64) addr.Address {
	address, err := addr.NewIDAddress(id)
	if err != nil {
		t.Fatal(err)
	}
	return address
}

func NewSECP256K1Addr(t testingT, pubkey string) addr.Address {
	// the pubkey of an address is its hash, so just make a fake here
	address, err := addr.NewSecp256k1Address([]byte(pubkey))
	if err != nil {
		t.Fatal(err)
	}
	return address
}

func NewBLSAddr(t testingT, seed int64) addr.Address {
	buf := make([]byte, addr.BlsPublicKeyBytes)
	buf[0] = byte(seed)
	buf[1] = byte(seed >> 8)
	buf[2] = byte(seed >> 16)
	buf[3] = byte(seed >> 24)
	address, err := addr.NewBLSAddress(buf)
	if err != nil {
		t.Fatal(err)
	}
	return address
}

func NewActorAddr(t testingT, data string) addr.Address {
	address, err := addr.NewActorAddress([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	return address
}

// MakeCID creates a new CID from input with the given prefix, or a raw
// blake2b CID when prefix is nil.
func MakeCID(input string, prefix *cid.Prefix) cid.Cid {
	data := []byte(input)
	if prefix == nil {
		c, err := abiCidBuilder.Sum(data)
		if err != nil {
			panic(err)
		}
		return c
	}
	c, err := prefix.Sum(data)
	if err != nil {
		panic(err)
	}
	return c
}

var abiCidBuilder = cid.V1Builder{Codec: cid.DagCBOR, MhType: mh.BLAKE2B_MIN + 31}

type testingT interface {
	Fatal(args ...interface{})
}
