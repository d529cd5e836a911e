package threshold

import (
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"
)

// shareMessage is the wire representation of one participant's share of a
// secret, sent to every other participant during a JVRSS round. Simulating
// the CBOR round trip even within a single process keeps the share's
// lifetime honest: it exists as serialized bytes in flight, not just as a
// live *big.Int on someone's stack.
type shareMessage struct {
	From  int    `cbor:"from"`
	To    int    `cbor:"to"`
	Share []byte `cbor:"share"`
}

func marshalShare(from, to int, value *big.Int) ([]byte, error) {
	msg := shareMessage{From: from, To: to, Share: value.Bytes()}
	data, err := cbor.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("threshold: marshal share: %w", err)
	}
	return data, nil
}

func unmarshalShare(data []byte) (from, to int, value *big.Int, err error) {
	var msg shareMessage
	if err := cbor.Unmarshal(data, &msg); err != nil {
		return 0, 0, nil, fmt.Errorf("threshold: unmarshal share: %w", err)
	}
	return msg.From, msg.To, new(big.Int).SetBytes(msg.Share), nil
}
