package rustacartmsgpack

import (
	"bytes"
	"errors"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// BasketBuffer decodes a stream of concatenated msgpack baskets that may arrive
// in arbitrary chunks. Bytes of an incomplete trailing basket stay buffered.
type BasketBuffer struct {
	buf bytes.Buffer
}

func (bb *BasketBuffer) Feed(data []byte) ([]*Basket, error) {
	bb.buf.Write(data)

	var results []*Basket
	for bb.buf.Len() > 0 {
		r := bytes.NewReader(bb.buf.Bytes())
		dec := msgpack.NewDecoder(r)

		v := new(Basket)
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				// not enough data yet
				break
			}
			return results, err
		}
		bb.buf.Next(bb.buf.Len() - r.Len())
		results = append(results, v)
	}
	return results, nil
}

// Pending reports how many bytes are waiting for the rest of a basket.
func (bb *BasketBuffer) Pending() int {
	return bb.buf.Len()
}

// Reset drops any buffered bytes, e.g. after Feed reported a corrupt stream.
func (bb *BasketBuffer) Reset() {
	bb.buf.Reset()
}
