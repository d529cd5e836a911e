package bitcoin

import "encoding/binary"

// Varint encodes value in Bitcoin's variable-length integer format.
func Varint(value uint64) []byte {
	switch {
	case value <= 0xfc:
		return []byte{byte(value)}
	case value <= 0xffff:
		out := make([]byte, 3)
		out[0] = 0xfd
		binary.LittleEndian.PutUint16(out[1:], uint16(value))
		return out
	case value <= 0xffffffff:
		out := make([]byte, 5)
		out[0] = 0xfe
		binary.LittleEndian.PutUint32(out[1:], uint32(value))
		return out
	default:
		out := make([]byte, 9)
		out[0] = 0xff
		binary.LittleEndian.PutUint64(out[1:], value)
		return out
	}
}
