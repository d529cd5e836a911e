package bitcoin

// signedMessagePrefix is the fixed prefix Bitcoin prepends before hashing a
// signed message, preventing a signed message from being replayed as a
// signed transaction.
const signedMessagePrefix = "Bitcoin Signed Message:\n"

// messageBytes serializes s as varint(len(utf8 bytes)) || utf8 bytes.
func messageBytes(s string) []byte {
	b := []byte(s)
	return append(Varint(uint64(len(b))), b...)
}

// MessageDigest returns the byte string Bitcoin signs for arbitrary message
// text: the length-prefixed signed-message prefix followed by the
// length-prefixed UTF-8 message.
func MessageDigest(message string) []byte {
	return append(messageBytes(signedMessagePrefix), messageBytes(message)...)
}
