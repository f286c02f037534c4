// Package percent implements RFC 3986 percent-encoding and decoding of arbitrary Unicode text.
//
// # Encoding
//
// [Encode] converts a string to UTF-8 bytes and replaces every byte that is not safe under
// the selected [Mode] with "%" followed by two uppercase hex digits:
//
//   - [ModeComponent] keeps unreserved characters (A-Z a-z 0-9 - _ . ~) and the marks ! ' ( ) *.
//     Use it for a single query value, path segment, etc.
//   - [ModeFullURL] additionally keeps the reserved characters : / ? # [ ] @ ! $ & ' ( ) * + , ; =
//     so a whole URL keeps its structure.
//   - [ModeAll] keeps ASCII letters and digits only.
//
// Non-ASCII characters always produce one triplet per UTF-8 byte, so "é" becomes "%C3%A9"
// and a 4-byte emoji becomes four triplets.
// With [SpacePlus] spaces are rendered as "+" (except in [ModeAll], which always uses "%20").
//
//	percent.Encode("a b/c", percent.ModeComponent, percent.SpacePercent20) // "a%20b%2Fc"
//	percent.Encode("a b/c", percent.ModeFullURL, percent.SpacePlus)        // "a+b/c"
//
// # Decoding
//
// [Decode] reverses the encoding. It never panics: malformed escapes and escapes that do not
// form valid UTF-8 are reported with a [*DecodeError], and the returned string then holds
// a best-effort decoding in which every undecodable triplet is kept verbatim.
//
//	s, err := percent.Decode("100%25 %zz", percent.SpacePercent20)
//	// s == "100% %zz", errors.Is(err, percent.ErrMalformedEscape) == true
//
// # Double encoding
//
// [IsDoubleEncoded] flags input that contains an escaped percent sign followed by two hex digits
// ("%2520" and alike). This is a heuristic: single-encoded data that legitimately contains "%25"
// followed by hex-looking text is flagged too.
// [DecodeOnce], [DecodeTwice] and [DecodeFully] apply [Decode] one, up to two and up to
// [MaxDecodeIterations] times respectively. [Resolve] reports how many passes were applied
// and why decoding stopped.
package percent
