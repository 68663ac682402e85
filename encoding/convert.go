package encoding

// Validate decodes src as the given format/endian and re-encodes it in the
// same format, replacing malformed units with the format's replacement
// code point and recording one Error per offense. This is the primitive
// behind ustring.New: "every byte in the buffer participates in a valid
// encoded sequence... after initial validation" (spec.md §3).
func Validate(format Format, endian Endian, src []byte) (dst []byte, outEndian Endian, errs []Error) {
	switch format {
	case ASCII:
		dst, errs = ValidateASCII(src)
		return dst, EndianNone, errs
	case CP1252:
		dst, errs = ValidateCP1252(src)
		return dst, EndianNone, errs
	case EBCDIC037:
		dst, errs = ValidateEBCDIC037(src)
		return dst, EndianNone, errs
	case UTF8:
		dst, errs = ValidateUTF8(src)
		return dst, EndianNone, errs
	case UTF16, UTF16BE, UTF16LE:
		want := endian
		if format == UTF16BE {
			want = EndianBig
		} else if format == UTF16LE {
			want = EndianLittle
		}
		return ValidateUTF16(src, want)
	case UTF32, UTF32BE, UTF32LE:
		want := endian
		if format == UTF32BE {
			want = EndianBig
		} else if format == UTF32LE {
			want = EndianLittle
		}
		return ValidateUTF32(src, want)
	default:
		return nil, EndianNone, []Error{{Kind: OutOfMemory}}
	}
}

// DecodeAt decodes one code point from a validated buffer at byte offset i.
func DecodeAt(format Format, endian Endian, buf []byte, i int) (cp rune, size int) {
	switch format {
	case ASCII:
		return DecodeASCIIAt(buf, i)
	case CP1252:
		return DecodeCP1252At(buf, i)
	case EBCDIC037:
		return DecodeEBCDIC037At(buf, i)
	case UTF8:
		return DecodeUTF8At(buf, i)
	case UTF16, UTF16BE, UTF16LE:
		return DecodeUTF16At(buf, i, endian)
	case UTF32, UTF32BE, UTF32LE:
		return DecodeUTF32At(buf, i, endian)
	default:
		return UnicodeReplacement, 1
	}
}

// RuneSize returns the number of bytes cp occupies when encoded in format.
func RuneSize(format Format, endian Endian, cp rune) int {
	switch format {
	case ASCII, CP1252, EBCDIC037:
		return 1
	case UTF8:
		return UTF8RuneLen(cp)
	case UTF16, UTF16BE, UTF16LE:
		return UTF16RuneLen(cp) * 2
	case UTF32, UTF32BE, UTF32LE:
		return 4
	default:
		return 1
	}
}

// Encode appends the encoding of cp in format/endian to dst. ok is false
// if cp has no representation in format (legacy encodings only); the
// replacement byte has already been appended in that case.
func Encode(format Format, endian Endian, dst []byte, cp rune) (out []byte, ok bool) {
	switch format {
	case ASCII:
		return EncodeASCII(dst, cp)
	case CP1252:
		return EncodeCP1252(dst, cp)
	case EBCDIC037:
		return EncodeEBCDIC037(dst, cp)
	case UTF8:
		return AppendUTF8(dst, cp), true
	case UTF16, UTF16BE, UTF16LE:
		return AppendUTF16(dst, cp, endian), true
	case UTF32, UTF32BE, UTF32LE:
		return AppendUTF32(dst, cp, endian), true
	default:
		return dst, false
	}
}

// Convert decodes every code point of src (in srcFormat/srcEndian) and
// re-encodes it in dstFormat/dstEndian. Code points with no representation
// in the target format become '?' (or U+FFFD) and record a NoConversion
// error naming the target format.
func Convert(srcFormat Format, srcEndian Endian, src []byte, dstFormat Format, dstEndian Endian) (dst []byte, outEndian Endian, errs []Error) {
	outEndian = dstEndian
	if dstFormat.HasEndianConcept() && dstEndian == EndianNone {
		outEndian = EndianBig
	}

	i := 0
	for i < len(src) {
		cp, size := DecodeAt(srcFormat, srcEndian, src, i)
		if size <= 0 {
			size = 1
		}
		var ok bool
		dst, ok = Encode(dstFormat, outEndian, dst, cp)
		if !ok {
			errs = append(errs, Error{
				Kind:         NoConversion,
				ByteOffset:   i,
				CodePoint:    cp,
				HasCodePoint: true,
				Format:       dstFormat.String(),
			})
		}
		i += size
	}
	return dst, outEndian, errs
}
