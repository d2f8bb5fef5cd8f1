// Package numf parses and formats non-negative integers in a handful of common notations:
// hexadecimal, binary, octal, decimal, base32, base64 and raw bytes.
//
// Values are arbitrary precision. A token is parsed with [Parse], which detects the notation from
// a prefix such as "0x" unless an explicit [Format] is given, and rendered with [Render]:
//
//	v, err := numf.Parse("0b100100101010", numf.Auto)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(numf.Render(v, numf.Dec, numf.Options{})) // 2346
//
// The numf command in cmd/numf wraps both for use from a shell.
package numf
