package cigar


// Verify replays cigarStr against a and b under the unit cost model and
// checks that it transforms a into b exactly, ends exactly at (len(a),
// len(b)), and accumulates exactly cost. Per spec.md §7, a failure here
// means the aligner itself is broken; callers should treat
// ErrVerificationFailed as fatal, not retry-able.
func Verify(a, b []byte, cigarStr string, cost int) error {
	i, j, total := 0, 0, 0

	n := 0
	for k := 0; k < len(cigarStr); k++ {
		c := cigarStr[k]
		if c >= '0' && c <= '9' {
			n = n*10 + int(c-'0')
			continue
		}
		if n == 0 {
			return ErrVerificationFailed
		}
		switch c {
		case '=':
			for x := 0; x < n; x++ {
				if i >= len(a) || j >= len(b) || a[i] != b[j] {
					return ErrVerificationFailed
				}
				i++
				j++
			}
		case 'X':
			for x := 0; x < n; x++ {
				if i >= len(a) || j >= len(b) || a[i] == b[j] {
					return ErrVerificationFailed
				}
				i++
				j++
				total++
			}
		case 'D':
			if i+n > len(a) {
				return ErrVerificationFailed
			}
			i += n
			total += n
		case 'I':
			if j+n > len(b) {
				return ErrVerificationFailed
			}
			j += n
			total += n
		default:
			return ErrVerificationFailed
		}
		n = 0
	}

	if i != len(a) || j != len(b) || total != cost {
		return ErrVerificationFailed
	}
	return nil
}
