// SPDX-License-Identifier: MIT

package feas

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lvlath-research/triangle-inflation/constraint"
)

const certificateVersion = 1

// WriteCertificateText writes cs's current dual vector to w in the
// line-delimited text format of spec.md §6: a version line, the caller's
// metadata string, then "METADATA"/inflation metadata, "CONSTRAINT
// SET"/one pretty description per constraint, and "DUAL VECTOR"/each
// constraint's re-verified description followed by its LHS coefficients as
// hex-encoded signed integers.
func WriteCertificateText(w io.Writer, cs *constraint.ConstraintSet, metadata string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, certificateVersion)
	fmt.Fprintln(bw, metadata)
	fmt.Fprintln(bw, "METADATA")
	fmt.Fprintln(bw, cs.Inflation.Metadata())
	fmt.Fprintln(bw, "CONSTRAINT SET")
	for _, c := range cs.Constraints {
		fmt.Fprintln(bw, c.PrettyDescription())
	}

	fmt.Fprintln(bw, "DUAL VECTOR")
	for _, c := range cs.Constraints {
		fmt.Fprintln(bw, c.PrettyDescription())
		coeffs := c.LHSVec.Coefficients()
		fmt.Fprintln(bw, len(coeffs))
		for _, v := range coeffs {
			fmt.Fprintln(bw, hexSigned(v))
		}
	}

	return bw.Flush()
}

// ReadCertificateText reads back a file written by WriteCertificateText,
// failing on a version or metadata mismatch or any structural or
// pretty-description disagreement with cs, then installs the recovered
// coefficients via cs.SetDualVectorFromQuovec (which re-derives every RHS
// reduced vector and re-checks the overflow bound, per spec.md §6).
func ReadCertificateText(r io.Reader, cs *constraint.ConstraintSet, expectedMetadata string) error {
	sc := bufio.NewScanner(r)

	readLine := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", ErrCertificateMalformed
		}
		return sc.Text(), nil
	}

	versionLine, err := readLine()
	if err != nil {
		return err
	}
	version, err := strconv.Atoi(strings.TrimSpace(versionLine))
	if err != nil || version != certificateVersion {
		return ErrCertificateVersionMismatch
	}

	metadataLine, err := readLine()
	if err != nil {
		return err
	}
	if metadataLine != expectedMetadata {
		return ErrCertificateMetadataMismatch
	}

	if err := expectLine(readLine, "METADATA"); err != nil {
		return err
	}
	if _, err := readLine(); err != nil { // inflation metadata string, informational
		return err
	}
	if err := expectLine(readLine, "CONSTRAINT SET"); err != nil {
		return err
	}
	for _, c := range cs.Constraints {
		if err := expectLine(readLine, c.PrettyDescription()); err != nil {
			return err
		}
	}

	if err := expectLine(readLine, "DUAL VECTOR"); err != nil {
		return err
	}

	coeffs := make([]int64, 0, cs.TotalQuovecLen())
	for _, c := range cs.Constraints {
		if err := expectLine(readLine, c.PrettyDescription()); err != nil {
			return err
		}
		countLine, err := readLine()
		if err != nil {
			return err
		}
		count, err := strconv.Atoi(strings.TrimSpace(countLine))
		if err != nil || count != c.LHSVec.NumNoUnknown() {
			return ErrCertificateMalformed
		}
		for i := 0; i < count; i++ {
			line, err := readLine()
			if err != nil {
				return err
			}
			v, err := parseHexSigned(line)
			if err != nil {
				return err
			}
			coeffs = append(coeffs, v)
		}
	}

	return cs.SetDualVectorFromQuovec(coeffs)
}

func expectLine(readLine func() (string, error), want string) error {
	got, err := readLine()
	if err != nil {
		return err
	}
	if got != want {
		return ErrCertificateMalformed
	}
	return nil
}

// hexSigned renders v as a sign character followed by its hex magnitude
// (spec.md §6's text certificate format).
func hexSigned(v int64) string {
	sign := byte('+')
	if v < 0 {
		sign = '-'
		v = -v
	}
	return string(sign) + strconv.FormatInt(v, 16)
}

func parseHexSigned(s string) (int64, error) {
	if len(s) < 2 {
		return 0, ErrCertificateMalformed
	}
	neg := s[0] == '-'
	if !neg && s[0] != '+' {
		return 0, ErrCertificateMalformed
	}
	mag, err := strconv.ParseInt(s[1:], 16, 64)
	if err != nil {
		return 0, ErrCertificateMalformed
	}
	if neg {
		mag = -mag
	}
	return mag, nil
}
