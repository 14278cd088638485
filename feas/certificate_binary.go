// SPDX-License-Identifier: MIT

package feas

import (
	"encoding/binary"
	"io"

	"github.com/lvlath-research/triangle-inflation/constraint"
)

// WriteCertificateBinary writes cs's current dual vector with
// length-prefixed raw-byte strings and fixed-width little-endian integers:
// the version, the caller's metadata string, the inflation metadata, the
// constraint count, one pretty description per constraint, then for each
// constraint its coefficient count and LHS coefficients. Unlike
// WriteCertificateText it writes no "METADATA"/"CONSTRAINT SET"/"DUAL
// VECTOR" markers and does not repeat each constraint's description before
// its coefficients.
func WriteCertificateBinary(w io.Writer, cs *constraint.ConstraintSet, metadata string) error {
	if err := writeBinUint32(w, certificateVersion); err != nil {
		return err
	}
	if err := writeBinString(w, metadata); err != nil {
		return err
	}
	if err := writeBinString(w, cs.Inflation.Metadata()); err != nil {
		return err
	}

	if err := writeBinUint32(w, uint32(len(cs.Constraints))); err != nil {
		return err
	}
	for _, c := range cs.Constraints {
		if err := writeBinString(w, c.PrettyDescription()); err != nil {
			return err
		}
	}

	for _, c := range cs.Constraints {
		coeffs := c.LHSVec.Coefficients()
		if err := writeBinUint32(w, uint32(len(coeffs))); err != nil {
			return err
		}
		for _, v := range coeffs {
			if err := binary.Write(w, binary.LittleEndian, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadCertificateBinary is WriteCertificateBinary's counterpart: it
// validates the version, metadata, and every constraint's description,
// then installs the recovered coefficients via
// cs.SetDualVectorFromQuovec.
func ReadCertificateBinary(r io.Reader, cs *constraint.ConstraintSet, expectedMetadata string) error {
	version, err := readBinUint32(r)
	if err != nil {
		return err
	}
	if version != certificateVersion {
		return ErrCertificateVersionMismatch
	}

	metadata, err := readBinString(r)
	if err != nil {
		return err
	}
	if metadata != expectedMetadata {
		return ErrCertificateMetadataMismatch
	}

	if _, err := readBinString(r); err != nil { // inflation metadata, informational
		return err
	}

	n, err := readBinUint32(r)
	if err != nil {
		return err
	}
	if int(n) != len(cs.Constraints) {
		return ErrCertificateMalformed
	}
	for _, c := range cs.Constraints {
		desc, err := readBinString(r)
		if err != nil {
			return err
		}
		if desc != c.PrettyDescription() {
			return ErrCertificateMalformed
		}
	}

	coeffs := make([]int64, 0, cs.TotalQuovecLen())
	for _, c := range cs.Constraints {
		count, err := readBinUint32(r)
		if err != nil {
			return err
		}
		if int(count) != c.LHSVec.NumNoUnknown() {
			return ErrCertificateMalformed
		}
		for i := uint32(0); i < count; i++ {
			var v int64
			if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
				return err
			}
			coeffs = append(coeffs, v)
		}
	}

	return cs.SetDualVectorFromQuovec(coeffs)
}

func writeBinUint32(w io.Writer, v uint32) error {
	return binary.Write(w, binary.LittleEndian, v)
}

func readBinUint32(r io.Reader) (uint32, error) {
	var v uint32
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}

func writeBinString(w io.Writer, s string) error {
	if err := writeBinUint32(w, uint32(len(s))); err != nil {
		return err
	}
	_, err := w.Write([]byte(s))
	return err
}

func readBinString(r io.Reader) (string, error) {
	n, err := readBinUint32(r)
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
