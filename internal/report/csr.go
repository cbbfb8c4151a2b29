package report

import (
	"fmt"
	"io"

	"github.com/verte-zerg/cybertoys/internal/csr"
)

// RenderCSR prints the subject and algorithms of a decoded request.
func RenderCSR(w io.Writer, info csr.Info) error {
	if _, err := fmt.Fprintln(w, "Subject"); err != nil {
		return err
	}
	if len(info.Subject) == 0 {
		if _, err := fmt.Fprintln(w, "(empty)"); err != nil {
			return err
		}
	} else {
		rows := make([][]string, 0, len(info.Subject))
		for _, attr := range info.Subject {
			rows = append(rows, []string{attr.Name, attr.Value, attr.OID})
		}
		for _, line := range formatTable([]string{"Attr", "Value", "OID"}, rows, nil) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	keyAlg := info.PublicKeyAlgorithm
	if info.PublicKeyBits > 0 {
		keyAlg = fmt.Sprintf("%s (%d bit)", keyAlg, info.PublicKeyBits)
	}
	signature := "invalid"
	if info.SignatureValid {
		signature = "valid"
	}
	lines := []string{
		"",
		"Public key algorithm: " + keyAlg,
		"Signature algorithm:  " + info.SignatureAlgorithm,
		"Signature:            " + signature,
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
