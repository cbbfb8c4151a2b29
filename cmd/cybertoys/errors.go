package main

import (
	"errors"

	"github.com/verte-zerg/cybertoys/internal/basen"
	"github.com/verte-zerg/cybertoys/internal/csr"
	"github.com/verte-zerg/cybertoys/internal/dtmf"
	"github.com/verte-zerg/cybertoys/internal/rsakit"
	"github.com/verte-zerg/cybertoys/internal/xorcipher"
)

const invalidInputMessage = "invalid input for selected operation"

var inputErrors = []error{
	xorcipher.ErrInvalidKey,
	xorcipher.ErrInvalidEncoding,
	basen.ErrInvalidEncoding,
	basen.ErrUnknownBase,
	rsakit.ErrInvalidPEM,
	rsakit.ErrNotRSA,
	rsakit.ErrDecryption,
	csr.ErrInvalidCSR,
	dtmf.ErrUnknownSpeed,
}

// userMessage maps tool input failures to the generic message and keeps
// everything else (I/O, flags, storage) verbatim.
func userMessage(err error) string {
	for _, target := range inputErrors {
		if errors.Is(err, target) {
			return invalidInputMessage
		}
	}
	return err.Error()
}
