// Package csr builds and inspects PKCS#10 certificate signing requests.
package csr

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/verte-zerg/cybertoys/internal/rsakit"
)

// PEMLabel is the armour label of a CSR.
const PEMLabel = "CERTIFICATE REQUEST"

// ErrInvalidCSR is returned when input cannot be parsed as a CSR.
var ErrInvalidCSR = errors.New("invalid CSR")

var (
	oidCommonName         = asn1.ObjectIdentifier{2, 5, 4, 3}
	oidCountry            = asn1.ObjectIdentifier{2, 5, 4, 6}
	oidOrganization       = asn1.ObjectIdentifier{2, 5, 4, 10}
	oidOrganizationalUnit = asn1.ObjectIdentifier{2, 5, 4, 11}
)

var attributeNames = map[string]string{
	oidCommonName.String():         "CN",
	oidCountry.String():            "C",
	"2.5.4.7":                      "L",
	"2.5.4.8":                      "ST",
	oidOrganization.String():       "O",
	oidOrganizationalUnit.String(): "OU",
	"1.2.840.113549.1.9.1":         "emailAddress",
}

var armourPattern = regexp.MustCompile(`-----[^-]*-----`)

// Subject is the identity placed in a generated request. Empty fields are
// left out.
type Subject struct {
	CN string
	O  string
	OU string
	C  string
}

// Request is a freshly generated CSR with its private key.
type Request struct {
	PEM           string
	PrivateKeyPEM string
}

// Attribute is one subject entry of a decoded CSR.
type Attribute struct {
	OID   string
	Name  string
	Value string
}

// Info summarises a decoded CSR.
type Info struct {
	Subject            []Attribute
	PublicKeyAlgorithm string
	PublicKeyBits      int
	SignatureAlgorithm string
	SignatureValid     bool
}

// Generate creates an RSA-2048 key and a SHA256-RSA signed request for subj.
// Attributes are encoded in CN, O, OU, C order.
func Generate(random io.Reader, subj Subject) (Request, error) {
	if random == nil {
		random = rand.Reader
	}
	key, err := rsa.GenerateKey(random, rsakit.DefaultBits)
	if err != nil {
		return Request{}, fmt.Errorf("failed to generate key: %w", err)
	}
	rawSubject, err := marshalSubject(subj)
	if err != nil {
		return Request{}, err
	}
	tmpl := &x509.CertificateRequest{
		RawSubject:         rawSubject,
		SignatureAlgorithm: x509.SHA256WithRSA,
	}
	der, err := x509.CreateCertificateRequest(random, tmpl, key)
	if err != nil {
		return Request{}, fmt.Errorf("failed to create CSR: %w", err)
	}
	pair, err := rsakit.MarshalKeyPair(key)
	if err != nil {
		return Request{}, err
	}
	return Request{
		PEM:           rsakit.EncodePEM(PEMLabel, der),
		PrivateKeyPEM: pair.PrivatePEM,
	}, nil
}

func marshalSubject(subj Subject) ([]byte, error) {
	fields := []struct {
		oid    asn1.ObjectIdentifier
		value  string
		params string
	}{
		{oidCommonName, subj.CN, "utf8"},
		{oidOrganization, subj.O, "utf8"},
		{oidOrganizationalUnit, subj.OU, "utf8"},
		{oidCountry, subj.C, "printable"},
	}
	rdn := pkix.RDNSequence{}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		encoded, err := asn1.MarshalWithParams(f.value, f.params)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", attributeNames[f.oid.String()], err)
		}
		rdn = append(rdn, pkix.RelativeDistinguishedNameSET{{
			Type:  f.oid,
			Value: asn1.RawValue{FullBytes: encoded},
		}})
	}
	return asn1.Marshal(rdn)
}

// Decode parses a PEM (or bare base64) CSR.
func Decode(text string) (Info, error) {
	body := armourPattern.ReplaceAllString(text, "")
	body = strings.Join(strings.Fields(body), "")
	if body == "" {
		return Info{}, fmt.Errorf("%w: empty input", ErrInvalidCSR)
	}
	der, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrInvalidCSR, err)
	}
	req, err := x509.ParseCertificateRequest(der)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrInvalidCSR, err)
	}

	info := Info{
		PublicKeyAlgorithm: req.PublicKeyAlgorithm.String(),
		SignatureAlgorithm: req.SignatureAlgorithm.String(),
		SignatureValid:     req.CheckSignature() == nil,
	}
	if pub, ok := req.PublicKey.(*rsa.PublicKey); ok {
		info.PublicKeyBits = pub.N.BitLen()
	}
	for _, atv := range req.Subject.Names {
		oid := atv.Type.String()
		name := attributeNames[oid]
		if name == "" {
			name = oid
		}
		info.Subject = append(info.Subject, Attribute{
			OID:   oid,
			Name:  name,
			Value: fmt.Sprint(atv.Value),
		})
	}
	return info, nil
}
