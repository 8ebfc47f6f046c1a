// Package signature verifies webhook payload signatures. The issuing
// processor signs the raw body with HMAC-SHA256 and sends the result in a
// header of the form "t=<unix>,v1=<hex digest>".
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// Header carries the webhook signature on incoming requests.
	Header = "Qoda-Signature"

	// DefaultTolerance bounds how stale a signed timestamp may be.
	DefaultTolerance = 5 * time.Minute
)

var (
	ErrMalformedHeader  = errors.New("signature header is malformed")
	ErrExpiredTimestamp = errors.New("signature timestamp outside tolerance")
	ErrNoMatch          = errors.New("signature does not match payload")
)

type Verifier interface {
	Verify(header string, payload []byte, receivedAt time.Time) error
	Sign(payload []byte, at time.Time) string
}

type hmacVerifier struct {
	secret    []byte
	tolerance time.Duration
}

func NewVerifier(secret string, tolerance time.Duration) Verifier {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &hmacVerifier{secret: []byte(secret), tolerance: tolerance}
}

// Verify checks the signed timestamp against the tolerance window and the
// digest against the payload. Comparison is constant time.
func (v *hmacVerifier) Verify(header string, payload []byte, receivedAt time.Time) error {
	ts, digests, err := parseHeader(header)
	if err != nil {
		return err
	}

	signedAt := time.Unix(ts, 0)
	drift := receivedAt.Sub(signedAt)
	if drift < 0 {
		drift = -drift
	}
	if drift > v.tolerance {
		return ErrExpiredTimestamp
	}

	expected := v.digest(payload, ts)
	for _, d := range digests {
		got, err := hex.DecodeString(d)
		if err != nil {
			continue
		}
		if hmac.Equal(got, expected) {
			return nil
		}
	}

	return ErrNoMatch
}

// Sign produces a header value for the payload, used by tests and by the
// local replay tool.
func (v *hmacVerifier) Sign(payload []byte, at time.Time) string {
	ts := at.Unix()
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(v.digest(payload, ts)))
}

func (v *hmacVerifier) digest(payload []byte, ts int64) []byte {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(strconv.FormatInt(ts, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	return mac.Sum(nil)
}

func parseHeader(header string) (ts int64, digests []string, err error) {
	ts = -1
	for _, part := range strings.Split(header, ",") {
		k, val, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			return 0, nil, ErrMalformedHeader
		}

		switch k {
		case "t":
			ts, err = strconv.ParseInt(val, 10, 64)
			if err != nil {
				return 0, nil, ErrMalformedHeader
			}
		case "v1":
			digests = append(digests, val)
		}
	}

	if ts < 0 || len(digests) == 0 {
		return 0, nil, ErrMalformedHeader
	}

	return ts, digests, nil
}
