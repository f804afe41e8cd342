package podcastindex

import (
	"crypto/sha1"
	"encoding/hex"
	"net/http"
	"strconv"
	"time"
)

// authHeaders is the per-request authentication header set. The secret
// only ever influences the digest; it is never carried in the struct.
type authHeaders struct {
	key           string
	timestamp     string
	authorization string
}

// sign derives the Podcast Index auth headers from the credentials and
// a wall-clock reading. The digest is hex(SHA1(key + secret + unixTime))
// and the same timestamp string is sent in X-Auth-Date, so the server
// can recompute the hash inside its freshness window. Pure function;
// headers must be recomputed for every request.
func sign(key, secret string, now time.Time) (authHeaders, error) {
	ts := now.Unix()
	if ts <= 0 {
		return authHeaders{}, &SigningError{Clock: now}
	}

	timestamp := strconv.FormatInt(ts, 10)
	h := sha1.New()
	h.Write([]byte(key + secret + timestamp))

	return authHeaders{
		key:           key,
		timestamp:     timestamp,
		authorization: hex.EncodeToString(h.Sum(nil)),
	}, nil
}

// apply sets the auth headers on an outbound request.
func (a authHeaders) apply(req *http.Request) {
	req.Header.Set("X-Auth-Key", a.key)
	req.Header.Set("X-Auth-Date", a.timestamp)
	req.Header.Set("Authorization", a.authorization)
}
