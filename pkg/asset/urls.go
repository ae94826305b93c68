package asset

import (
	"fmt"
	"path"
	"strings"
)

// DefaultStoreSuffix is the public host suffix of the canonical store
// endpoint, used when no custom domain fronts the bucket.
const DefaultStoreSuffix = "r2.cloudflarestorage.com"

// ResolverConfig is the active domain configuration. Exactly one form
// is authoritative per deployment: PublicDomain when set, otherwise
// the canonical Bucket/AccountID endpoint.
type ResolverConfig struct {
	PublicDomain string
	Bucket       string
	AccountID    string
	StoreSuffix  string
}

// URLResolver builds public URLs from storage keys and recovers keys
// from URLs. Both directions must run under the same configuration or
// round-trips fail. Configuration is read once at construction and
// never mutated.
type URLResolver struct {
	publicDomain string
	bucket       string
	accountID    string
	storeSuffix  string
}

// NewURLResolver validates the domain configuration up front so a
// missing configuration fails the caller before anything is stored.
func NewURLResolver(cfg ResolverConfig) (*URLResolver, error) {
	r := &URLResolver{
		publicDomain: stripProtocol(cfg.PublicDomain),
		bucket:       stripProtocol(cfg.Bucket),
		accountID:    stripProtocol(cfg.AccountID),
		storeSuffix:  cfg.StoreSuffix,
	}
	if r.storeSuffix == "" {
		r.storeSuffix = DefaultStoreSuffix
	}
	if r.publicDomain == "" && (r.bucket == "" || r.accountID == "") {
		return nil, &ConfigurationError{Reason: "no public domain and no bucket/account pair configured"}
	}
	return r, nil
}

// BuildURL derives the public URL for a storage key. A result carrying
// a doubled scheme means the domain settings themselves embed a
// protocol; that is a deployment defect and is rejected loudly.
func (r *URLResolver) BuildURL(key string) (string, error) {
	key = strings.TrimPrefix(key, "/")

	var u string
	if r.publicDomain != "" {
		u = fmt.Sprintf("https://%s/%s", r.publicDomain, key)
	} else {
		u = fmt.Sprintf("https://%s.%s.%s/%s", r.bucket, r.accountID, r.storeSuffix, key)
	}

	if strings.Contains(u, "https://https://") || strings.Contains(u, "//https://") {
		return "", &ConfigurationError{Reason: fmt.Sprintf("built a doubled-scheme URL %q; check the domain settings", u)}
	}
	return u, nil
}

// ParseKey is the inverse of BuildURL under the same configuration. A
// URL matching neither domain form falls back to its last two path
// segments as a best-effort "folder/filename" key.
func (r *URLResolver) ParseKey(rawURL string) (string, error) {
	trimmed := stripProtocol(strings.TrimSpace(rawURL))
	if trimmed == "" {
		return "", fmt.Errorf("empty URL")
	}

	if r.publicDomain != "" {
		if rest, ok := strings.CutPrefix(trimmed, r.publicDomain+"/"); ok && rest != "" {
			return rest, nil
		}
	}
	if host, rest, ok := strings.Cut(trimmed, "/"); ok && rest != "" && strings.HasSuffix(host, r.storeSuffix) {
		return rest, nil
	}

	parts := strings.Split(trimmed, "/")
	if len(parts) >= 3 {
		return path.Join(parts[len(parts)-2], parts[len(parts)-1]), nil
	}
	return "", fmt.Errorf("cannot resolve a storage key from %q", rawURL)
}

func stripProtocol(s string) string {
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	return strings.TrimSuffix(s, "/")
}
