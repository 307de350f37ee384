package content

import (
	"math/rand"
	"net/http"
)

// acceptLanguages carries Polish-biased browser Accept-Language values,
// most polled publishers serve Polish readers
var acceptLanguages = []string{
	"pl-PL,pl;q=0.9,en-US;q=0.8,en;q=0.7",
	"pl,en-US;q=0.9,en;q=0.8",
	"pl-PL,pl;q=0.9",
	"pl-PL,pl;q=0.9,de;q=0.7",
}

// addBrowserHeaders makes article-page requests look like an ordinary
// browser navigation, some publishers serve stripped markup to bots
func addBrowserHeaders(req *http.Request) {
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", acceptLanguages[rand.Intn(len(acceptLanguages))]) //nolint:gosec // non-cryptographic randomness is fine for header variation
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Sec-Fetch-Dest", "document")
	req.Header.Set("Sec-Fetch-Mode", "navigate")
	req.Header.Set("Sec-Fetch-Site", "none")
	req.Header.Set("Sec-Fetch-User", "?1")
}
