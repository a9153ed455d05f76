package poster

import "image"

// Reason explains why a placeholder was used instead of a fetched poster.
type Reason string

// Fallback reasons.
const (
	ReasonNone             Reason = ""
	ReasonSearchFailed     Reason = "search_failed"
	ReasonNoResults        Reason = "no_results"
	ReasonNoImage          Reason = "no_image"
	ReasonDownloadFailed   Reason = "download_failed"
	ReasonDecodeFailed     Reason = "decode_failed"
	ReasonCircuitOpen      Reason = "circuit_open"
	ReasonProviderDisabled Reason = "provider_disabled"
)

// Result is either a fetched poster (Reason empty) or a placeholder with the
// reason it was substituted. Image is never nil.
type Result struct {
	Title  string
	Image  image.Image
	URL    string
	Reason Reason
	// Err holds the underlying failure for logging; it is never fatal.
	Err error
}

// Ok reports whether the poster came from the provider.
func (r Result) Ok() bool { return r.Reason == ReasonNone }

// Status is a short human label for tables.
func (r Result) Status() string {
	if r.Ok() {
		return "ok"
	}
	return "placeholder (" + string(r.Reason) + ")"
}

func fetched(title, url string, img image.Image) Result {
	return Result{Title: title, Image: img, URL: url}
}

func fallback(title string, reason Reason, err error) Result {
	return Result{Title: title, Image: Placeholder(title), Reason: reason, Err: err}
}
