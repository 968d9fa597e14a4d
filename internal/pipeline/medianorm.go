package pipeline

import (
	"context"
	"html"
	"regexp"
	"strings"
)

// Precompiled patterns for media elements. All are non-greedy to the first
// closing tag of the same kind; nested iframes/videos are not a realistic
// authoring case and are not supported.
var (
	iframePattern       = regexp.MustCompile(`(?is)<iframe[^>]*>.*?</iframe>`)
	videoPattern        = regexp.MustCompile(`(?is)<video[^>]*>.*?</video>`)
	srcAttrPattern      = regexp.MustCompile(`(?i)src=["']([^"']+)["']`)
	detailsOpenPattern  = regexp.MustCompile(`(?i)<details[^>]*>`)
	detailsClosePattern = regexp.MustCompile(`(?i)</details>`)
	summaryOpenPattern  = regexp.MustCompile(`(?i)<summary[^>]*>`)
	summaryClosePattern = regexp.MustCompile(`(?i)</summary>`)
)

const youTubeEmbedMarker = "youtube.com/embed/"

// videoRemovedComment replaces <video> elements that carry no source.
const videoRemovedComment = "<!-- video removed -->"

// MediaNormalizer rewrites embedded media into print-safe substitutes.
type MediaNormalizer interface {
	Normalize(ctx context.Context, htmlContent string) string
}

// PrintMediaNormalizer replaces iframes and videos with static link blocks
// and unfolds details/summary widgets so their content always renders.
// It is a pure, total function: no input produces an error.
type PrintMediaNormalizer struct{}

// Normalize applies the four rewrite rules in order: iframes, videos,
// details, summaries. Later rules never re-enter earlier rules' output.
func (n *PrintMediaNormalizer) Normalize(ctx context.Context, htmlContent string) string {
	if ctx.Err() != nil {
		return htmlContent
	}

	htmlContent = iframePattern.ReplaceAllStringFunc(htmlContent, replaceIframe)
	htmlContent = videoPattern.ReplaceAllStringFunc(htmlContent, replaceVideo)

	// Disclosure widgets have no interactive affordance in print, so their
	// content must always be visible. The <br> after the summary keeps the
	// summary text from merging into the following paragraph.
	htmlContent = detailsOpenPattern.ReplaceAllString(htmlContent, `<div class="pdf-details">`)
	htmlContent = detailsClosePattern.ReplaceAllString(htmlContent, "</div>")
	htmlContent = summaryOpenPattern.ReplaceAllString(htmlContent, `<span class="pdf-summary">`)
	htmlContent = summaryClosePattern.ReplaceAllString(htmlContent, "</span><br>")

	return htmlContent
}

// replaceIframe turns an iframe into a link block pointing at its source.
// YouTube embed URLs are rewritten to the canonical watch URL. Iframes
// without a src attribute are left unmodified.
func replaceIframe(element string) string {
	src := srcAttrPattern.FindStringSubmatch(element)
	if src == nil {
		return element
	}
	return videoLinkBlock(canonicalWatchURL(src[1]))
}

// replaceVideo turns a video element into a link block pointing at its
// source. Videos without a src carry no recoverable content and are
// replaced with a placeholder comment.
func replaceVideo(element string) string {
	src := srcAttrPattern.FindStringSubmatch(element)
	if src == nil {
		return videoRemovedComment
	}
	return videoLinkBlock(src[1])
}

// canonicalWatchURL rewrites a YouTube embed URL to its watch-page URL,
// dropping any query parameters. Non-embed URLs pass through unchanged.
func canonicalWatchURL(url string) string {
	idx := strings.Index(url, youTubeEmbedMarker)
	if idx == -1 {
		return url
	}
	videoID := url[idx+len(youTubeEmbedMarker):]
	if q := strings.IndexByte(videoID, '?'); q != -1 {
		videoID = videoID[:q]
	}
	return "https://www.youtube.com/watch?v=" + videoID
}

// videoLinkBlock builds the static link placeholder for a media element.
func videoLinkBlock(url string) string {
	escaped := html.EscapeString(url)
	return `<div class="pdf-video-link"><a href="` + escaped + `">Watch Video: ` + escaped + `</a></div>`
}
