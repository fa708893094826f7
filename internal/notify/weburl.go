package notify

import "strings"

// WebURL rewrites an API resource URL into the page a browser should
// open: the API root plus "/repos/" becomes the web root, and the
// "/pulls/" segment becomes "/pull/". URLs outside apiBase only get the
// segment rewrite.
func WebURL(apiURL, apiBase, webBase string) string {
	apiBase = strings.TrimRight(apiBase, "/")
	webBase = strings.TrimRight(webBase, "/")

	out := apiURL
	if prefix := apiBase + "/repos/"; strings.HasPrefix(out, prefix) {
		out = webBase + "/" + strings.TrimPrefix(out, prefix)
	}

	return strings.Replace(out, "/pulls/", "/pull/", 1)
}
