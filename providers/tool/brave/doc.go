// Package brave provides tool implementations backed by the Brave Search
// REST API (https://api.search.brave.com). One tool is exposed per endpoint:
// web, image, news, and video search.
//
// All tools resolve their API key through internal/keys (alias "brave",
// env BRAVE_API_KEY) and return both a formatted text summary for direct LLM
// consumption and typed result records for programmatic use.
package brave
