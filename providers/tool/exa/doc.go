// Package exa provides tools backed by the Exa AI-native search API:
// semantic web search via [NewExaSearchTool], similarity search via
// [NewExaFindSimilarTool], and grounded question answering via
// [NewExaAnswerTool]. All tools resolve their API key through internal/keys
// (keys.json alias "exa" or the EXA_API_KEY environment variable).
package exa
