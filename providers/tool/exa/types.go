package exa

// SearchInput holds the parameters for an Exa semantic search. Query is the
// only required field; full page text and highlights are always requested.
type SearchInput struct {
	Query              string   `json:"query" jsonschema:"description=The search query string to find relevant content,required"`
	Type               string   `json:"type,omitempty" jsonschema:"description=How to search: auto (default) neural (embedding-based) fast (latency-optimized) or deep (exhaustive),enum=neural,enum=auto,enum=fast,enum=deep"`
	NumResults         int      `json:"num_results,omitempty" jsonschema:"description=Number of results to return (default: 3 max: 100),minimum=1,maximum=100"`
	Category           string   `json:"category,omitempty" jsonschema:"description=Content category to filter results by specific type,enum=company,enum=research paper,enum=news,enum=pdf,enum=github,enum=tweet,enum=personal site,enum=linkedin profile,enum=financial report"`
	IncludeDomains     []string `json:"include_domains,omitempty" jsonschema:"description=List of domains to limit search results to"`
	ExcludeDomains     []string `json:"exclude_domains,omitempty" jsonschema:"description=Domains to drop from the results"`
	StartPublishedDate string   `json:"start_published_date,omitempty" jsonschema:"description=Only return content published on or after this date (YYYY-MM-DD)"`
	EndPublishedDate   string   `json:"end_published_date,omitempty" jsonschema:"description=Only return content published on or before this date (YYYY-MM-DD)"`
	StartCrawlDate     string   `json:"start_crawl_date,omitempty" jsonschema:"description=Only return content crawled on or after this date (ISO 8601)"`
	EndCrawlDate       string   `json:"end_crawl_date,omitempty" jsonschema:"description=Only return content crawled on or before this date (ISO 8601)"`
}

// SearchOutput holds a summarized view of an Exa search response.
type SearchOutput struct {
	Query   string         `json:"query" jsonschema:"description=The query that produced these results"`
	Summary string         `json:"summary" jsonschema:"description=Human-readable digest of the results"`
	Results []SearchResult `json:"results" jsonschema:"description=Ranked search results"`
}

// SearchResult is a single search result shaped for host consumption.
type SearchResult struct {
	Title         string   `json:"title" jsonschema:"description=Page title"`
	URL           string   `json:"url" jsonschema:"description=Page URL"`
	PublishedDate string   `json:"published_date,omitempty" jsonschema:"description=When the content was published"`
	Author        string   `json:"author,omitempty" jsonschema:"description=Who wrote the content"`
	Text          string   `json:"text,omitempty" jsonschema:"description=Full text content of the page"`
	Highlights    []string `json:"highlights,omitempty" jsonschema:"description=Key sentence highlights"`
}

// SimilarInput holds the parameters for an Exa similarity search.
type SimilarInput struct {
	URL            string   `json:"url" jsonschema:"description=URL to find similar content for,required"`
	NumResults     int      `json:"num_results,omitempty" jsonschema:"description=Number of results to return (default: 3 max: 100),minimum=1,maximum=100"`
	IncludeDomains []string `json:"include_domains,omitempty" jsonschema:"description=List of domains to include in results"`
	ExcludeDomains []string `json:"exclude_domains,omitempty" jsonschema:"description=List of domains to exclude from results"`
}

// SimilarOutput holds the results of a similarity search.
type SimilarOutput struct {
	SourceURL string         `json:"source_url" jsonschema:"description=The source URL used for similarity search"`
	Summary   string         `json:"summary" jsonschema:"description=Human-readable digest of the similar pages"`
	Results   []SearchResult `json:"results" jsonschema:"description=Pages similar to the source URL"`
}

// AnswerInput holds the parameters for an Exa grounded answer.
type AnswerInput struct {
	Query       string `json:"query" jsonschema:"description=The question to ground and answer,required"`
	IncludeText bool   `json:"include_text,omitempty" jsonschema:"description=Attach the full text of each citation source"`
}

// AnswerOutput holds an AI-generated answer with its source citations.
type AnswerOutput struct {
	Query     string     `json:"query" jsonschema:"description=The question that was answered"`
	Answer    string     `json:"answer" jsonschema:"description=Answer grounded in the cited sources"`
	Citations []Citation `json:"citations" jsonschema:"description=Sources backing the answer"`
}

// Citation is a source reference backing an answer.
type Citation struct {
	Title         string `json:"title" jsonschema:"description=Title of the cited page"`
	URL           string `json:"url" jsonschema:"description=URL of the cited page"`
	Author        string `json:"author,omitempty" jsonschema:"description=Who wrote the content"`
	PublishedDate string `json:"published_date,omitempty" jsonschema:"description=When the content was published"`
	Text          string `json:"text,omitempty" jsonschema:"description=Full text of the cited page when requested"`
}

// exaSearchAPIResponse is the raw envelope returned by /search and
// /findSimilar.
type exaSearchAPIResponse struct {
	Results            []exaSearchResultItem `json:"results"`
	ResolvedSearchType string                `json:"resolvedSearchType,omitempty"`
	RequestID          string                `json:"requestId,omitempty"`
	CostDollars        *exaCost              `json:"costDollars,omitempty"`
}

// exaSearchResultItem is a single raw result from the Exa API.
type exaSearchResultItem struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	URL             string    `json:"url"`
	Score           float64   `json:"score,omitempty"`
	PublishedDate   string    `json:"publishedDate,omitempty"`
	Author          string    `json:"author,omitempty"`
	Text            string    `json:"text,omitempty"`
	Highlights      []string  `json:"highlights,omitempty"`
	HighlightScores []float64 `json:"highlightScores,omitempty"`
	Summary         string    `json:"summary,omitempty"`
}

// exaAnswerAPIResponse is the raw envelope returned by /answer. Citations
// have appeared under both "citations" and "results" across API revisions.
type exaAnswerAPIResponse struct {
	Answer      string                `json:"answer"`
	Citations   []exaSearchResultItem `json:"citations,omitempty"`
	Results     []exaSearchResultItem `json:"results,omitempty"`
	RequestID   string                `json:"requestId,omitempty"`
	CostDollars *exaCost              `json:"costDollars,omitempty"`
}

// exaCost is the billing block the API attaches to responses.
type exaCost struct {
	Total float64 `json:"total"`
}

// exaAPIError is an error response body from the Exa API.
type exaAPIError struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}
