package brave

// webAPIResponse is the top-level envelope returned by /web/search. Only the
// categories the tools consume are mapped; the API returns more.
type webAPIResponse struct {
	Type  string      `json:"type"`
	Query *queryInfo  `json:"query,omitempty"`
	Web   *webResults `json:"web,omitempty"`
}

// queryInfo holds metadata about the submitted query as reported by the API.
type queryInfo struct {
	Original     string `json:"original"`
	AlteredQuery string `json:"altered,omitempty"`
}

// webResults holds the organic web results returned by /web/search.
type webResults struct {
	Type    string      `json:"type"`
	Results []webResult `json:"results"`
}

// webResult is a single organic web result.
type webResult struct {
	Title         string     `json:"title"`
	URL           string     `json:"url"`
	Description   string     `json:"description"`
	Age           string     `json:"age,omitempty"`
	PageAge       string     `json:"page_age,omitempty"`
	PublishedDate string     `json:"published_date,omitempty"`
	ExtraSnippets []string   `json:"extra_snippets,omitempty"`
	MetaURL       *metaURL   `json:"meta_url,omitempty"`
	Thumbnail     *thumbnail `json:"thumbnail,omitempty"`
}

// mediaAPIResponse is the envelope returned by the images, news, and videos
// endpoints, which all carry a flat results array.
type mediaAPIResponse[T any] struct {
	Type    string `json:"type"`
	Results []T    `json:"results"`
}

// imageResult is a single result from /images/search.
type imageResult struct {
	Title      string           `json:"title"`
	URL        string           `json:"url"`
	Source     string           `json:"source,omitempty"`
	Thumbnail  *thumbnail       `json:"thumbnail,omitempty"`
	Properties *imageProperties `json:"properties,omitempty"`
}

// imageProperties holds the full-size image URL and pixel dimensions.
type imageProperties struct {
	URL    string `json:"url,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// newsResult is a single result from /news/search.
type newsResult struct {
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Description string     `json:"description,omitempty"`
	Age         string     `json:"age,omitempty"`
	PageAge     string     `json:"page_age,omitempty"`
	Breaking    bool       `json:"breaking,omitempty"`
	MetaURL     *metaURL   `json:"meta_url,omitempty"`
	Thumbnail   *thumbnail `json:"thumbnail,omitempty"`
}

// videoResult is a single result from /videos/search.
type videoResult struct {
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Description string     `json:"description,omitempty"`
	Age         string     `json:"age,omitempty"`
	PageAge     string     `json:"page_age,omitempty"`
	Video       *videoData `json:"video,omitempty"`
	MetaURL     *metaURL   `json:"meta_url,omitempty"`
	Thumbnail   *thumbnail `json:"thumbnail,omitempty"`
}

// videoData holds playback metadata for a video result.
type videoData struct {
	Duration  string `json:"duration,omitempty"`
	Views     int64  `json:"views,omitempty"`
	Creator   string `json:"creator,omitempty"`
	Publisher string `json:"publisher,omitempty"`
}

// metaURL holds the decomposed components of a result's canonical URL.
type metaURL struct {
	Scheme   string `json:"scheme"`
	Netloc   string `json:"netloc"`
	Hostname string `json:"hostname"`
	Favicon  string `json:"favicon,omitempty"`
	Path     string `json:"path,omitempty"`
}

// thumbnail holds the source URL and optional pixel dimensions of a preview image.
type thumbnail struct {
	Src    string `json:"src"`
	Height int    `json:"height,omitempty"`
	Width  int    `json:"width,omitempty"`
}
