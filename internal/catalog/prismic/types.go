package prismic

// apiInfo is the repository entrypoint response from GET /api/v2.
type apiInfo struct {
	Refs []ref `json:"refs"`
}

// ref is a content release pointer. The master ref identifies the currently
// published content and changes on every publish.
type ref struct {
	ID          string `json:"id"`
	Ref         string `json:"ref"`
	Label       string `json:"label"`
	IsMasterRef bool   `json:"isMasterRef"`
}

// searchResponse is the paged response from GET /api/v2/documents/search.
type searchResponse struct {
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
	NextPage   string     `json:"next_page"`
	Results    []document `json:"results"`
}

// document is a single published document.
type document struct {
	ID   string       `json:"id"`
	UID  string       `json:"uid"`
	Type string       `json:"type"`
	Data documentData `json:"data"`
}

// documentData holds the custom-type fields of both the fragrance and the
// settings document types. Unused fields decode to zero values.
type documentData struct {
	Title        []textSpan `json:"title"`
	Description  []textSpan `json:"description"`
	Mood         string     `json:"mood"`
	ScentProfile string     `json:"scent_profile"`
	// Price is the 50ml base price in whole currency units as authored
	// in the CMS.
	Price           float64    `json:"price"`
	BottleImage     image      `json:"bottle_image"`
	SiteTitle       []textSpan `json:"site_title"`
	MetaDescription []textSpan `json:"meta_description"`
	Navigation      []navItem  `json:"navigation"`
}

// navItem is one entry of the settings navigation group field.
type navItem struct {
	Label []textSpan `json:"label"`
	Link  link       `json:"link"`
}

// link is a Prismic link field; only web links carry a URL.
type link struct {
	URL string `json:"url"`
}

// textSpan is one block of a rich text field.
type textSpan struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// image is an image field with a served URL.
type image struct {
	URL string `json:"url"`
}

// asText flattens a rich text field to a plain string, joining blocks with
// newlines the way the official clients do.
func asText(spans []textSpan) string {
	switch len(spans) {
	case 0:
		return ""
	case 1:
		return spans[0].Text
	}
	out := spans[0].Text
	for _, s := range spans[1:] {
		out += "\n" + s.Text
	}
	return out
}
