package models

// Image represents an image hosted on the API's CDN.
type Image struct {
	URL       string `json:"url"`       // Direct URL of the image.
	Snowflake string `json:"snowflake"` // Unique ID of the image.
	NSFW      bool   `json:"nsfw"`      // Whether the image is marked NSFW.
	Tag       string `json:"tag"`       // Tag the image belongs to.
}

// RedditImage represents an image scraped from a subreddit.
type RedditImage struct {
	Title     string   `json:"title"`     // Post title.
	ImageURL  string   `json:"image_url"` // Direct URL of the image.
	Source    string   `json:"source"`    // Permalink of the post.
	Subreddit string   `json:"subreddit"` // Subreddit the post was taken from.
	Upvotes   int      `json:"upvotes"`
	Downvotes int      `json:"downvotes"`
	Comments  int      `json:"comments"`
	CreatedAt UnixTime `json:"created_at"` // Time the post was created.
	NSFW      bool     `json:"nsfw"`       // Whether the post is marked NSFW.
	Author    string   `json:"author"`     // Post author.
}

// WikiHowImage represents a random WikiHow illustration.
type WikiHowImage struct {
	URL        string `json:"url"`         // Direct URL of the image.
	Title      string `json:"title"`       // Step caption the image was taken from.
	NSFW       bool   `json:"nsfw"`        // Whether the image is marked NSFW.
	ArticleURL string `json:"article_url"` // URL of the source article.
}

// Tag represents a single image tag.
type Tag struct {
	Name string `json:"name"` // Tag name.
	NSFW bool   `json:"nsfw"` // Whether the tag is NSFW.
}

// TagCollection represents the full set of tags known to the API.
type TagCollection struct {
	Models   []Tag    `json:"models"`    // All tags with their NSFW flag.
	Tags     []string `json:"tags"`      // Names of the safe-for-work tags.
	NSFWTags []string `json:"nsfw_tags"` // Names of the NSFW tags.
}
